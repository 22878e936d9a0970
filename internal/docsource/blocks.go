package docsource

import "strings"

// maxBlockChars bounds a single text block. Oversized paragraphs are split
// on sentence boundaries so downstream scanning sees block-sized units, the
// same granularity a PDF page yields.
const maxBlockChars = 400

// SplitBlocks breaks section text into ordered blocks: one per paragraph,
// with paragraphs above maxBlockChars split into sentence runs.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, para := range splitParagraphs(text) {
		if len(para) <= maxBlockChars {
			blocks = append(blocks, para)
			continue
		}
		blocks = append(blocks, splitSentenceRuns(para, maxBlockChars)...)
	}
	return blocks
}

// splitParagraphs splits on blank lines.
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// splitSentenceRuns groups sentences into runs of at most target characters.
func splitSentenceRuns(text string, target int) []string {
	var result []string
	var current strings.Builder

	for _, sent := range splitSentences(text) {
		if current.Len() > 0 && current.Len()+len(sent)+1 > target {
			result = append(result, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sent)
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

// splitSentences does basic sentence splitting.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}
	return sentences
}
