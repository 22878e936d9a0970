package docsource

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	"github.com/ironsupr/docrank/internal/doctree"
)

// openText analyzes a plain text file. There is no markup to read structure
// from, so a line is treated as a heading when it stands alone between
// paragraphs, is short, and does not end like a sentence.
func openText(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tree := &doctree.DocTree{Title: baseTitle(path)}
	var currentNode *doctree.DocNode

	for _, para := range paragraphs {
		if looksLikeHeading(para) {
			currentNode = &doctree.DocNode{Title: strings.TrimSpace(para)}
			tree.Children = append(tree.Children, currentNode)
			continue
		}
		if currentNode == nil {
			tree.Children = append(tree.Children, &doctree.DocNode{Text: para})
			continue
		}
		if currentNode.Text != "" {
			currentNode.Text += "\n\n" + para
		} else {
			currentNode.Text = para
		}
	}

	return newTreeSource(tree), nil
}

// looksLikeHeading reports whether a single-line paragraph reads as a
// section heading rather than prose.
func looksLikeHeading(para string) bool {
	if strings.Contains(para, "\n") {
		return false
	}
	line := strings.TrimSpace(para)
	if line == "" || len(line) > 80 {
		return false
	}
	switch line[len(line)-1] {
	case '.', '!', '?', ',', ';', ':':
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	return hasLetter
}
