package synthesis

import (
	"regexp"
	"strings"

	"github.com/ironsupr/docrank/internal/persona"
)

// BlockProvider returns position-ordered text blocks for a page of a
// document. docsource.Source satisfies it.
type BlockProvider interface {
	PageBlocks(page int) ([]string, error)
}

const (
	baseTargetChars         = 300
	groupTargetBonus        = 100
	professionalTargetBonus = 150
	minContentChars         = 100
	minBlockChars           = 20
)

// Synthesize produces supporting content for a section: genuine text
// extracted from the section's page when enough is available, template
// fallback text otherwise. The result is never empty. Provider failures are
// treated the same as an unavailable page.
func Synthesize(p BlockProvider, title string, page int, ctx persona.Context) string {
	blocks, err := p.PageBlocks(page)
	if err != nil || len(blocks) == 0 {
		return Fallback(title, ctx)
	}

	target := baseTargetChars
	if ctx.Group == persona.GroupGroup {
		target += groupTargetBonus
	}
	if ctx.Persona == persona.PersonaTravelProfessional {
		target += professionalTargetBonus
	}

	titleLower := strings.ToLower(strings.TrimSpace(title))
	titleWords := longWords(titleLower)

	// Two-state scan: searching until a block mentions the title (or one of
	// its longer words), then in scope for every following block. There is
	// no transition back; only the length target or running out of blocks
	// ends collection.
	var kept []string
	joinedLen := 0
	inScope := false

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lower := strings.ToLower(block)

		if !inScope {
			if !strings.Contains(lower, titleLower) && !containsAnyWord(lower, titleWords) {
				continue
			}
			inScope = true
		}

		// The heading itself is not content.
		if lower == titleLower {
			continue
		}

		if len(block) > minBlockChars && !isNumeric(block) {
			if joinedLen > 0 {
				joinedLen++ // joining space
			}
			joinedLen += len(block)
			kept = append(kept, block)
		}

		if joinedLen > target {
			break
		}
	}

	if len(kept) == 0 {
		return Fallback(title, ctx)
	}

	result := cleanText(strings.Join(kept, " "))
	if len(result) < minContentChars {
		return Fallback(title, ctx)
	}
	return result
}

var (
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	leadingBullets  = regexp.MustCompile(`^[•·;]\s*`)
	embeddedBullets = regexp.MustCompile(`[•·]`)
	doubleSemis     = regexp.MustCompile(`;\s*;`)
)

// cleanText normalizes extracted text: whitespace runs collapse to single
// spaces and bullet markers become semicolon separators.
func cleanText(s string) string {
	s = strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
	s = leadingBullets.ReplaceAllString(s, "")
	s = embeddedBullets.ReplaceAllString(s, "; ")
	s = doubleSemis.ReplaceAllString(s, ";")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// longWords returns the words of a title longer than 3 characters; short
// words like "the" or "of" would open scope on almost any block.
func longWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(title) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
