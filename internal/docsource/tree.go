package docsource

import "github.com/ironsupr/docrank/internal/doctree"

// treeSource serves Structure and PageBlocks from an in-memory document
// tree. Markdown, HTML, DOCX and plain-text documents have no physical
// pages, so each flattened section acts as one page: the outline entry's
// Page is its flattened index and PageBlocks(i) returns that section's
// blocks. The two views are consistent by construction.
type treeSource struct {
	title    string
	sections []treeSection
}

type treeSection struct {
	entry  OutlineEntry
	blocks []string
}

// newTreeSource flattens a DocTree depth-first. Every titled node becomes a
// section whose first block is the heading itself; loose text under an
// untitled node attaches to the most recent section.
func newTreeSource(tree *doctree.DocTree) *treeSource {
	s := &treeSource{title: tree.Title}

	var walk func(n *doctree.DocNode, depth int)
	walk = func(n *doctree.DocNode, depth int) {
		if n.Title != "" {
			sec := treeSection{
				entry: OutlineEntry{
					Text:  n.Title,
					Page:  len(s.sections),
					Level: depth,
				},
				blocks: append([]string{n.Title}, SplitBlocks(n.Text)...),
			}
			s.sections = append(s.sections, sec)
		} else if n.Text != "" {
			s.attachText(n.Text)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, child := range tree.Children {
		walk(child, 1)
	}

	// A document with no headings still yields one rankable section.
	if len(s.sections) == 0 {
		s.sections = append(s.sections, treeSection{
			entry:  OutlineEntry{Text: tree.Title, Page: 0, Level: 1},
			blocks: []string{tree.Title},
		})
	}
	return s
}

func (s *treeSource) attachText(text string) {
	blocks := SplitBlocks(text)
	if len(blocks) == 0 {
		return
	}
	if len(s.sections) == 0 {
		s.sections = append(s.sections, treeSection{
			entry:  OutlineEntry{Text: s.title, Page: 0, Level: 1},
			blocks: []string{s.title},
		})
	}
	last := &s.sections[len(s.sections)-1]
	last.blocks = append(last.blocks, blocks...)
}

func (s *treeSource) Structure() (Structure, error) {
	outline := make([]OutlineEntry, len(s.sections))
	for i, sec := range s.sections {
		outline[i] = sec.entry
	}
	return Structure{Title: s.title, Outline: outline}, nil
}

func (s *treeSource) PageBlocks(page int) ([]string, error) {
	if page < 0 || page >= len(s.sections) {
		return nil, ErrPageOutOfRange
	}
	blocks := make([]string, len(s.sections[page].blocks))
	copy(blocks, s.sections[page].blocks)
	return blocks, nil
}

func (s *treeSource) Close() error { return nil }
