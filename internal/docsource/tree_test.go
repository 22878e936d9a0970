package docsource

import (
	"errors"
	"testing"

	"github.com/ironsupr/docrank/internal/doctree"
)

func sampleTree() *doctree.DocTree {
	return &doctree.DocTree{
		Title: "City Guide",
		Children: []*doctree.DocNode{
			{
				Title: "Getting There",
				Text:  "Flights arrive daily.\n\nTrains run hourly from the capital.",
				Children: []*doctree.DocNode{
					{Title: "By Air", Text: "The airport is 20 minutes from downtown."},
				},
			},
			{Title: "Where to Stay", Text: "Hotels cluster around the old town."},
		},
	}
}

func TestTreeSource_OutlinePagesIndexSections(t *testing.T) {
	src := newTreeSource(sampleTree())

	st, err := src.Structure()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Title != "City Guide" {
		t.Errorf("title: expected %q, got %q", "City Guide", st.Title)
	}
	if len(st.Outline) != 3 {
		t.Fatalf("expected 3 outline entries, got %d", len(st.Outline))
	}

	wantTitles := []string{"Getting There", "By Air", "Where to Stay"}
	wantLevels := []int{1, 2, 1}
	for i, entry := range st.Outline {
		if entry.Text != wantTitles[i] {
			t.Errorf("entry %d: expected title %q, got %q", i, wantTitles[i], entry.Text)
		}
		if entry.Level != wantLevels[i] {
			t.Errorf("entry %d: expected level %d, got %d", i, wantLevels[i], entry.Level)
		}
		if entry.Page != i {
			t.Errorf("entry %d: expected page %d, got %d", i, i, entry.Page)
		}

		// The entry's page must resolve to the entry's own section.
		blocks, err := src.PageBlocks(entry.Page)
		if err != nil {
			t.Fatalf("PageBlocks(%d): %v", entry.Page, err)
		}
		if len(blocks) == 0 || blocks[0] != entry.Text {
			t.Errorf("page %d: expected heading block %q, got %v", entry.Page, entry.Text, blocks)
		}
	}
}

func TestTreeSource_SectionBlocksIncludeText(t *testing.T) {
	src := newTreeSource(sampleTree())

	blocks, err := src.PageBlocks(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Getting There", "Flights arrive daily.", "Trains run hourly from the capital."}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), blocks)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block %d: expected %q, got %q", i, want[i], blocks[i])
		}
	}
}

func TestTreeSource_PageOutOfRange(t *testing.T) {
	src := newTreeSource(sampleTree())
	for _, page := range []int{-1, 3, 100} {
		if _, err := src.PageBlocks(page); !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("PageBlocks(%d): expected ErrPageOutOfRange, got %v", page, err)
		}
	}
}

func TestTreeSource_NoHeadingsYieldsOneSection(t *testing.T) {
	tree := &doctree.DocTree{Title: "notes"}
	src := newTreeSource(tree)

	st, err := src.Structure()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Outline) != 1 {
		t.Fatalf("expected one fallback entry, got %d", len(st.Outline))
	}
	if st.Outline[0].Text != "notes" || st.Outline[0].Page != 0 || st.Outline[0].Level != 1 {
		t.Errorf("unexpected fallback entry: %+v", st.Outline[0])
	}
}

func TestTreeSource_LooseTextAttachesToPreviousSection(t *testing.T) {
	tree := &doctree.DocTree{
		Title: "doc",
		Children: []*doctree.DocNode{
			{Title: "Section One", Text: "Body one."},
			{Text: "Orphan paragraph without a heading."},
		},
	}
	src := newTreeSource(tree)

	blocks, err := src.PageBlocks(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, b := range blocks {
		if b == "Orphan paragraph without a heading." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected orphan text attached to section, got %v", blocks)
	}
}

func TestTreeSource_PageBlocksReturnsCopy(t *testing.T) {
	src := newTreeSource(sampleTree())
	first, _ := src.PageBlocks(0)
	first[0] = "mutated"
	again, _ := src.PageBlocks(0)
	if again[0] == "mutated" {
		t.Error("PageBlocks exposed internal state")
	}
}
