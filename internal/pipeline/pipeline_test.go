package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ironsupr/docrank/internal/docsource"
	"github.com/ironsupr/docrank/internal/persona"
)

type fakeSource struct {
	structure docsource.Structure
	pages     map[int][]string
	closed    *bool
}

func (f *fakeSource) Structure() (docsource.Structure, error) {
	return f.structure, nil
}

func (f *fakeSource) PageBlocks(page int) ([]string, error) {
	blocks, ok := f.pages[page]
	if !ok {
		return nil, docsource.ErrPageOutOfRange
	}
	return blocks, nil
}

func (f *fakeSource) Close() error {
	if f.closed != nil {
		*f.closed = true
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPipeline(open Opener, workers int) *Pipeline {
	p := New(testLogger(), workers)
	p.open = open
	return p
}

func outlineOnlySource(titles ...string) *fakeSource {
	src := &fakeSource{pages: map[int][]string{}}
	for i, title := range titles {
		src.structure.Outline = append(src.structure.Outline, docsource.OutlineEntry{
			Text: title, Page: i, Level: 1,
		})
	}
	return src
}

func TestRun_SortsByScoreDescending(t *testing.T) {
	sources := map[string]*fakeSource{
		// "Travel Guide" saturates the score; the others score zero.
		"a.md": outlineOnlySource("Zebra Xylophone", "Travel Guide"),
		"b.md": outlineOnlySource("Quartz Fjord"),
	}
	open := func(path string) (docsource.Source, error) {
		return sources[path], nil
	}

	docs := []Document{
		{Name: "a.md", Path: "a.md"},
		{Name: "b.md", Path: "b.md"},
	}
	ranked := testPipeline(open, 4).Run(context.Background(), docs, persona.Context{})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(ranked))
	}
	if ranked[0].Title != "Travel Guide" {
		t.Errorf("expected highest scorer first, got %q", ranked[0].Title)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("order violated at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRun_TiesKeepDocumentOrder(t *testing.T) {
	// All four sections score zero; stable sort must preserve input
	// document order then outline order, regardless of worker count.
	sources := map[string]*fakeSource{
		"a.md": outlineOnlySource("Zebra One", "Zebra Two"),
		"b.md": outlineOnlySource("Zebra Three", "Zebra Four"),
	}
	open := func(path string) (docsource.Source, error) {
		return sources[path], nil
	}
	docs := []Document{
		{Name: "a.md", Path: "a.md"},
		{Name: "b.md", Path: "b.md"},
	}

	want := []string{"Zebra One", "Zebra Two", "Zebra Three", "Zebra Four"}
	for _, workers := range []int{1, 4} {
		ranked := testPipeline(open, workers).Run(context.Background(), docs, persona.Context{})
		if len(ranked) != len(want) {
			t.Fatalf("workers=%d: expected %d sections, got %d", workers, len(want), len(ranked))
		}
		for i, sec := range ranked {
			if sec.Title != want[i] {
				t.Errorf("workers=%d: position %d: expected %q, got %q", workers, i, want[i], sec.Title)
			}
		}
	}
}

func TestRun_FailingDocumentSkipped(t *testing.T) {
	open := func(path string) (docsource.Source, error) {
		if path == "bad.pdf" {
			return nil, errors.New("corrupt file")
		}
		return outlineOnlySource("Quartz Fjord"), nil
	}
	docs := []Document{
		{Name: "bad.pdf", Path: "bad.pdf"},
		{Name: "good.md", Path: "good.md"},
	}

	ranked := testPipeline(open, 2).Run(context.Background(), docs, persona.Context{})
	if len(ranked) != 1 {
		t.Fatalf("expected sections only from the good document, got %d", len(ranked))
	}
	if ranked[0].Document != "good.md" {
		t.Errorf("expected section from good.md, got %q", ranked[0].Document)
	}
}

func TestRun_ClosesSources(t *testing.T) {
	closed := false
	src := outlineOnlySource("Quartz Fjord")
	src.closed = &closed
	open := func(path string) (docsource.Source, error) { return src, nil }

	testPipeline(open, 1).Run(context.Background(), []Document{{Name: "d", Path: "d"}}, persona.Context{})
	if !closed {
		t.Error("expected source to be closed after processing")
	}
}

func TestRun_ContentNeverEmpty(t *testing.T) {
	// No page text at all: every section must still carry fallback content.
	open := func(path string) (docsource.Source, error) {
		return outlineOnlySource("Zebra Xylophone", "Travel Guide"), nil
	}
	ranked := testPipeline(open, 1).Run(context.Background(), []Document{{Name: "d", Path: "d"}}, persona.Context{})
	for _, sec := range ranked {
		if sec.Content == "" {
			t.Errorf("section %q has empty content", sec.Title)
		}
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	open := func(path string) (docsource.Source, error) {
		return outlineOnlySource("Quartz Fjord"), nil
	}
	ranked := testPipeline(open, 1).Run(ctx, []Document{{Name: "d", Path: "d"}}, persona.Context{})
	if len(ranked) != 0 {
		t.Errorf("expected no work after cancellation, got %d sections", len(ranked))
	}
}

func TestComputeStats(t *testing.T) {
	sections := []ScoredSection{
		{Score: 50},
		{Score: 30},
		{Score: 10},
		{Score: 0},
	}
	stats := ComputeStats(sections)
	if stats.Count != 4 {
		t.Errorf("count: expected 4, got %d", stats.Count)
	}
	if stats.MaxScore != 50 {
		t.Errorf("max: expected 50, got %f", stats.MaxScore)
	}
	if stats.AvgScore != 22.5 {
		t.Errorf("avg: expected 22.5, got %f", stats.AvgScore)
	}
	if stats.HighRelevance != 2 {
		t.Errorf("high relevance: expected 2, got %d", stats.HighRelevance)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	if stats := ComputeStats(nil); stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
