package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/ironsupr/docrank/internal/docsource"
	"github.com/ironsupr/docrank/internal/persona"
	"github.com/ironsupr/docrank/internal/scoring"
	"github.com/ironsupr/docrank/internal/synthesis"
)

// Document is one input document to rank.
type Document struct {
	Name string // Original filename, used in output
	Path string // Resolved path on disk
}

// ScoredSection is one outline entry after scoring and synthesis. Created
// once per entry and immutable afterwards.
type ScoredSection struct {
	Document string
	Page     int
	Title    string
	Level    int
	Score    float64 // Always within [0, 100]
	Content  string  // Never empty
}

// Opener opens a document source; swapped out in tests.
type Opener func(path string) (docsource.Source, error)

// Pipeline ranks document sections against a persona context.
type Pipeline struct {
	log     *slog.Logger
	open    Opener
	workers int
}

func New(log *slog.Logger, workers int) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{log: log, open: docsource.Open, workers: workers}
}

// Run processes every document and returns all sections pooled and
// stable-sorted by score descending. Documents are handled by a bounded
// worker pool, but each document's sections land in a slot indexed by input
// position, so ties keep the document-order-then-outline-order sequence a
// serial run would produce. A document that fails to open or analyze is
// logged and skipped; partial results are acceptable.
func (p *Pipeline) Run(ctx context.Context, docs []Document, pctx persona.Context) []ScoredSection {
	slots := make([][]ScoredSection, len(docs))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc Document) {
			defer wg.Done()
			defer func() { <-sem }()

			sections, err := p.processDocument(doc, pctx)
			if err != nil {
				p.log.Warn("document skipped", "document", doc.Name, "error", err)
				return
			}
			slots[i] = sections
		}(i, doc)
	}
	wg.Wait()

	var all []ScoredSection
	for _, sections := range slots {
		all = append(all, sections...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	return all
}

// processDocument analyzes one document and scores every outline entry. The
// source is always closed before returning. A failed page extraction is not
// an error: synthesis falls back to template content.
func (p *Pipeline) processDocument(doc Document, pctx persona.Context) ([]ScoredSection, error) {
	src, err := p.open(doc.Path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	st, err := src.Structure()
	if err != nil {
		return nil, err
	}

	sections := make([]ScoredSection, 0, len(st.Outline))
	for _, entry := range st.Outline {
		// No separate body text exists at scoring time; the title stands in
		// for both.
		score := scoring.Score(entry.Text, entry.Text, pctx)
		content := synthesis.Synthesize(src, entry.Text, entry.Page, pctx)

		sections = append(sections, ScoredSection{
			Document: doc.Name,
			Page:     entry.Page,
			Title:    entry.Text,
			Level:    entry.Level,
			Score:    score,
			Content:  content,
		})
	}

	p.log.Info("document processed",
		"document", doc.Name,
		"title", st.Title,
		"sections", len(sections),
	)
	return sections, nil
}
