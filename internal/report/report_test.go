package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ironsupr/docrank/internal/challenge"
	"github.com/ironsupr/docrank/internal/pipeline"
)

func rankedFixture(n int) []pipeline.ScoredSection {
	sections := make([]pipeline.ScoredSection, 0, n)
	for i := 0; i < n; i++ {
		sections = append(sections, pipeline.ScoredSection{
			Document: "doc.pdf",
			Page:     i + 1,
			Title:    "Section " + string(rune('A'+i)),
			Level:    1,
			Score:    float64(100 - i),
			Content:  "Content for section " + string(rune('A'+i)),
		})
	}
	return sections
}

func TestBuild_CapsAtTopK(t *testing.T) {
	req := challenge.Request{Persona: "p", Job: "j", InputNames: []string{"doc.pdf"}}
	rep := Build(rankedFixture(8), req, 5, time.Now())

	if len(rep.ExtractedSections) != 5 {
		t.Fatalf("expected 5 extracted sections, got %d", len(rep.ExtractedSections))
	}
	if len(rep.SubsectionAnalysis) != 5 {
		t.Fatalf("expected 5 subsection analyses, got %d", len(rep.SubsectionAnalysis))
	}
	for i, sec := range rep.ExtractedSections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("entry %d: expected rank %d, got %d", i, i+1, sec.ImportanceRank)
		}
	}
}

func TestBuild_FewerSectionsThanTopK(t *testing.T) {
	rep := Build(rankedFixture(2), challenge.Request{}, 5, time.Now())
	if len(rep.ExtractedSections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(rep.ExtractedSections))
	}
	if rep.ExtractedSections[1].ImportanceRank != 2 {
		t.Errorf("expected last rank 2, got %d", rep.ExtractedSections[1].ImportanceRank)
	}
}

func TestBuild_ArraysAreParallel(t *testing.T) {
	rep := Build(rankedFixture(5), challenge.Request{}, 5, time.Now())
	for i := range rep.ExtractedSections {
		ext := rep.ExtractedSections[i]
		sub := rep.SubsectionAnalysis[i]
		if ext.Document != sub.Document || ext.PageNumber != sub.PageNumber {
			t.Errorf("entry %d misaligned: %+v vs %+v", i, ext, sub)
		}
		if !strings.HasSuffix(sub.RefinedText, ext.SectionTitle[len("Section "):]) {
			t.Errorf("entry %d: content %q does not match section %q", i, sub.RefinedText, ext.SectionTitle)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	rep := Build(nil, challenge.Request{}, 5, time.Now())
	if len(rep.ExtractedSections) != 0 || len(rep.SubsectionAnalysis) != 0 {
		t.Errorf("expected empty section arrays, got %+v", rep)
	}
	if rep.Metadata.InputDocuments == nil {
		t.Error("input_documents must encode as an empty array, not null")
	}
}

func TestBuild_MetadataTimestamp(t *testing.T) {
	now := time.Date(2025, 7, 10, 15, 4, 5, 0, time.UTC)
	rep := Build(nil, challenge.Request{Persona: "p", Job: "j"}, 5, now)
	if rep.Metadata.ProcessingTimestamp != "2025-07-10T15:04:05Z" {
		t.Errorf("unexpected timestamp format: %q", rep.Metadata.ProcessingTimestamp)
	}
}

func TestWrite_OutputShape(t *testing.T) {
	req := challenge.Request{
		Persona:    "Travel Planner",
		Job:        "Plan a trip",
		InputNames: []string{"doc.pdf"},
	}
	rep := Build(rankedFixture(3), req, 5, time.Now())

	dir := filepath.Join(t.TempDir(), "out")
	path, err := rep.Write(dir, "output.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "output.json") {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"metadata", "extracted_sections", "subsection_analysis"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	var roundTrip Report
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if roundTrip.Metadata.Persona != "Travel Planner" {
		t.Errorf("persona lost in round trip: %q", roundTrip.Metadata.Persona)
	}
	if len(roundTrip.ExtractedSections) != 3 {
		t.Errorf("sections lost in round trip: %d", len(roundTrip.ExtractedSections))
	}
}
