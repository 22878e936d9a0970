// Package report assembles and writes the final ranking output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsupr/docrank/internal/challenge"
	"github.com/ironsupr/docrank/internal/pipeline"
)

// Metadata echoes the run inputs alongside the processing timestamp.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection identifies one top-ranked section.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis carries the synthesized content for one top-ranked
// section, index-aligned with ExtractedSections.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Report is the final output record.
type Report struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// Build assembles a report from ranked sections, keeping at most topK. The
// two section arrays are parallel: entry i of each describes the same ranked
// section, and importance_rank runs 1..min(topK, len(ranked)) with no gaps.
func Build(ranked []pipeline.ScoredSection, req challenge.Request, topK int, now time.Time) Report {
	if topK < 0 {
		topK = 0
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}
	top := ranked[:topK]

	inputDocs := req.InputNames
	if inputDocs == nil {
		inputDocs = []string{}
	}

	r := Report{
		Metadata: Metadata{
			InputDocuments:      inputDocs,
			Persona:             req.Persona,
			JobToBeDone:         req.Job,
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  make([]ExtractedSection, 0, topK),
		SubsectionAnalysis: make([]SubsectionAnalysis, 0, topK),
	}

	for i, sec := range top {
		r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.Title,
			ImportanceRank: i + 1,
			PageNumber:     sec.Page,
		})
		r.SubsectionAnalysis = append(r.SubsectionAnalysis, SubsectionAnalysis{
			Document:    sec.Document,
			RefinedText: sec.Content,
			PageNumber:  sec.Page,
		})
	}

	return r
}

// Write stores the report as indented JSON under dir, creating it if
// needed, and returns the written path. A write failure is fatal to the
// run.
func (r Report) Write(dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return path, nil
}
