package docsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// OutlineEntry is one heading-level node in a document's structure.
type OutlineEntry struct {
	Text  string // Heading text
	Page  int    // Page index, consistent with Source.PageBlocks
	Level int    // Hierarchical depth, 1 is top level
}

// Structure is the analyzed shape of a document: a title plus an ordered
// outline of its headings.
type Structure struct {
	Title   string
	Outline []OutlineEntry
}

// Source is a per-document handle providing structure analysis and page
// text. Structure and PageBlocks share the same page indexing: 1-based PDF
// pages for PDF sources, flattened section indices for tree-backed sources.
type Source interface {
	Structure() (Structure, error)
	PageBlocks(page int) ([]string, error)
	Close() error
}

// ErrPageOutOfRange is returned by PageBlocks for pages the document does
// not have.
var ErrPageOutOfRange = errors.New("page out of range")

// AnalysisError wraps a failure to open or analyze a document. Callers skip
// the document and continue.
type AnalysisError struct {
	Path string
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze %s: %s", e.Path, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions this package can analyze.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Open returns the appropriate Source for a document path.
func Open(path string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		src Source
		err error
	)
	switch ext {
	case ".pdf":
		src, err = openPDF(path)
	case ".md", ".markdown":
		src, err = openMarkdown(path)
	case ".html", ".htm":
		src, err = openHTML(path)
	case ".docx":
		src, err = openDOCX(path)
	case ".txt":
		src, err = openText(path)
	default:
		err = fmt.Errorf("unsupported file extension: %s", ext)
	}
	if err != nil {
		return nil, &AnalysisError{Path: path, Err: err}
	}
	return src, nil
}

// baseTitle derives a fallback title from a file path.
func baseTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
