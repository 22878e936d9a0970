// Package challenge loads and normalizes the challenge input JSON. The
// format is loosely typed in the wild: persona, job and document entries
// appear both as plain strings and as objects with varying key names. All of
// that ambiguity is resolved here at the boundary so the rest of the system
// works with strict types.
package challenge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ironsupr/docrank/internal/docsource"
	"github.com/ironsupr/docrank/internal/pipeline"
)

// DocumentsDirName is the sibling directory of the input file that holds
// the referenced documents.
const DocumentsDirName = "PDFs"

// Request is a normalized challenge input.
type Request struct {
	Persona    string
	Job        string
	Documents  []pipeline.Document // resolved, readable documents only
	InputNames []string            // every referenced filename, for output metadata
}

type rawInput struct {
	Persona   flexText  `json:"persona"`
	Job       flexText  `json:"job_to_be_done"`
	Documents []flexDoc `json:"documents"`
}

// flexText accepts either a plain string or an object carrying the text
// under a role, task or description key.
type flexText struct {
	value string
}

func (f *flexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.value = s
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, key := range []string{"role", "task", "description"} {
		if v, ok := obj[key].(string); ok {
			f.value = v
			return nil
		}
	}
	// No known key; keep the raw object text rather than losing it.
	f.value = string(data)
	return nil
}

// flexDoc accepts either a plain filename string or an object with a
// filename or name key.
type flexDoc struct {
	filename string
}

func (f *flexDoc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.filename = s
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, key := range []string{"filename", "name"} {
		if v, ok := obj[key].(string); ok {
			f.filename = v
			return nil
		}
	}
	return fmt.Errorf("document entry has no filename or name key")
}

// Load reads the input file and resolves its documents against the sibling
// PDFs directory. Missing or malformed input is fatal; a missing document
// file is only a warning and the document is excluded.
func Load(path string, log *slog.Logger) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read input file: %w", err)
	}
	docsDir := filepath.Join(filepath.Dir(path), DocumentsDirName)
	return Parse(data, docsDir, log)
}

// Parse normalizes raw input JSON, resolving document filenames under
// docsDir.
func Parse(data []byte, docsDir string, log *slog.Logger) (Request, error) {
	var raw rawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{}, fmt.Errorf("parse input JSON: %w", err)
	}

	req := Request{
		Persona: raw.Persona.value,
		Job:     raw.Job.value,
	}

	for _, doc := range raw.Documents {
		if doc.filename == "" {
			continue
		}
		req.InputNames = append(req.InputNames, doc.filename)

		if !docsource.IsSupportedExtension(doc.filename) {
			log.Warn("unsupported document type, excluded", "document", doc.filename)
			continue
		}
		resolved := filepath.Join(docsDir, doc.filename)
		if _, err := os.Stat(resolved); err != nil {
			log.Warn("document file not found, excluded", "document", doc.filename, "path", resolved)
			continue
		}
		req.Documents = append(req.Documents, pipeline.Document{
			Name: doc.filename,
			Path: resolved,
		})
	}

	return req, nil
}
