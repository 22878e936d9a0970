package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ironsupr/docrank/internal/challenge"
	"github.com/ironsupr/docrank/internal/persona"
	"github.com/ironsupr/docrank/internal/report"
)

// maxRequestBytes bounds the rank request body.
const maxRequestBytes = 1 << 20

// handleRank runs a full ranking synchronously and returns the report. The
// body is the standard challenge input JSON plus a pdf_dir field naming the
// server-side directory that holds the referenced documents.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "read request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var opts struct {
		PDFDir string `json:"pdf_dir"`
	}
	if err := json.Unmarshal(body, &opts); err != nil {
		jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if opts.PDFDir == "" {
		jsonError(w, "pdf_dir is required", http.StatusBadRequest)
		return
	}

	req, err := challenge.Parse(body, opts.PDFDir, s.log)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		jsonError(w, "no readable documents", http.StatusUnprocessableEntity)
		return
	}

	pctx := persona.Analyze(req.Persona, req.Job)
	ranked := s.pipe.Run(r.Context(), req.Documents, pctx)
	if len(ranked) == 0 {
		jsonError(w, "no documents processed", http.StatusUnprocessableEntity)
		return
	}

	rep := report.Build(ranked, req, s.cfg.TopSections, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
