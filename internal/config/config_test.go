package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DOCRANK_OUTPUT_DIR", "DOCRANK_OUTPUT_FILE", "DOCRANK_TOP_SECTIONS",
		"DOCRANK_PREVIEW_SECTIONS", "DOCRANK_DOC_WORKERS", "DOCRANK_PORT", "DOCRANK_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.OutputDir != "output" {
		t.Errorf("output dir: got %q", cfg.OutputDir)
	}
	if cfg.OutputFile != "challenge1b_output.json" {
		t.Errorf("output file: got %q", cfg.OutputFile)
	}
	if cfg.TopSections != 5 {
		t.Errorf("top sections: got %d", cfg.TopSections)
	}
	if cfg.PreviewSections != 10 {
		t.Errorf("preview sections: got %d", cfg.PreviewSections)
	}
	if cfg.DocWorkers != 4 {
		t.Errorf("doc workers: got %d", cfg.DocWorkers)
	}
	if cfg.Port != "8090" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCRANK_OUTPUT_DIR", "/tmp/results")
	t.Setenv("DOCRANK_TOP_SECTIONS", "3")
	t.Setenv("DOCRANK_PORT", "9000")
	t.Setenv("DOCRANK_API_KEY", "secret")

	cfg := Load()
	if cfg.OutputDir != "/tmp/results" {
		t.Errorf("output dir: got %q", cfg.OutputDir)
	}
	if cfg.TopSections != 3 {
		t.Errorf("top sections: got %d", cfg.TopSections)
	}
	if cfg.Port != "9000" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DOCRANK_DOC_WORKERS", "many")
	if cfg := Load(); cfg.DocWorkers != 4 {
		t.Errorf("expected fallback 4, got %d", cfg.DocWorkers)
	}
}

func TestLoad_Floors(t *testing.T) {
	t.Setenv("DOCRANK_TOP_SECTIONS", "-1")
	t.Setenv("DOCRANK_DOC_WORKERS", "0")

	cfg := Load()
	if cfg.TopSections != 5 {
		t.Errorf("expected floor 5, got %d", cfg.TopSections)
	}
	if cfg.DocWorkers != 4 {
		t.Errorf("expected floor 4, got %d", cfg.DocWorkers)
	}
}

func TestLoadFile_LayersOverBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output_dir: /srv/out\ntop_sections: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Config{
		OutputDir:       "output",
		OutputFile:      "result.json",
		TopSections:     5,
		PreviewSections: 10,
		DocWorkers:      4,
		Port:            "8090",
	}
	cfg, err := LoadFile(path, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "/srv/out" {
		t.Errorf("output dir not overridden: %q", cfg.OutputDir)
	}
	if cfg.TopSections != 7 {
		t.Errorf("top sections not overridden: %d", cfg.TopSections)
	}
	if cfg.OutputFile != "result.json" {
		t.Errorf("absent field changed: %q", cfg.OutputFile)
	}
	if cfg.Port != "8090" {
		t.Errorf("absent field changed: %q", cfg.Port)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), Config{}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("top_sections: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, Config{}); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
