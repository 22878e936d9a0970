package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Output
	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`

	// Ranking
	TopSections     int `yaml:"top_sections"`     // exported in the output file
	PreviewSections int `yaml:"preview_sections"` // logged for humans
	DocWorkers      int `yaml:"doc_workers"`

	// Serve mode
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"` // empty disables auth
}

// Load builds a Config from environment variables with defaults.
func Load() Config {
	cfg := Config{
		OutputDir:  envOr("DOCRANK_OUTPUT_DIR", "output"),
		OutputFile: envOr("DOCRANK_OUTPUT_FILE", "challenge1b_output.json"),

		TopSections:     envInt("DOCRANK_TOP_SECTIONS", 5),
		PreviewSections: envInt("DOCRANK_PREVIEW_SECTIONS", 10),
		DocWorkers:      envInt("DOCRANK_DOC_WORKERS", 4),

		Port:   envOr("DOCRANK_PORT", "8090"),
		APIKey: os.Getenv("DOCRANK_API_KEY"),
	}
	return cfg.withFloors()
}

// LoadFile layers a YAML config file over base. Fields absent from the file
// keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse config file: %w", err)
	}
	return base.withFloors(), nil
}

func (c Config) withFloors() Config {
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.OutputFile == "" {
		c.OutputFile = "challenge1b_output.json"
	}
	if c.TopSections <= 0 {
		c.TopSections = 5
	}
	if c.PreviewSections <= 0 {
		c.PreviewSections = 10
	}
	if c.DocWorkers <= 0 {
		c.DocWorkers = 4
	}
	if c.Port == "" {
		c.Port = "8090"
	}
	return c
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
