package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TopTerms != 20 {
		t.Errorf("TopTerms = %d, want 20", cfg.TopTerms)
	}
	if cfg.HighFreqThreshold != 10 {
		t.Errorf("HighFreqThreshold = %d, want 10", cfg.HighFreqThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bow.toml")
	content := "stopwords = \"english.txt\"\ntop_terms = 5\nworkers = 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stopwords != "english.txt" {
		t.Errorf("Stopwords = %q", cfg.Stopwords)
	}
	if cfg.TopTerms != 5 {
		t.Errorf("TopTerms = %d, want 5", cfg.TopTerms)
	}
	// Unset keys keep defaults.
	if cfg.HighFreqThreshold != 10 {
		t.Errorf("HighFreqThreshold = %d, want default 10", cfg.HighFreqThreshold)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{TopTerms: -1},
		{HighFreqThreshold: -1},
		{Workers: -1},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", cfg)
		}
	}
}
