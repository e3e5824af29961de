package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Sites) != 2 {
		t.Fatalf("expected 2 default sites, got %d", len(cfg.Sites))
	}
	if cfg.Sites[0].Locality != "adyar" || cfg.Sites[1].Locality != "mylapore" {
		t.Errorf("unexpected default localities: %q, %q", cfg.Sites[0].Locality, cfg.Sites[1].Locality)
	}
	if cfg.Crawler.MaxDepth != 3 || cfg.Crawler.MaxPDFs != 5 {
		t.Errorf("unexpected crawl bounds: depth=%d pdfs=%d", cfg.Crawler.MaxDepth, cfg.Crawler.MaxPDFs)
	}
	if cfg.Chunking.Size != 1000 || cfg.Chunking.Overlap != 100 {
		t.Errorf("unexpected chunking defaults: size=%d overlap=%d", cfg.Chunking.Size, cfg.Chunking.Overlap)
	}
	if cfg.RAG.TopK != 12 {
		t.Errorf("unexpected top_k: %d", cfg.RAG.TopK)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
crawler:
  max_depth: 2
  max_pdfs: 10
  request_timeout: 30s
output_dir: corpus
dashboard:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Crawler.MaxDepth != 2 {
		t.Errorf("max_depth = %d, want 2", cfg.Crawler.MaxDepth)
	}
	if cfg.Crawler.MaxPDFs != 10 {
		t.Errorf("max_pdfs = %d, want 10", cfg.Crawler.MaxPDFs)
	}
	if cfg.Crawler.RequestTimeout != 30*time.Second {
		t.Errorf("request_timeout = %v, want 30s", cfg.Crawler.RequestTimeout)
	}
	if cfg.OutputDir != "corpus" {
		t.Errorf("output_dir = %q, want corpus", cfg.OutputDir)
	}
	if cfg.Dashboard.Addr != ":9090" {
		t.Errorf("dashboard addr = %q, want :9090", cfg.Dashboard.Addr)
	}
	// Untouched keys keep their defaults.
	if cfg.Qdrant.Port != 6334 {
		t.Errorf("qdrant port = %d, want 6334", cfg.Qdrant.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QDRANT_HOST", "qdrant.internal")
	t.Setenv("QDRANT_PORT", "7334")
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Qdrant.Host != "qdrant.internal" {
		t.Errorf("qdrant host = %q, want qdrant.internal", cfg.Qdrant.Host)
	}
	if cfg.Qdrant.Port != 7334 {
		t.Errorf("qdrant port = %d, want 7334", cfg.Qdrant.Port)
	}
	if err := cfg.RequireGoogleKey(); err != nil {
		t.Errorf("RequireGoogleKey() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no sites", func(c *Config) { c.Sites = nil }},
		{"site missing locality", func(c *Config) { c.Sites[0].Locality = "" }},
		{"zero depth", func(c *Config) { c.Crawler.MaxDepth = 0 }},
		{"zero pdfs", func(c *Config) { c.Crawler.MaxPDFs = 0 }},
		{"overlap >= size", func(c *Config) { c.Chunking.Overlap = c.Chunking.Size }},
		{"bad strategy", func(c *Config) { c.Chunking.Strategy = "semantic" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Errorf("validate() = nil, want error")
			}
		})
	}
}
