package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Site is one e-paper source: the seed page that links the weekly PDFs.
type Site struct {
	Name     string `yaml:"name"`
	Locality string `yaml:"locality"`
	URL      string `yaml:"url"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Crawler struct {
	MaxDepth       int           `yaml:"max_depth"`
	MaxPDFs        int           `yaml:"max_pdfs"`
	Workers        int           `yaml:"workers"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Delay          time.Duration `yaml:"delay"`
	RandomDelay    time.Duration `yaml:"random_delay"`
	UserAgent      string        `yaml:"user_agent"`
	ProxyURL       string        `yaml:"proxy"`
	StatePath      string        `yaml:"state_path"`
	UseBrowser     bool          `yaml:"use_browser"`
}

type Chunking struct {
	Size      int    `yaml:"size"`
	Overlap   int    `yaml:"overlap"`
	MinTokens int    `yaml:"min_tokens"`
	Strategy  string `yaml:"strategy"`
}

type Embedding struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BatchSize int    `yaml:"batch_size"`
}

type Qdrant struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LLM struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

type RAG struct {
	TopK int `yaml:"top_k"`
}

type Summaries struct {
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"-"`
}

type Dashboard struct {
	Addr      string `yaml:"addr"`
	PageSize  int    `yaml:"page_size"`
	PprofAddr string `yaml:"pprof_addr"`
}

type Config struct {
	Log       Log       `yaml:"log"`
	Sites     []Site    `yaml:"sites"`
	Crawler   Crawler   `yaml:"crawler"`
	OutputDir string    `yaml:"output_dir"`
	Chunking  Chunking  `yaml:"chunking"`
	Embedding Embedding `yaml:"embedding"`
	Qdrant    Qdrant    `yaml:"qdrant"`
	LLM       LLM       `yaml:"llm"`
	RAG       RAG       `yaml:"rag"`
	Summaries Summaries `yaml:"summaries"`
	Dashboard Dashboard `yaml:"dashboard"`
	Keywords  string    `yaml:"keywords"`
	Schedule  string    `yaml:"schedule"`

	// Secrets come from the environment only.
	GoogleAPIKey string `yaml:"-"`
	OpenAIAPIKey string `yaml:"-"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Default returns the configuration used when no file overrides it: the two
// neighborhood weeklies, a shallow polite crawl, and locally hosted services.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Sites: []Site{
			{Name: "adyartimes", Locality: "adyar", URL: "https://adyartimes.in/epaper/"},
			{Name: "mylaporetimes", Locality: "mylapore", URL: "https://www.mylaporetimes.com/mt-epaper/"},
		},
		Crawler: Crawler{
			MaxDepth:       3,
			MaxPDFs:        5,
			Workers:        4,
			RequestTimeout: 10 * time.Second,
			Delay:          500 * time.Millisecond,
			RandomDelay:    time.Second,
			UserAgent:      defaultUserAgent,
		},
		OutputDir: "scraped_content",
		Chunking:  Chunking{Size: 1000, Overlap: 100, MinTokens: 8, Strategy: "recursive"},
		Embedding: Embedding{Provider: "googleai", Model: "embedding-001", BatchSize: 32},
		Qdrant:    Qdrant{Host: "localhost", Port: 6334},
		LLM:       LLM{Provider: "googleai", Model: "gemini-2.5-flash"},
		RAG:       RAG{TopK: 12},
		Summaries: Summaries{Path: "locality_summaries.json"},
		Dashboard: Dashboard{Addr: ":8080", PageSize: 6},
	}
}

// Load reads the YAML config at path (missing file falls back to defaults),
// then applies environment overrides. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("QDRANT_HOST"); v != "" {
		c.Qdrant.Host = v
	}
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Qdrant.Port = port
		}
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		c.Dashboard.Addr = v
	}
	if v := os.Getenv("PROXY_URL"); v != "" {
		c.Crawler.ProxyURL = v
	}
	c.Summaries.DatabaseURL = os.Getenv("DATABASE_URL")
	c.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	if c.GoogleAPIKey == "" {
		c.GoogleAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
}

func (c *Config) validate() error {
	if len(c.Sites) == 0 {
		return fmt.Errorf("config: at least one site is required")
	}
	for _, s := range c.Sites {
		if s.URL == "" || s.Locality == "" {
			return fmt.Errorf("config: site %q needs both url and locality", s.Name)
		}
	}
	if c.Crawler.MaxDepth < 1 {
		return fmt.Errorf("config: crawler.max_depth must be >= 1")
	}
	if c.Crawler.MaxPDFs < 1 {
		return fmt.Errorf("config: crawler.max_pdfs must be >= 1")
	}
	if c.Chunking.Size <= c.Chunking.Overlap {
		return fmt.Errorf("config: chunking.size must exceed chunking.overlap")
	}
	switch c.Chunking.Strategy {
	case "recursive", "sentence":
	default:
		return fmt.Errorf("config: unknown chunking.strategy %q", c.Chunking.Strategy)
	}
	return nil
}

// RequireGoogleKey fails fast when the Gemini provider is selected without
// credentials, before any crawl work has been spent.
func (c *Config) RequireGoogleKey() error {
	if c.GoogleAPIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required for the %s provider", c.Embedding.Provider)
	}
	return nil
}
