package crawler

import (
	"time"
)

type Config struct {
	MaxDepth       int
	MaxPDFs        int
	RequestTimeout time.Duration
	Parallelism    int
	Delay          time.Duration
	RandomDelay    time.Duration
	MaxRetries     int
	UserAgent      string
	ProxyURL       string
	StatePath      string
}

// DefaultConfig returns a default crawler configuration
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:       3,
		MaxPDFs:        5,
		RequestTimeout: 10 * time.Second,
		Parallelism:    2,
		Delay:          500 * time.Millisecond,
		RandomDelay:    1 * time.Second,
		MaxRetries:     1,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	}
}
