package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type testSite struct {
	server *httptest.Server

	mu        sync.Mutex
	requested map[string]bool
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()

	site := &testSite{requested: make(map[string]bool)}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><title>Adyar Times E-Paper</title></head><body>
			<a href="/issues/week1.pdf">Week 1</a>
			<a href="/issues/week2.pdf">Week 2</a>
			<a href="/news/page2.html">Older issues</a>
			<a href="/contact-us">Contact</a>
			<a href="https://other.example.com/x.html">Partner site</a>
			<a href="mailto:editor@example.com">Write to us</a>
		</body></html>`))
	})
	mux.HandleFunc("/news/page2.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body>
			<a href="/issues/week3.pdf">Week 3</a>
			<a href="/issues/week1.pdf">Week 1 again</a>
			<a href="/news/page3.html">Even older</a>
		</body></html>`))
	})
	mux.HandleFunc("/news/page3.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><a href="/issues/week4.pdf">Week 4</a></body></html>`))
	})

	site.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.mu.Lock()
		site.requested[r.URL.Path] = true
		site.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(site.server.Close)

	return site
}

func (s *testSite) wasRequested(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requested[path]
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.RequestTimeout = 5 * time.Second
	cfg.Delay = 0
	cfg.RandomDelay = 0
	cfg.Parallelism = 2
	return cfg
}

func TestCrawlDiscoversPDFLinksWithinDepth(t *testing.T) {
	site := newTestSite(t)

	cfg := testConfig()
	cfg.MaxDepth = 1
	cfg.MaxPDFs = 5

	c, err := NewCrawler(site.server.URL, nil, nil, zap.NewNop(), cfg)
	if err != nil {
		t.Fatalf("NewCrawler() error = %v", err)
	}

	result, err := c.Crawl(context.Background(), site.server.URL)
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	want := []string{
		site.server.URL + "/issues/week1.pdf",
		site.server.URL + "/issues/week2.pdf",
		site.server.URL + "/issues/week3.pdf",
	}
	if len(result.PDFLinks) != len(want) {
		t.Fatalf("PDFLinks = %v, want %v", result.PDFLinks, want)
	}
	for i := range want {
		if result.PDFLinks[i] != want[i] {
			t.Errorf("PDFLinks[%d] = %q, want %q", i, result.PDFLinks[i], want[i])
		}
	}

	if !site.wasRequested("/news/page2.html") {
		t.Error("page at depth 1 should have been visited")
	}
	if site.wasRequested("/news/page3.html") {
		t.Error("page beyond max depth should not have been visited")
	}
	if site.wasRequested("/contact-us") {
		t.Error("low-value page should not have been visited")
	}
	if site.wasRequested("/issues/week1.pdf") {
		t.Error("pdf links should be collected, not visited")
	}

	if result.UniqueURLs < 2 {
		t.Errorf("UniqueURLs = %d, want at least 2", result.UniqueURLs)
	}
}

func TestCrawlStopsAtPDFCap(t *testing.T) {
	site := newTestSite(t)

	cfg := testConfig()
	cfg.MaxDepth = 2
	cfg.MaxPDFs = 2

	c, err := NewCrawler(site.server.URL, nil, nil, zap.NewNop(), cfg)
	if err != nil {
		t.Fatalf("NewCrawler() error = %v", err)
	}

	result, err := c.Crawl(context.Background(), site.server.URL)
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	want := []string{
		site.server.URL + "/issues/week1.pdf",
		site.server.URL + "/issues/week2.pdf",
	}
	if len(result.PDFLinks) != len(want) {
		t.Fatalf("PDFLinks = %v, want exactly the first %d", result.PDFLinks, len(want))
	}
	for i := range want {
		if result.PDFLinks[i] != want[i] {
			t.Errorf("PDFLinks[%d] = %q, want %q", i, result.PDFLinks[i], want[i])
		}
	}
}
