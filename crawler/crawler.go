package crawler

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"

	"hyperlocal/relevance"
)

// Result holds everything one crawl session produced for a site.
type Result struct {
	SeedURL    string
	PDFLinks   []string
	Articles   []*Article
	Visits     int
	UniqueURLs int
}

// Crawler walks one news site breadth-first, bounded by depth and by the
// PDF cap, collecting e-paper PDF links and quality-gated article text.
type Crawler struct {
	collector *colly.Collector
	validator *URLValidator
	visits    *VisitTracker
	pdfs      *PDFTracker
	relevance relevance.Filter
	state     *BoltStorage
	config    *Config
	logger    *zap.Logger

	mu       sync.Mutex
	articles []*Article
}

// NewCrawler builds a collector for one seed site. The relevance filter is
// optional; when set, extracted articles must pass it to be kept. The
// state storage is optional; when set, visited URLs and fetched PDFs
// survive restarts.
func NewCrawler(seedURL string, filter relevance.Filter, state *BoltStorage, logger *zap.Logger, config *Config) (*Crawler, error) {
	if config == nil {
		config = DefaultConfig()
	}

	validator, err := NewURLValidator(seedURL)
	if err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.UserAgent(config.UserAgent),
		// colly counts the seed request as depth 1
		colly.MaxDepth(config.MaxDepth+1),
		colly.Async(true),
	)
	c.SetRequestTimeout(config.RequestTimeout)
	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: config.Parallelism,
		Delay:       config.Delay,
		RandomDelay: config.RandomDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set crawl limits: %w", err)
	}

	if config.ProxyURL != "" {
		client, transport, err := NewProxyHTTPClient(config.ProxyURL, config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		c.WithTransport(transport)
		c.SetClient(client)
	}

	if state != nil {
		if err := c.SetStorage(state); err != nil {
			return nil, fmt.Errorf("failed to attach crawl state storage: %w", err)
		}
	}

	return &Crawler{
		collector: c,
		validator: validator,
		visits:    NewVisitTracker(),
		pdfs:      NewPDFTracker(config.MaxPDFs),
		relevance: filter,
		state:     state,
		config:    config,
		logger:    logger,
	}, nil
}

// NewProxyHTTPClient builds an HTTP client that dials through a SOCKS5
// proxy. The crawler and the PDF downloader share it so both ride the same
// circuit.
func NewProxyHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, *http.Transport, error) {
	dialer, err := proxy.SOCKS5("tcp", proxyURL, nil, proxy.Direct)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}

	dialContext := func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}
	transport := &http.Transport{DialContext: dialContext, DisableKeepAlives: false}
	client := &http.Client{Transport: transport, Timeout: timeout}
	return client, transport, nil
}

// Crawl walks the site starting from the seed URL and blocks until the
// crawl frontier is exhausted or the PDF cap is reached.
func (w *Crawler) Crawl(ctx context.Context, seedURL string) (*Result, error) {
	w.setupEventHandlers(ctx)

	if err := w.collector.Visit(seedURL); err != nil {
		return nil, fmt.Errorf("failed to visit seed url %s: %w", seedURL, err)
	}
	w.collector.Wait()

	result := &Result{
		SeedURL:    seedURL,
		PDFLinks:   w.pdfs.Links(),
		Articles:   w.collectedArticles(),
		Visits:     w.visits.GetTotalVisits(),
		UniqueURLs: w.visits.GetUniqueURLsCount(),
	}

	w.logger.Info("crawl session completed",
		zap.String("seed_url", seedURL),
		zap.Int("pdf_links", len(result.PDFLinks)),
		zap.Int("articles", len(result.Articles)),
		zap.Int("total_visits", result.Visits),
		zap.Int("unique_urls", result.UniqueURLs))

	return result, nil
}

// setupEventHandlers configures all colly event handlers
func (w *Crawler) setupEventHandlers(ctx context.Context) {
	w.collector.OnRequest(w.OnRequest())
	w.collector.OnHTML("a[href]", w.OnHTML())
	w.collector.OnError(w.OnError(w.collector))
	w.collector.OnResponse(w.OnResponse(ctx))
}

func (w *Crawler) collectedArticles() []*Article {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*Article, len(w.articles))
	copy(out, w.articles)
	return out
}

func (w *Crawler) keepArticle(a *Article) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.articles = append(w.articles, a)
}
