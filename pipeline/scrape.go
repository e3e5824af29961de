package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"hyperlocal/config"
	"hyperlocal/crawler"
	"hyperlocal/pdftext"
	"hyperlocal/relevance"
)

// PDFs can run to tens of megabytes over slow links, so downloads get a
// much longer budget than page fetches.
const downloadTimeout = 5 * time.Minute

// SiteResult is the scrape outcome for one e-paper site.
type SiteResult struct {
	Locality  string
	Dir       string
	PDFLinks  int
	Documents int
	Articles  int
}

// Scraper runs the crawl, download, and text extraction for one site at a
// time: collect PDF links (falling back to a rendered-page harvest when
// the static crawl finds none), fetch the issues, and write cleaned text
// under <output_dir>/<site_dir>/.
type Scraper struct {
	cfg       *config.Config
	filter    relevance.Filter
	state     *crawler.BoltStorage
	browser   *crawler.Browser
	processor *pdftext.Processor
	logger    *zap.Logger
}

func NewScraper(cfg *config.Config, filter relevance.Filter, state *crawler.BoltStorage, logger *zap.Logger) *Scraper {
	return &Scraper{
		cfg:       cfg,
		filter:    filter,
		state:     state,
		browser:   crawler.NewBrowser(logger, cfg.Crawler.UserAgent),
		processor: pdftext.NewProcessor(&pdftext.LedongthucExtractor{}, logger),
		logger:    logger,
	}
}

func (s *Scraper) crawlerConfig() *crawler.Config {
	cc := crawler.DefaultConfig()
	c := s.cfg.Crawler
	cc.MaxDepth = c.MaxDepth
	cc.MaxPDFs = c.MaxPDFs
	if c.RequestTimeout > 0 {
		cc.RequestTimeout = c.RequestTimeout
	}
	if c.Delay > 0 {
		cc.Delay = c.Delay
	}
	if c.RandomDelay > 0 {
		cc.RandomDelay = c.RandomDelay
	}
	if c.UserAgent != "" {
		cc.UserAgent = c.UserAgent
	}
	cc.ProxyURL = c.ProxyURL
	cc.StatePath = c.StatePath
	return cc
}

// ScrapeSite crawls one site, downloads its PDF issues, and writes the
// extracted text documents plus any quality-gated page articles.
func (s *Scraper) ScrapeSite(ctx context.Context, site config.Site) (*SiteResult, error) {
	cc := s.crawlerConfig()

	c, err := crawler.NewCrawler(site.URL, s.filter, s.state, s.logger, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to build crawler for %s: %w", site.URL, err)
	}
	crawlResult, err := c.Crawl(ctx, site.URL)
	if err != nil {
		return nil, err
	}

	pdfLinks := crawlResult.PDFLinks
	if len(pdfLinks) == 0 && s.cfg.Crawler.UseBrowser {
		s.logger.Info("no pdf links from static crawl, rendering seed page",
			zap.String("url", site.URL))
		links, err := s.browser.ExtractRenderedLinks(ctx, site.URL)
		if err != nil {
			return nil, fmt.Errorf("browser fallback failed for %s: %w", site.URL, err)
		}
		pdfLinks = crawler.SelectPDFLinks(links, cc.MaxPDFs)
	}

	siteDir, err := pdftext.SiteDir(site.URL)
	if err != nil {
		return nil, err
	}
	destDir := filepath.Join(s.cfg.OutputDir, siteDir)

	downloads, err := s.downloadPDFs(ctx, pdfLinks, destDir, cc)
	if err != nil {
		return nil, err
	}

	documents := 0
	for _, dl := range downloads {
		if s.state != nil {
			if err := s.state.MarkPDFFetched(dl.URL); err != nil {
				s.logger.Warn("failed to record fetched pdf",
					zap.String("url", dl.URL), zap.Error(err))
			}
		}

		doc, err := s.processor.ProcessFile(dl.Path)
		if err != nil {
			s.logger.Warn("skipping pdf without usable text",
				zap.String("path", dl.Path), zap.Error(err))
			continue
		}
		// extracted_text numbering starts at 1, matching link discovery order
		if _, err := pdftext.WriteDocument(destDir, dl.Seq+1, doc); err != nil {
			return nil, err
		}
		documents++
	}

	if err := s.writeArticles(destDir, crawlResult.Articles); err != nil {
		return nil, err
	}

	result := &SiteResult{
		Locality:  site.Locality,
		Dir:       destDir,
		PDFLinks:  len(pdfLinks),
		Documents: documents,
		Articles:  len(crawlResult.Articles),
	}
	s.logger.Info("site scrape finished",
		zap.String("locality", site.Locality),
		zap.String("dir", destDir),
		zap.Int("pdf_links", result.PDFLinks),
		zap.Int("documents", result.Documents),
		zap.Int("articles", result.Articles))
	return result, nil
}

func (s *Scraper) downloadPDFs(ctx context.Context, urls []string, destDir string, cc *crawler.Config) ([]*crawler.Downloaded, error) {
	if len(urls) == 0 {
		s.logger.Info("no pdf links to download", zap.String("dir", destDir))
		return nil, nil
	}

	var httpClient *http.Client
	if cc.ProxyURL != "" {
		client, _, err := crawler.NewProxyHTTPClient(cc.ProxyURL, downloadTimeout)
		if err != nil {
			return nil, err
		}
		httpClient = client
	} else {
		httpClient = &http.Client{Timeout: downloadTimeout}
	}

	dl := crawler.NewDownloader(httpClient, cc.UserAgent, s.cfg.Crawler.Workers, s.logger)
	if cc.Delay > 0 || cc.RandomDelay > 0 {
		dl.SetDelayRange(cc.Delay, cc.Delay+cc.RandomDelay)
	}
	return dl.DownloadAll(ctx, urls, destDir)
}

// writeArticles adds quality-gated page articles to the site corpus so
// ingestion picks them up alongside the PDF text.
func (s *Scraper) writeArticles(destDir string, articles []*crawler.Article) error {
	if len(articles) == 0 {
		return nil
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create site directory %s: %w", destDir, err)
	}

	for i, a := range articles {
		content := a.Markdown
		if content == "" {
			content = a.Text
		}
		if a.Title != "" {
			content = a.Title + "\n\n" + content
		}
		path := filepath.Join(destDir, fmt.Sprintf("page_text_%d.txt", i+1))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write article %s: %w", path, err)
		}
	}

	s.logger.Info("wrote page articles",
		zap.Int("count", len(articles)),
		zap.String("dir", destDir))
	return nil
}
