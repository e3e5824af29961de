package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"hyperlocal/config"
	"hyperlocal/ingest"
	"hyperlocal/pdftext"
	"hyperlocal/repository"
)

// The three stage collaborators are interfaces so stages can run alone
// from the CLI and compose in tests.
type SiteScraper interface {
	ScrapeSite(ctx context.Context, site config.Site) (*SiteResult, error)
}

type LocalityIngestor interface {
	IngestLocality(ctx context.Context, locality, dir string) (*ingest.Stats, error)
}

type SummaryGenerator interface {
	Run(ctx context.Context, localities []string) ([]repository.Summary, error)
}

// Pipeline chains scrape, ingest, and summarize over the configured sites.
type Pipeline struct {
	cfg        *config.Config
	scraper    SiteScraper
	ingestor   LocalityIngestor
	summarizer SummaryGenerator
	summaries  repository.SummaryRepo
	logger     *zap.Logger
}

func New(cfg *config.Config, scraper SiteScraper, ingestor LocalityIngestor, summarizer SummaryGenerator, summaries repository.SummaryRepo, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		scraper:    scraper,
		ingestor:   ingestor,
		summarizer: summarizer,
		summaries:  summaries,
		logger:     logger,
	}
}

// Run executes scrape, ingest, and summarize in order, logging per-stage
// durations. The first failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	stages := []struct {
		name string
		run  func(context.Context) error
	}{
		{"scrape", p.Scrape},
		{"ingest", p.Ingest},
		{"summarize", p.Summarize},
	}

	for _, stage := range stages {
		stageStart := time.Now()
		p.logger.Info("stage started", zap.String("stage", stage.name))
		if err := stage.run(ctx); err != nil {
			return fmt.Errorf("%s stage: %w", stage.name, err)
		}
		p.logger.Info("stage finished",
			zap.String("stage", stage.name),
			zap.Duration("duration", time.Since(stageStart)))
	}

	p.logger.Info("pipeline finished", zap.Duration("duration", time.Since(start)))
	return nil
}

// Scrape crawls every configured site. One site failing does not stop the
// others; the stage fails only when no site succeeds.
func (p *Pipeline) Scrape(ctx context.Context) error {
	failures := 0
	for _, site := range p.cfg.Sites {
		if _, err := p.scraper.ScrapeSite(ctx, site); err != nil {
			failures++
			p.logger.Error("site scrape failed",
				zap.String("locality", site.Locality),
				zap.String("url", site.URL),
				zap.Error(err))
		}
	}
	if failures == len(p.cfg.Sites) {
		return fmt.Errorf("all %d sites failed to scrape", failures)
	}
	return nil
}

// Ingest chunks, embeds, and stores the scraped text per locality. Sites
// with no scraped content directory yet are skipped.
func (p *Pipeline) Ingest(ctx context.Context) error {
	for _, site := range p.cfg.Sites {
		siteDir, err := pdftext.SiteDir(site.URL)
		if err != nil {
			return err
		}
		dir := filepath.Join(p.cfg.OutputDir, siteDir)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			p.logger.Warn("no scraped content for locality",
				zap.String("locality", site.Locality),
				zap.String("dir", dir))
			continue
		}

		stats, err := p.ingestor.IngestLocality(ctx, site.Locality, dir)
		if err != nil {
			return fmt.Errorf("failed to ingest locality %s: %w", site.Locality, err)
		}
		p.logger.Info("locality ingested",
			zap.String("locality", stats.Locality),
			zap.Int("files", stats.Files),
			zap.Int("chunks", stats.Chunks),
			zap.Int("upserted", stats.Upserted))
	}
	return nil
}

// Summarize generates category summaries for every locality and persists
// them.
func (p *Pipeline) Summarize(ctx context.Context) error {
	records, err := p.summarizer.Run(ctx, p.Localities())
	if err != nil {
		return err
	}
	if err := p.summaries.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to save summaries: %w", err)
	}
	p.logger.Info("summaries saved", zap.Int("records", len(records)))
	return nil
}

// Localities returns the configured localities in site order without
// duplicates.
func (p *Pipeline) Localities() []string {
	seen := make(map[string]bool)
	var out []string
	for _, site := range p.cfg.Sites {
		if !seen[site.Locality] {
			seen[site.Locality] = true
			out = append(out, site.Locality)
		}
	}
	return out
}
