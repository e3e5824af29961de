package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"hyperlocal/config"
	"hyperlocal/ingest"
	"hyperlocal/repository"
)

type fakeScraper struct {
	calls   []string
	failFor map[string]error
}

func (f *fakeScraper) ScrapeSite(_ context.Context, site config.Site) (*SiteResult, error) {
	f.calls = append(f.calls, site.Locality)
	if err := f.failFor[site.Locality]; err != nil {
		return nil, err
	}
	return &SiteResult{Locality: site.Locality, Documents: 1}, nil
}

type fakeIngestor struct {
	calls []string
	err   error
}

func (f *fakeIngestor) IngestLocality(_ context.Context, locality, dir string) (*ingest.Stats, error) {
	f.calls = append(f.calls, locality+"="+dir)
	if f.err != nil {
		return nil, f.err
	}
	return &ingest.Stats{Locality: locality, Files: 1, Chunks: 2, Upserted: 2, Dim: 8}, nil
}

type fakeGenerator struct {
	localities []string
	err        error
}

func (f *fakeGenerator) Run(_ context.Context, localities []string) ([]repository.Summary, error) {
	f.localities = localities
	if f.err != nil {
		return nil, f.err
	}
	records := make([]repository.Summary, 0, len(localities))
	for _, l := range localities {
		records = append(records, repository.Summary{
			Locality:        l,
			Category:        "general_weekly",
			Headline:        "Weekly Roundup",
			DetailedContent: "The week in brief.",
		})
	}
	return records, nil
}

type fakeStore struct {
	saved []repository.Summary
}

func (f *fakeStore) Save(_ context.Context, records []repository.Summary) error {
	f.saved = records
	return nil
}

func (f *fakeStore) Load(context.Context) ([]repository.Summary, error) {
	return f.saved, nil
}

func testPipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	for _, dir := range []string{"adyartimes_in", "mylaporetimes_com"} {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, dir), 0o755); err != nil {
			t.Fatalf("failed to create site dir: %v", err)
		}
	}
	return cfg
}

func TestPipelineRun(t *testing.T) {
	cfg := testPipelineConfig(t)
	scraper := &fakeScraper{}
	ingestor := &fakeIngestor{}
	generator := &fakeGenerator{}
	store := &fakeStore{}

	p := New(cfg, scraper, ingestor, generator, store, zap.NewNop())
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if want := []string{"adyar", "mylapore"}; !reflect.DeepEqual(scraper.calls, want) {
		t.Errorf("scraped sites = %v, want %v", scraper.calls, want)
	}
	wantIngest := []string{
		"adyar=" + filepath.Join(cfg.OutputDir, "adyartimes_in"),
		"mylapore=" + filepath.Join(cfg.OutputDir, "mylaporetimes_com"),
	}
	if !reflect.DeepEqual(ingestor.calls, wantIngest) {
		t.Errorf("ingest calls = %v, want %v", ingestor.calls, wantIngest)
	}
	if want := []string{"adyar", "mylapore"}; !reflect.DeepEqual(generator.localities, want) {
		t.Errorf("summarized localities = %v, want %v", generator.localities, want)
	}
	if len(store.saved) != 2 {
		t.Errorf("saved %d records, want 2", len(store.saved))
	}
}

func TestPipelinePartialScrapeFailureContinues(t *testing.T) {
	cfg := testPipelineConfig(t)
	scraper := &fakeScraper{failFor: map[string]error{"adyar": errors.New("site down")}}
	ingestor := &fakeIngestor{}

	p := New(cfg, scraper, ingestor, &fakeGenerator{}, &fakeStore{}, zap.NewNop())
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(ingestor.calls) != 2 {
		t.Errorf("ingest ran for %d sites, want 2", len(ingestor.calls))
	}
}

func TestPipelineAllSitesFailing(t *testing.T) {
	cfg := testPipelineConfig(t)
	scraper := &fakeScraper{failFor: map[string]error{
		"adyar":    errors.New("site down"),
		"mylapore": errors.New("site down"),
	}}
	ingestor := &fakeIngestor{}

	p := New(cfg, scraper, ingestor, &fakeGenerator{}, &fakeStore{}, zap.NewNop())
	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error when every site fails")
	}
	if !strings.Contains(err.Error(), "scrape stage") {
		t.Errorf("error = %v, want it wrapped with the stage name", err)
	}
	if len(ingestor.calls) != 0 {
		t.Errorf("ingest ran despite scrape failing, calls = %v", ingestor.calls)
	}
}

func TestPipelineIngestErrorStopsRun(t *testing.T) {
	cfg := testPipelineConfig(t)
	generator := &fakeGenerator{}

	p := New(cfg, &fakeScraper{}, &fakeIngestor{err: errors.New("qdrant unreachable")}, generator, &fakeStore{}, zap.NewNop())
	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failing ingest")
	}
	if !strings.Contains(err.Error(), "ingest stage") {
		t.Errorf("error = %v, want it wrapped with the stage name", err)
	}
	if generator.localities != nil {
		t.Error("summarize ran despite ingest failing")
	}
}

func TestPipelineSkipsMissingContentDirs(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	ingestor := &fakeIngestor{}

	p := New(cfg, &fakeScraper{}, ingestor, &fakeGenerator{}, &fakeStore{}, zap.NewNop())
	if err := p.Ingest(context.Background()); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(ingestor.calls) != 0 {
		t.Errorf("ingest ran for missing dirs, calls = %v", ingestor.calls)
	}
}

func TestLocalitiesDeduplicate(t *testing.T) {
	cfg := config.Default()
	cfg.Sites = []config.Site{
		{Name: "a", Locality: "adyar", URL: "https://adyartimes.in/epaper/"},
		{Name: "b", Locality: "adyar", URL: "https://adyartimes.in/archive/"},
		{Name: "c", Locality: "mylapore", URL: "https://www.mylaporetimes.com/mt-epaper/"},
	}

	p := New(cfg, nil, nil, nil, nil, zap.NewNop())
	if want := []string{"adyar", "mylapore"}; !reflect.DeepEqual(p.Localities(), want) {
		t.Errorf("Localities() = %v, want %v", p.Localities(), want)
	}
}

func TestSchedulerRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	defer s.Stop()

	if err := s.Start("not a cron spec", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}
