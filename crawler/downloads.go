package crawler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"go.uber.org/zap"
)

// Downloaded describes one fetched PDF. Seq is the position of the link in
// discovery order and drives the extracted_text numbering later on.
type Downloaded struct {
	URL  string
	Path string
	Seq  int
	Size int64
}

// Downloader fetches PDF files concurrently with a polite random delay
// before each request.
type Downloader struct {
	grabClient *grab.Client
	logger     *zap.Logger
	workers    int
	minDelay   time.Duration
	maxDelay   time.Duration
}

func NewDownloader(httpClient *http.Client, userAgent string, workers int, logger *zap.Logger) *Downloader {
	grabClient := grab.NewClient()
	if httpClient != nil {
		grabClient.HTTPClient = httpClient
	}
	grabClient.UserAgent = userAgent

	if workers <= 0 {
		workers = 4
	}

	return &Downloader{
		grabClient: grabClient,
		logger:     logger,
		workers:    workers,
		minDelay:   500 * time.Millisecond,
		maxDelay:   2 * time.Second,
	}
}

// SetDelayRange overrides the polite delay window.
func (d *Downloader) SetDelayRange(min, max time.Duration) {
	d.minDelay = min
	d.maxDelay = max
}

// DownloadAll fetches every URL into destDir using a fixed worker pool.
// Results keep discovery order; failed downloads are logged and omitted.
func (d *Downloader) DownloadAll(ctx context.Context, urls []string, destDir string) ([]*Downloaded, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create downloads directory %s: %w", destDir, err)
	}

	type job struct {
		seq int
		url string
	}

	jobs := make(chan job)
	results := make([]*Downloaded, len(urls))
	names := d.assignFilenames(urls)

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				dl, err := d.download(ctx, j.url, filepath.Join(destDir, names[j.seq]), j.seq)
				if err != nil {
					d.logger.Error("download failed",
						zap.String("url", j.url),
						zap.Error(err))
					continue
				}
				results[j.seq] = dl
			}
		}()
	}

	for i, u := range urls {
		select {
		case jobs <- job{seq: i, url: u}:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	downloaded := make([]*Downloaded, 0, len(urls))
	for _, r := range results {
		if r != nil {
			downloaded = append(downloaded, r)
		}
	}

	d.logger.Info("downloads finished",
		zap.Int("requested", len(urls)),
		zap.Int("completed", len(downloaded)))

	return downloaded, nil
}

func (d *Downloader) download(ctx context.Context, rawURL, destPath string, seq int) (*Downloaded, error) {
	// polite jitter so concurrent workers do not hammer the site
	if d.maxDelay > d.minDelay {
		delay := d.minDelay + rand.N(d.maxDelay-d.minDelay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	d.logger.Info("starting download",
		zap.String("url", rawURL),
		zap.String("path", destPath))

	req, err := grab.NewRequest(destPath, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create grab request: %w", err)
	}
	req = req.WithContext(ctx)

	resp := d.grabClient.Do(req)

	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			d.logger.Debug("download progress",
				zap.String("url", rawURL),
				zap.Float64("progress", resp.Progress()*100),
				zap.Int64("bytes_complete", resp.BytesComplete()),
				zap.Int64("bytes_total", resp.Size()))

		case <-resp.Done:
			if err := resp.Err(); err != nil {
				return nil, fmt.Errorf("download failed: %w", err)
			}

			d.logger.Info("file downloaded",
				zap.String("path", resp.Filename),
				zap.Int64("size", resp.Size()),
				zap.Duration("duration", resp.Duration()))

			return &Downloaded{
				URL:  rawURL,
				Path: resp.Filename,
				Seq:  seq,
				Size: resp.Size(),
			}, nil
		}
	}
}

// assignFilenames derives a local filename per URL from the URL path
// basename, falling back to a sequence name and de-duplicating collisions.
func (d *Downloader) assignFilenames(urls []string) []string {
	names := make([]string, len(urls))
	used := make(map[string]struct{}, len(urls))

	for i, rawURL := range urls {
		name := ""
		if u, err := url.Parse(rawURL); err == nil {
			name = path.Base(u.Path)
		}
		if name == "" || name == "." || name == "/" || !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name = fmt.Sprintf("document_%d.pdf", i+1)
		}
		if _, taken := used[name]; taken {
			name = fmt.Sprintf("%d_%s", i+1, name)
		}
		used[name] = struct{}{}
		names[i] = name
	}
	return names
}
