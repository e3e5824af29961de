package pdftext

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Document is the cleaned text of one newspaper issue plus the stats
// reported after processing.
type Document struct {
	Text           string
	WordCount      int
	ParagraphCount int
}

// Processor turns a downloaded PDF into normalized article text through
// three passes: extract the text layer, filter boilerplate, normalize
// paragraphs.
type Processor struct {
	extractor Extractor
	logger    *zap.Logger
}

func NewProcessor(extractor Extractor, logger *zap.Logger) *Processor {
	return &Processor{
		extractor: extractor,
		logger:    logger,
	}
}

// ProcessFile runs the full pipeline on one PDF. It returns ErrNoText when
// the PDF has no text layer or nothing survives filtering.
func (p *Processor) ProcessFile(path string) (*Document, error) {
	raw, err := p.extractor.ExtractFromFile(path)
	if err != nil {
		return nil, err
	}

	text := Normalize(FilterBoilerplate(raw))
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoText)
	}

	doc := &Document{
		Text:           text,
		WordCount:      len(strings.Fields(text)),
		ParagraphCount: strings.Count(text, "\n\n") + 1,
	}
	p.logger.Info("processed pdf",
		zap.String("file", filepath.Base(path)),
		zap.Int("words", doc.WordCount),
		zap.Int("paragraphs", doc.ParagraphCount))
	return doc, nil
}

// WriteDocument saves one normalized document under dir using the
// one-based sequence number of the source PDF.
func WriteDocument(dir string, seq int, doc *Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("extracted_text_%d.txt", seq))
	if err := os.WriteFile(path, []byte(doc.Text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_-]`)

// SiteDir maps a site URL to its corpus directory name: the host without
// any leading "www.", remaining special characters flattened to
// underscores.
func SiteDir(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse site url %s: %w", rawURL, err)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" {
		return "", fmt.Errorf("site url %s has no host", rawURL)
	}
	return nonWordChars.ReplaceAllString(host, "_"), nil
}
