package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText marks a PDF whose text layer is empty (scanned image pages,
// for example). Callers skip the file rather than failing the batch.
var ErrNoText = errors.New("pdf contains no extractable text")

// Extractor pulls the raw text layer out of a PDF, pages joined with a
// newline so downstream passes see page boundaries as line breaks.
type Extractor interface {
	ExtractFromFile(filePath string) (string, error)
	ExtractFromReader(reader io.Reader) (string, error)
}

type LedongthucExtractor struct{}

func NewLedongthucExtractor() *LedongthucExtractor {
	return &LedongthucExtractor{}
}

func (e *LedongthucExtractor) ExtractFromFile(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF file %s: %w", filePath, err)
	}
	defer f.Close()

	return extractPages(r)
}

func (e *LedongthucExtractor) ExtractFromReader(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF stream: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF stream: %w", err)
	}

	return extractPages(r)
}

func extractPages(r *pdf.Reader) (string, error) {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// a broken page should not sink the rest of the issue
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
