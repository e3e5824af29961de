package crawler

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageWorthExtracting is a cheap DOM pass that runs before full article
// extraction. E-paper viewer shells carry no paragraph content, and pages
// flagged noindex never yield an article; both skip the extractor.
func pageWorthExtracting(body []byte) bool {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// Unparseable bodies fall through to the extractor.
		return true
	}

	if robots, ok := doc.Find(`meta[name="robots"]`).Attr("content"); ok {
		if strings.Contains(strings.ToLower(robots), "noindex") {
			return false
		}
	}

	return doc.Find("article, main, p").Length() > 0
}
