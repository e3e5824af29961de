package crawler

import (
	"sync"
)

// VisitTracker counts page visits within one crawl session.
type VisitTracker struct {
	visitedURL map[string]int
	mutex      sync.RWMutex
}

func NewVisitTracker() *VisitTracker {
	return &VisitTracker{
		visitedURL: make(map[string]int),
	}
}

// ShouldVisit reports whether the URL has not been requested yet.
func (vt *VisitTracker) ShouldVisit(url string) bool {
	vt.mutex.RLock()
	defer vt.mutex.RUnlock()

	return vt.visitedURL[url] == 0
}

// RecordVisit records a request to a URL.
func (vt *VisitTracker) RecordVisit(url string) {
	vt.mutex.Lock()
	defer vt.mutex.Unlock()

	vt.visitedURL[url]++
}

// GetTotalVisits returns the total number of requests recorded.
func (vt *VisitTracker) GetTotalVisits() int {
	vt.mutex.RLock()
	defer vt.mutex.RUnlock()

	total := 0
	for _, count := range vt.visitedURL {
		total += count
	}
	return total
}

// GetUniqueURLsCount returns the number of unique URLs requested.
func (vt *VisitTracker) GetUniqueURLsCount() int {
	vt.mutex.RLock()
	defer vt.mutex.RUnlock()

	return len(vt.visitedURL)
}

// PDFTracker collects PDF links in discovery order, deduplicated, up to a
// fixed cap. Once the cap is reached the crawl has everything it needs.
type PDFTracker struct {
	seen  map[string]struct{}
	links []string
	max   int
	mutex sync.RWMutex
}

func NewPDFTracker(max int) *PDFTracker {
	return &PDFTracker{
		seen: make(map[string]struct{}),
		max:  max,
	}
}

// Add records a PDF link. It returns false when the link is a duplicate or
// the cap is already reached.
func (pt *PDFTracker) Add(url string) bool {
	pt.mutex.Lock()
	defer pt.mutex.Unlock()

	if len(pt.links) >= pt.max {
		return false
	}
	if _, ok := pt.seen[url]; ok {
		return false
	}
	pt.seen[url] = struct{}{}
	pt.links = append(pt.links, url)
	return true
}

// Full reports whether the cap is reached.
func (pt *PDFTracker) Full() bool {
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	return len(pt.links) >= pt.max
}

// Links returns the collected links in discovery order.
func (pt *PDFTracker) Links() []string {
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	out := make([]string, len(pt.links))
	copy(out, pt.links)
	return out
}
