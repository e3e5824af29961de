package crawler

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// URLValidator decides which discovered links stay inside the crawl. The
// crawl never leaves the seed site: a link is internal when its host equals
// the seed host, ignoring a leading "www.".
type URLValidator struct {
	baseHost string
}

func NewURLValidator(seedURL string) (*URLValidator, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed url %s: %w", seedURL, err)
	}
	host := normalizeHost(u.Hostname())
	if host == "" {
		return nil, fmt.Errorf("seed url %s has no host", seedURL)
	}
	return &URLValidator{baseHost: host}, nil
}

// IsInternal reports whether the URL belongs to the seed site over http(s).
func (v *URLValidator) IsInternal(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return normalizeHost(u.Hostname()) == v.baseHost
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

var skipPattern = regexp.MustCompile(`(?i)(contact|privacy|terms|faq|about|signin|login|register|subscribe|feedback|cookies|sitemap|help|advertise|careers)`)

// shouldSkipURL drops site furniture pages that never lead to news content.
func shouldSkipURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	path := strings.ToLower(parsed.Path)
	path = strings.ReplaceAll(path, "_", "-")
	path = strings.ReplaceAll(path, ".", "-")

	return skipPattern.MatchString(path)
}

// IsPDFLink reports whether a resolved link points at a PDF, matched on the
// lowercased URL suffix.
func IsPDFLink(rawURL string) bool {
	return strings.HasSuffix(strings.ToLower(rawURL), ".pdf")
}

// SelectPDFLinks filters a rendered link list down to deduplicated PDF
// links, keeping order, capped at max.
func SelectPDFLinks(links []string, max int) []string {
	seen := make(map[string]struct{}, len(links))
	var out []string
	for _, link := range links {
		if len(out) >= max {
			break
		}
		if !IsPDFLink(link) {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	return out
}
