package relevance

import (
	"context"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// KeywordFilter matches content against locality keywords and phrases.
type KeywordFilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewKeywordFilter initializes the filter from a comma-separated list of
// keywords/phrases. Matching is case-insensitive.
func NewKeywordFilter(query string) (*KeywordFilter, error) {
	parts := strings.Split(query, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keywords = append(keywords, strings.ToLower(p))
		}
	}

	matcher := ahocorasick.NewStringMatcher(keywords)

	return &KeywordFilter{
		matcher:  matcher,
		keywords: keywords,
	}, nil
}

// IsContentRelevant reports whether at least one keyword/phrase occurs in
// the content. The score is the fraction of distinct keywords found.
func (f *KeywordFilter) IsContentRelevant(_ context.Context, content string) (bool, float32, error) {
	if content == "" || len(f.keywords) == 0 {
		return false, 0.0, nil
	}
	contentLower := strings.ToLower(content)

	matches := f.matcher.MatchThreadSafe([]byte(contentLower))
	if len(matches) == 0 {
		return false, 0.0, nil
	}

	found := make(map[string]struct{})
	for _, idx := range matches {
		found[f.keywords[idx]] = struct{}{}
	}

	score := float32(len(found)) / float32(len(f.keywords))

	return true, score, nil
}
