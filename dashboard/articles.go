package dashboard

import (
	"strings"
	"unicode"

	"hyperlocal/repository"
)

// Article is one publishable summary with its display fields precomputed,
// so templates stay free of string munging.
type Article struct {
	ID              int
	Record          repository.Summary
	CategoryDisplay string
	CategoryClass   string
	Headline        string
	CardSummary     string

	terms map[string]struct{}
}

// BuildArticles keeps only publishable records: error placeholders and
// records without a headline or detailed content are dropped. IDs are
// positions in the kept list, so article links stay stable for a given
// summaries file.
func BuildArticles(records []repository.Summary) []*Article {
	articles := make([]*Article, 0, len(records))
	for _, rec := range records {
		if rec.IsError() || rec.Headline == "" || rec.DetailedContent == "" {
			continue
		}
		headline := stripHeadingMarkers(rec.Headline)
		summary := rec.ShortSummary
		if summary == "" || summary == headline {
			summary = rec.DetailedContent
		}
		articles = append(articles, &Article{
			ID:              len(articles),
			Record:          rec,
			CategoryDisplay: categoryDisplay(rec.Category),
			CategoryClass:   strings.ReplaceAll(rec.Category, "_", "-"),
			Headline:        headline,
			CardSummary:     truncate(stripHeadingMarkers(summary), 150),
			terms:           stemTerms(headline + " " + rec.ShortSummary),
		})
	}
	return articles
}

// contentLines splits detailed content into paragraphs for the detail
// view, dropping markdown heading markers the model sometimes emits.
func contentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = stripHeadingMarkers(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func stripHeadingMarkers(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "#", ""))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func categoryDisplay(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
