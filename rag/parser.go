package rag

import (
	"strings"
	"unicode"
)

// Model output arrives as loosely numbered sections. The headline is the
// first real line that is not a numbered or bulleted item, the short
// summary is rebuilt from the numbered detail lines, and the full raw
// output is kept as the detailed content.
type parsedSummary struct {
	Headline     string
	ShortSummary string
}

var headlineSkipPrefixes = []string{"1.", "2.", "3.", "-", "*"}

func parseSummary(content, category string) parsedSummary {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	headline := ""
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || hasAnyPrefix(line, headlineSkipPrefixes) {
			continue
		}
		headline = cleanHeadline(line)
		if headline != "" {
			break
		}
	}

	var summaryLines []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if hasAnyPrefix(line, []string{"2.", "3."}) || strings.Contains(strings.ToLower(line), "sentence") {
			summaryLines = append(summaryLines, trimmed)
		}
	}

	shortSummary := strings.Join(summaryLines, " ")
	if shortSummary == "" {
		shortSummary = truncateRunes(content, 200) + "..."
	}

	if headline == "" {
		headline = fallbackHeadline(category)
	}
	return parsedSummary{
		Headline:     truncateRunes(headline, 80),
		ShortSummary: shortSummary,
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// cleanHeadline drops markdown markers and a leading "HEADLINE:" label that
// some models prepend despite the prompt.
func cleanHeadline(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	if len(s) >= 9 && strings.EqualFold(s[:9], "headline:") {
		s = strings.TrimSpace(s[9:])
	}
	s = strings.Trim(s, "*_")
	return strings.TrimSpace(s)
}

func fallbackHeadline(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ") + " Updates"
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
