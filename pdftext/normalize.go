package pdftext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	hyphenBreak    = regexp.MustCompile(`([\p{L}\p{N}_]+)-\n([\p{L}\p{N}_]+)`)
	sentenceEnd    = regexp.MustCompile(`[.!?:;"']$`)
	spaceRuns      = regexp.MustCompile(` +`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normalize reconstructs readable prose from PDF column layout. Hyphenated
// words split across line breaks are rejoined, wrapped lines are buffered
// until sentence-ending punctuation, short headings stay on their own line,
// and blank lines delimit paragraphs which are re-flowed onto single lines
// separated by double newlines.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = hyphenBreak.ReplaceAllString(text, "$1$2")

	lines := strings.Split(text, "\n")
	var normalized []string
	buffer := ""

	flush := func() {
		if buffer != "" {
			normalized = append(normalized, buffer)
			buffer = ""
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			normalized = append(normalized, "")
			continue
		}

		afterBlank := i > 0 && strings.TrimSpace(lines[i-1]) == ""
		if isHeading(line, afterBlank) {
			flush()
			normalized = append(normalized, line)
			continue
		}

		if buffer != "" {
			buffer += " " + line
		} else {
			buffer = line
		}
		if sentenceEnd.MatchString(line) {
			flush()
		}
	}
	flush()

	var paragraphs []string
	var current []string
	for _, line := range normalized {
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	result := strings.Join(paragraphs, "\n\n")
	result = spaceRuns.ReplaceAllString(result, " ")
	result = excessNewlines.ReplaceAllString(result, "\n\n")
	return result
}

// isHeading treats a line as a heading when it is short and either fully
// upper-case or opens a fresh block with a capital letter right after a
// blank line.
func isHeading(line string, afterBlank bool) bool {
	if utf8.RuneCountInString(line) >= 20 {
		return false
	}
	if isUpperString(line) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(first) && afterBlank
}

// isUpperString reports whether the string has at least one cased rune and
// none of its cased runes are lower-case.
func isUpperString(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
