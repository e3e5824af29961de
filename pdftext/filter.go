package pdftext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Recurring e-paper furniture removed before normalization. Order matters:
// contact details are stripped before the short-line pass so the husks they
// leave behind get dropped as fragments.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Page \d+ of \d+`),
	regexp.MustCompile(`(?i)Copyright ©.*?reserved`),
	regexp.MustCompile(`(?i)www\.[a-zA-Z0-9-]+\.[a-z]{2,}`),
	regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`),
	regexp.MustCompile(`(?i)(?:(?:\+|00)[1-9]\d{1,2}[\s-]?)?(?:\d{2,4}[\s-]?){2,5}`),
	regexp.MustCompile(`(?i)ADVERTISEMENT`),
	regexp.MustCompile(`(?i)CLASSIFIEDS`),
}

// FilterBoilerplate strips page markers, copyright notices, web addresses,
// emails, phone numbers and ad-section labels, then drops residual fragments
// of at most two words shorter than fifteen characters. Blank lines survive
// so paragraph boundaries are still visible to Normalize.
func FilterBoilerplate(text string) string {
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	lines := strings.Split(text, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			filtered = append(filtered, "")
			continue
		}
		if len(strings.Fields(line)) <= 2 && utf8.RuneCountInString(line) < 15 {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}
