package dashboard

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// stemWord reduces a token to its snowball stem so "festivals" finds
// "festival". Tokens the stemmer rejects fall back to lowercase.
func stemWord(word string) string {
	stemmed, err := snowball.Stem(strings.ToLower(word), "english", true)
	if err != nil || stemmed == "" {
		return strings.ToLower(word)
	}
	return stemmed
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func stemTerms(s string) map[string]struct{} {
	terms := make(map[string]struct{}, 16)
	for _, tok := range tokenize(s) {
		terms[stemWord(tok)] = struct{}{}
	}
	return terms
}

// matchesQuery reports whether every query token's stem appears in terms.
func matchesQuery(terms map[string]struct{}, query string) bool {
	for _, tok := range tokenize(query) {
		if _, ok := terms[stemWord(tok)]; !ok {
			return false
		}
	}
	return true
}
