package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the shortest token retained by Tokenize. Shorter tokens
// are almost always articles, pronouns and other low-signal words.
const minTokenLength = 3

// Tokenize breaks text into normalized terms: lowercased, split on any
// non-alphanumeric rune, with tokens shorter than three characters dropped.
// The same function is applied to documents and queries so both sides of a
// score agree on term boundaries.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// termCounts tallies occurrences per term.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}
