package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scamKeywords are marketing phrases that correlate with fraudulent
// listings. Each keyword counts at most once per text regardless of how
// often it repeats.
var scamKeywords = []string{
	"limited stock",
	"best offer",
	"free trial",
	"exclusive",
	"guaranteed",
	"order now",
	"act now",
	"no other product",
	"100%",
}

// Length returns the character (rune) count of text.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// tokenize lowercases text, replaces every non-alphanumeric rune with a
// space, and splits on whitespace.
func tokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(mapped)
}

// RepetitionScore measures how repetitive the text's vocabulary is:
// 1 - (distinct tokens / total tokens), in [0,1). 0 for empty text.
func RepetitionScore(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	return 1.0 - float64(len(unique))/float64(len(tokens))
}

// UppercaseRatio returns the fraction of alphabetic runes that are
// uppercase. 0 when the text has no alphabetic runes.
func UppercaseRatio(text string) float64 {
	var letters, upper int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0.0
	}
	return float64(upper) / float64(letters)
}

// ExclamationCount counts '!' runes in text.
func ExclamationCount(text string) int {
	return strings.Count(text, "!")
}

// ScamKeywordCount counts how many scam keywords appear in text,
// case-insensitively, each at most once.
func ScamKeywordCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range scamKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
