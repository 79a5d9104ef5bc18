package keyphrase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// reToken matches maximal runs of Unicode letters, digits and underscores.
var reToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Candidates returns the distinct 1..maxNGram word phrases of text in first
// occurrence order. Tokens are lowercased and stop words removed before
// n-grams are formed. Single-character tokens are skipped.
func Candidates(text string, maxNGram int) []string {
	if maxNGram <= 0 {
		maxNGram = 1
	}

	var tokens []string
	for _, tok := range reToken.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(tok) >= 2 && !englishStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}

	seen := make(map[string]bool)
	var out []string
	for i := range tokens {
		for n := 1; n <= maxNGram && i+n <= len(tokens); n++ {
			phrase := strings.Join(tokens[i:i+n], " ")
			if !seen[phrase] {
				seen[phrase] = true
				out = append(out, phrase)
			}
		}
	}
	return out
}
