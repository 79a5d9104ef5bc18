package segmentation

import (
	"regexp"
	"strings"
)

var reTerminal = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on runs of terminal punctuation, keeping the
// punctuation on the sentence it ends. A trailing fragment without
// punctuation is kept as the last sentence.
func SplitSentences(text string) []string {
	var sentences []string

	last := 0
	for _, loc := range reTerminal.FindAllStringIndex(text, -1) {
		body := strings.TrimSpace(text[last:loc[0]])
		if body != "" {
			sentences = append(sentences, body+text[loc[0]:loc[1]])
		}
		last = loc[1]
	}

	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
