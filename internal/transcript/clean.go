package transcript

import (
	"regexp"
	"strings"
)

var reAnnotation = regexp.MustCompile(`\[.*?\]`)

// CleanText removes bracketed annotations like [Music] and collapses whitespace.
func CleanText(s string) string {
	s = reAnnotation.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// MergeOverlapping joins caption texts, dropping the words each text repeats
// from the end of the text before it. Words are compared case-insensitively;
// the casing of the first occurrence is kept.
func MergeOverlapping(texts []string) string {
	if len(texts) == 0 {
		return ""
	}

	result := strings.Fields(texts[0])
	for _, text := range texts[1:] {
		words := strings.Fields(text)
		k := overlap(result, words)
		result = append(result, words[k:]...)
	}

	return strings.Join(result, " ")
}

// overlap returns the largest k where the last k words of prev equal the
// first k words of next.
func overlap(prev, next []string) int {
	best := 0
	n := min(len(prev), len(next))
	for k := 1; k <= n; k++ {
		if wordsEqual(prev[len(prev)-k:], next[:k]) {
			best = k
		}
	}
	return best
}

func wordsEqual(a, b []string) bool {
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

// JoinText concatenates segment texts into the single text blob that is
// split into sentences.
func JoinText(segments []Segment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			texts = append(texts, seg.Text)
		}
	}
	return strings.Join(texts, " ")
}
