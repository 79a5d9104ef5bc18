package generative

import "github.com/nguyentantai21042004/script-extractor/internal/segmentation"

// EqualChunks splits sentences into n = min(10, max(5, len/10)) equal
// chunks, never more chunks than sentences; the last chunk absorbs the
// remainder.
func EqualChunks(sentences []string) segmentation.Result {
	if len(sentences) == 0 {
		return segmentation.Result{Method: segmentation.MethodFallback}
	}

	n := min(10, max(5, len(sentences)/10))
	n = min(n, len(sentences))
	size := len(sentences) / n

	paragraphs := make([][]string, 0, n)
	titles := make([]string, 0, n)
	for i := 0; i < n; i++ {
		start := i * size
		end := start + size
		if i == n-1 {
			end = len(sentences)
		}
		chunk := make([]string, end-start)
		copy(chunk, sentences[start:end])
		paragraphs = append(paragraphs, chunk)
		titles = append(titles, segmentation.NumberedTitle(i))
	}

	return segmentation.Result{
		Paragraphs: paragraphs,
		Titles:     titles,
		Method:     segmentation.MethodFallback,
	}
}
