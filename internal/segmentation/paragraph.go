package segmentation

// GroupParagraphs walks sentences in order and starts a new paragraph at a
// boundary only when the current one already holds minLength sentences. A
// short final paragraph is merged into the one before it.
func GroupParagraphs(sentences []string, boundaries []int, minLength int) [][]string {
	if len(sentences) == 0 {
		return nil
	}

	isBoundary := make(map[int]bool, len(boundaries))
	for _, b := range boundaries {
		isBoundary[b] = true
	}

	var paragraphs [][]string
	var current []string
	for i, sentence := range sentences {
		if isBoundary[i] && len(current) > 0 && len(current) >= minLength {
			paragraphs = append(paragraphs, current)
			current = nil
		}
		current = append(current, sentence)
	}

	if len(paragraphs) > 0 && len(current) < minLength {
		last := len(paragraphs) - 1
		paragraphs[last] = append(paragraphs[last], current...)
	} else {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}

// FixedChunks groups sentences into consecutive chunks of size; the last
// chunk may be shorter.
func FixedChunks(sentences []string, size int) [][]string {
	if size <= 0 {
		size = 4
	}

	var paragraphs [][]string
	for start := 0; start < len(sentences); start += size {
		end := min(start+size, len(sentences))
		chunk := make([]string, end-start)
		copy(chunk, sentences[start:end])
		paragraphs = append(paragraphs, chunk)
	}
	return paragraphs
}
