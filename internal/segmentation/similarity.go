package segmentation

import "github.com/nguyentantai21042004/script-extractor/internal/embedding"

// Similarities returns the cosine similarity of each adjacent pair of
// embeddings: sim[i] relates sentence i and i+1.
func Similarities(embeddings [][]float32) []float64 {
	if len(embeddings) < 2 {
		return nil
	}

	sims := make([]float64, len(embeddings)-1)
	for i := range sims {
		sims[i] = embedding.Cosine(embeddings[i], embeddings[i+1])
	}
	return sims
}
