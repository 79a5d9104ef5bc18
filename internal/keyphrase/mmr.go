package keyphrase

import (
	"context"
	"fmt"
	"math"

	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
)

// Options tunes the MMR ranker.
type Options struct {
	TopN      int
	Diversity float64
	MaxNGram  int
}

// DefaultOptions returns top 3, diversity 0.5, phrases of up to 3 words.
func DefaultOptions() Options {
	return Options{TopN: 3, Diversity: 0.5, MaxNGram: 3}
}

type mmrExtractor struct {
	provider embedding.Provider
	opts     Options
}

// NewMMR ranks candidates by Maximal Marginal Relevance over provider's
// embeddings. An unavailable provider yields Unavailable.
func NewMMR(provider embedding.Provider, opts Options) Extractor {
	if !embedding.IsAvailable(provider) {
		return Unavailable{}
	}
	if opts.TopN <= 0 {
		opts.TopN = 3
	}
	if opts.MaxNGram <= 0 {
		opts.MaxNGram = 3
	}
	return &mmrExtractor{provider: provider, opts: opts}
}

func (m *mmrExtractor) Extract(ctx context.Context, text string) ([]Keyphrase, error) {
	candidates := Candidates(text, m.opts.MaxNGram)
	if len(candidates) == 0 {
		return nil, nil
	}

	inputs := append([]string{text}, candidates...)
	vectors, err := m.provider.Embed(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("embed candidates: %w", err)
	}
	if len(vectors) != len(inputs) {
		return nil, fmt.Errorf("embed candidates: got %d vectors for %d inputs", len(vectors), len(inputs))
	}

	doc, words := vectors[0], vectors[1:]
	docSim := make([]float64, len(words))
	for i, w := range words {
		docSim[i] = embedding.Cosine(w, doc)
	}

	selected := mmr(words, docSim, min(m.opts.TopN, len(words)), m.opts.Diversity)

	out := make([]Keyphrase, len(selected))
	for i, idx := range selected {
		out[i] = Keyphrase{Phrase: candidates[idx], Score: docSim[idx]}
	}
	return out, nil
}

// mmr picks the most document-similar candidate first, then repeatedly the
// candidate maximizing (1-diversity)*docSim - diversity*maxSimToSelected.
func mmr(words [][]float32, docSim []float64, topN int, diversity float64) []int {
	if topN <= 0 {
		return nil
	}

	best := 0
	for i := range docSim {
		if docSim[i] > docSim[best] {
			best = i
		}
	}
	selected := []int{best}
	chosen := map[int]bool{best: true}

	for len(selected) < topN {
		next, nextScore := -1, math.Inf(-1)
		for i := range words {
			if chosen[i] {
				continue
			}
			maxSim := math.Inf(-1)
			for _, s := range selected {
				maxSim = max(maxSim, embedding.Cosine(words[i], words[s]))
			}
			score := (1-diversity)*docSim[i] - diversity*maxSim
			if score > nextScore {
				next, nextScore = i, score
			}
		}
		if next < 0 {
			break
		}
		selected = append(selected, next)
		chosen[next] = true
	}
	return selected
}
