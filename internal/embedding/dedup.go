package embedding

import (
	"context"
	"fmt"
)

type dedupProvider struct {
	inner Provider
}

// Dedup embeds each distinct sentence once per call.
func Dedup(inner Provider) Provider {
	return &dedupProvider{inner: inner}
}

func (d *dedupProvider) Name() string { return d.inner.Name() }

func (d *dedupProvider) Embed(ctx context.Context, sentences []string) ([][]float32, error) {
	index := make(map[string]int, len(sentences))
	var unique []string
	positions := make([]int, len(sentences))
	for i, s := range sentences {
		pos, ok := index[s]
		if !ok {
			pos = len(unique)
			index[s] = pos
			unique = append(unique, s)
		}
		positions[i] = pos
	}

	if len(unique) == len(sentences) {
		return d.inner.Embed(ctx, sentences)
	}

	vectors, err := d.inner.Embed(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(unique) {
		return nil, fmt.Errorf("embed unique sentences: got %d vectors for %d inputs", len(vectors), len(unique))
	}

	out := make([][]float32, len(sentences))
	for i, pos := range positions {
		out[i] = vectors[pos]
	}
	return out, nil
}

func (d *dedupProvider) Close() error { return Close(d.inner) }
