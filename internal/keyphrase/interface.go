package keyphrase

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no keyphrase ranker can run.
var ErrUnavailable = errors.New("keyphrase extractor unavailable")

// Keyphrase is a candidate phrase with its similarity to the document.
type Keyphrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Extractor ranks the keyphrases of a text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Keyphrase, error)
}

// Unavailable is the extractor used when embeddings are missing.
type Unavailable struct{}

func (Unavailable) Extract(context.Context, string) ([]Keyphrase, error) {
	return nil, ErrUnavailable
}

// IsAvailable reports whether e can extract keyphrases.
func IsAvailable(e Extractor) bool {
	switch e.(type) {
	case nil, Unavailable, *Unavailable:
		return false
	}
	return true
}
