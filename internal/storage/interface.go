package storage

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/output"
)

// SearchHit is one section matched by a vector search.
type SearchHit struct {
	VideoID    string  `json:"video_id"`
	VideoTitle string  `json:"video_title"`
	URL        string  `json:"url"`
	Position   int     `json:"position"`
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// Store persists processed transcripts and searches their sections.
type Store interface {
	SaveTranscript(ctx context.Context, doc output.Document) error
	Search(ctx context.Context, vector []float32, limit int) ([]SearchHit, error)
	Close() error
}
