package generative

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

// Segmenter partitions and titles a whole transcript with one language model
// call. It never fails: any problem yields EqualChunks.
type Segmenter interface {
	Segment(ctx context.Context, segments []transcript.Segment) segmentation.Result
}

// generator produces a text completion for a prompt.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
