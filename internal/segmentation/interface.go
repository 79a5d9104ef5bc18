package segmentation

import "context"

// Segmenter partitions a transcript into titled paragraphs.
type Segmenter interface {
	// Segment splits text into sentences and segments them.
	Segment(ctx context.Context, text string) Result
	// SegmentSentences segments an already split sentence list.
	SegmentSentences(ctx context.Context, sentences []string) Result
}
