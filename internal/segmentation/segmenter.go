package segmentation

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
)

func (s *implSegmenter) Segment(ctx context.Context, text string) Result {
	return s.SegmentSentences(ctx, SplitSentences(text))
}

func (s *implSegmenter) SegmentSentences(ctx context.Context, sentences []string) Result {
	switch len(sentences) {
	case 0:
		return Result{Method: MethodSemantic}
	case 1:
		return Result{
			Paragraphs: [][]string{{sentences[0]}},
			Titles:     numbered(1),
			Method:     MethodSemantic,
		}
	}

	if !embedding.IsAvailable(s.provider) {
		s.logger.Warn(ctx, "Embedding provider unavailable: %v. Falling back to fixed chunks", s.provider)
		return Fallback(sentences)
	}

	s.logger.Info(ctx, "Processing %d sentences with %s embeddings", len(sentences), s.provider.Name())

	vectors, err := s.embed(ctx, sentences)
	if err != nil {
		s.logger.Warn(ctx, "Embedding failed, falling back to fixed chunks: %v", err)
		return Fallback(sentences)
	}

	boundaries := s.boundaries(ctx, Similarities(vectors))
	paragraphs := GroupParagraphs(sentences, boundaries, s.opts.MinParagraphLength)
	s.logger.Info(ctx, "Created %d semantic paragraphs", len(paragraphs))

	titles := s.titles.Titles(ctx, paragraphs)
	for i, title := range titles {
		s.logger.Debug(ctx, "  %d. %s", i+1, title)
	}

	return Result{
		Paragraphs: paragraphs,
		Titles:     titles,
		Method:     MethodSemantic,
		Embeddings: paragraphEmbeddings(paragraphs, vectors),
	}
}

func (s *implSegmenter) embed(ctx context.Context, sentences []string) ([][]float32, error) {
	vectors, err := s.provider.Embed(ctx, sentences)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(sentences) {
		return nil, fmt.Errorf("embed sentences: got %d vectors for %d sentences", len(vectors), len(sentences))
	}
	return vectors, nil
}

func (s *implSegmenter) boundaries(ctx context.Context, sims []float64) []int {
	switch s.opts.Strategy {
	case StrategyTop:
		return TopBoundaries(sims, s.opts.TargetParagraphs, s.opts.MinGap)
	case StrategyRatio:
		return RatioBoundaries(sims, s.opts.DropRatio, s.opts.RatioMinGap)
	default:
		boundaries, report := ElbowBoundaries(sims, ElbowOptions{
			MinGap:        s.opts.MinGap,
			MinParagraphs: s.opts.MinParagraphs,
			MaxParagraphs: s.opts.MaxParagraphs,
		})
		s.logger.Info(ctx, "Elbow analysis: %d significant topic shifts detected (elbow=%d, above threshold=%d)",
			report.Count, report.Elbow, report.Significant)
		return boundaries
	}
}

// Fallback groups sentences into fixed chunks with numbered titles.
func Fallback(sentences []string) Result {
	paragraphs := FixedChunks(sentences, fallbackChunkSize)
	return Result{
		Paragraphs: paragraphs,
		Titles:     numbered(len(paragraphs)),
		Method:     MethodFallback,
	}
}

// paragraphEmbeddings averages the sentence vectors of each paragraph.
func paragraphEmbeddings(paragraphs [][]string, vectors [][]float32) [][]float32 {
	out := make([][]float32, 0, len(paragraphs))
	pos := 0
	for _, p := range paragraphs {
		mean := make([]float32, len(vectors[pos]))
		for _, v := range vectors[pos : pos+len(p)] {
			for d := range mean {
				mean[d] += v[d]
			}
		}
		for d := range mean {
			mean[d] /= float32(len(p))
		}
		out = append(out, embedding.Normalize(mean))
		pos += len(p)
	}
	return out
}
