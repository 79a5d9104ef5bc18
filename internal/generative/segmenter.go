package generative

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

func (s *implSegmenter) Segment(ctx context.Context, segments []transcript.Segment) segmentation.Result {
	text := transcript.JoinText(segments)
	sentences := segmentation.SplitSentences(text)
	if len(sentences) == 0 {
		return segmentation.Result{Method: segmentation.MethodGenerative}
	}

	if s.gen == nil {
		return EqualChunks(sentences)
	}

	prompt := buildPrompt(text)
	if s.maxPromptTokens > 0 {
		if n := s.counter(prompt); n > s.maxPromptTokens {
			s.logger.Warn(ctx, "Prompt has %d tokens (limit %d), falling back to equal chunks", n, s.maxPromptTokens)
			return EqualChunks(sentences)
		}
	}

	s.logger.Info(ctx, "Calling Gemini for segmentation of %d sentences", len(sentences))
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn(ctx, "Gemini segmentation failed, falling back to equal chunks: %v", err)
		return EqualChunks(sentences)
	}
	s.logger.Debug(ctx, "Gemini response length: %d characters", len(raw))

	paragraphs, titles, err := parseResponse(raw)
	if err != nil {
		s.logger.Warn(ctx, "Gemini response rejected, falling back to equal chunks: %v", err)
		return EqualChunks(sentences)
	}

	s.logger.Info(ctx, "Gemini segmentation: %d topics", len(paragraphs))
	return segmentation.Result{
		Paragraphs: paragraphs,
		Titles:     titles,
		Method:     segmentation.MethodGenerative,
	}
}
