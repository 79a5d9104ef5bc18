package generative

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

type implSegmenter struct {
	gen             generator
	counter         tokenCounter
	maxPromptTokens int
	logger          logger.Logger
}

// New creates a Segmenter backed by Gemini, rotating through cfg.APIKeys on
// rate limits. Without keys every call falls back to EqualChunks.
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) Segmenter {
	var gen generator
	if len(cfg.APIKeys) > 0 {
		gen = newGemini(cfg.APIKeys, cfg.Model, log)
	} else {
		log.Warn(ctx, "GEMINI_API_KEYS not set, generative segmentation will use equal chunks")
	}

	return &implSegmenter{
		gen:             gen,
		counter:         newTokenCounter(ctx, log),
		maxPromptTokens: cfg.MaxPromptTokens,
		logger:          log,
	}
}
