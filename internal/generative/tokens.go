package generative

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/pkoukk/tiktoken-go"
)

// tokenCounter estimates prompt size.
type tokenCounter func(text string) int

// newTokenCounter uses the cl100k_base encoding, or a four characters per
// token estimate when the encoding cannot be loaded.
func newTokenCounter(ctx context.Context, log logger.Logger) tokenCounter {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Warn(ctx, "Token encoding unavailable, estimating prompt size: %v", err)
		return estimateTokens
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}
}

func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}
