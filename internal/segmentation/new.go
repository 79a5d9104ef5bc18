package segmentation

import (
	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

// fallbackChunkSize is the paragraph size used when no embeddings are available.
const fallbackChunkSize = 4

type implSegmenter struct {
	opts     Options
	provider embedding.Provider
	titles   TitleExtractor
	logger   logger.Logger
}

// New creates a Segmenter. A nil or unavailable provider selects the fixed
// chunk fallback; a nil title extractor selects numbered titles.
func New(opts Options, provider embedding.Provider, titles TitleExtractor, log logger.Logger) Segmenter {
	if provider == nil {
		provider = embedding.Unavailable{Reason: "no embedding provider configured"}
	}
	if titles == nil || !opts.ExtractTitles {
		titles = NumberedTitles{}
	}
	if opts.MinParagraphLength <= 0 {
		opts.MinParagraphLength = 1
	}

	return &implSegmenter{
		opts:     opts,
		provider: provider,
		titles:   titles,
		logger:   log,
	}
}
