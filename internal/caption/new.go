package caption

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/pkg/executor"
)

type implFetcher struct {
	cfg      config.CaptionConfig
	executor executor.Executor
	logger   logger.Logger
	wait     func(context.Context, time.Duration) error
}

// New creates a Fetcher that shells out to yt-dlp.
func New(cfg config.CaptionConfig, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		wait:     waitBackoff,
	}
}

// waitBackoff blocks for d or until ctx is done.
func waitBackoff(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
