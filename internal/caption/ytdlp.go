package caption

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const unknownTitle = "unknown_title"

// VideoInfo fetches the id and title of a video without downloading it.
func (f *implFetcher) VideoInfo(ctx context.Context, url string) (VideoInfo, error) {
	if _, err := ParseVideoID(url); err != nil {
		return VideoInfo{}, err
	}

	f.logger.Info(ctx, "Fetching video info: %s", url)

	var out string
	err := f.withRetry(ctx, "video info", func(ctx context.Context) error {
		var err error
		out, err = f.executor.Execute(ctx, f.cfg.BinaryPath,
			"--dump-single-json",
			"--skip-download",
			"--no-warnings",
			url,
		)
		return err
	})
	if err != nil {
		return VideoInfo{}, err
	}

	var meta struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return VideoInfo{}, fmt.Errorf("decode video info: %w", err)
	}
	if meta.Title == "" {
		meta.Title = unknownTitle
	}

	f.logger.Info(ctx, "Video: %s (%s)", meta.Title, meta.ID)
	return VideoInfo{ID: meta.ID, Title: meta.Title, URL: url}, nil
}

// Download fetches the auto-generated or manual caption track as VTT.
func (f *implFetcher) Download(ctx context.Context, info VideoInfo, workDir string) (string, error) {
	f.logger.Info(ctx, "Downloading %s captions for %s", f.cfg.Language, info.ID)

	err := f.withRetry(ctx, "download captions", func(ctx context.Context) error {
		_, err := f.executor.ExecuteInDir(ctx, workDir, f.cfg.BinaryPath,
			"--write-subs",
			"--write-auto-subs",
			"--sub-langs", f.cfg.Language,
			"--sub-format", "vtt",
			"--skip-download",
			"--no-warnings",
			"-o", filepath.Join(workDir, info.ID+".%(ext)s"),
			"--extractor-args", "youtube:player_client=android,web;skip=dash,hls",
			info.URL,
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("download captions: %w", err)
	}

	vttPath := filepath.Join(workDir, info.ID+"."+f.cfg.Language+".vtt")
	if _, err := os.Stat(vttPath); err != nil {
		if found := findVTT(workDir); found != "" {
			return found, nil
		}
		return "", ErrNoCaptions
	}
	return vttPath, nil
}

// findVTT returns the first .vtt in dir, for language variants like en-US.
func findVTT(dir string) string {
	matches, _ := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// withRetry runs fn with a per-attempt timeout, retrying transient failures
// with linear backoff.
func (f *implFetcher) withRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	retries := f.cfg.RetryCount()
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * f.cfg.RetryBackoff
			f.logger.Warn(ctx, "%s failed (attempt %d/%d), retrying in %s: %v", op, attempt, retries+1, wait, err)
			if werr := f.wait(ctx, wait); werr != nil {
				return fmt.Errorf("%s: %w", op, werr)
			}
		}

		callCtx := ctx
		cancel := func() {}
		if f.cfg.Timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		}
		err = fn(callCtx)
		cancel()

		if err == nil {
			return nil
		}
		err = classify(err)
		if permanent(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
