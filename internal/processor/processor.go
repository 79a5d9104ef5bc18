package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/output"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

// Process runs the pipeline without progress updates.
func (p *implProcessor) Process(ctx context.Context, req Request) (*Result, error) {
	return p.ProcessProgressive(ctx, req, nil)
}

// ProcessProgressive moves through Started, BasicReady and SemanticReady,
// or to Failed from any of them.
func (p *implProcessor) ProcessProgressive(ctx context.Context, req Request, onUpdate func(Update)) (*Result, error) {
	emit := func(u Update) {
		if onUpdate != nil {
			onUpdate(u)
		}
	}

	result, err := p.run(ctx, req, emit)
	if err != nil {
		category := Categorize(err)
		p.logger.Error(ctx, "Processing %s failed (%s): %v", req.URL, category, err)
		emit(Update{State: StateFailed, Category: category, Message: category.Message(), Err: err})
		return nil, err
	}

	return result, nil
}

func (p *implProcessor) run(ctx context.Context, req Request, emit func(Update)) (*Result, error) {
	startTime := time.Now()

	mode, err := p.resolveMode(req.Mode)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting caption processing: %s (mode %s)", req.URL, mode)
	p.logger.Info(ctx, "========================================")
	emit(Update{State: StateStarted})

	// Step 1: Resolve video metadata
	info, err := p.fetcher.VideoInfo(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch video info: %w", err)
	}
	p.logger.Info(ctx, "Video: %s (%s)", info.Title, info.ID)

	session, err := p.newSession(ctx)
	if err != nil {
		return nil, err
	}
	defer p.cleanupSession(ctx, session)

	// Step 2: Download captions into the session dir
	vttPath, err := p.fetcher.Download(ctx, info, session.Dir)
	if err != nil {
		return nil, fmt.Errorf("download captions: %w", err)
	}

	// Step 3: Parse
	cues, err := transcript.ParseVTTFile(vttPath)
	if err != nil {
		return nil, fmt.Errorf("parse captions: %w", err)
	}

	result, err := p.finish(ctx, info, cues, mode, req.WindowSeconds, emit)
	if err != nil {
		return nil, err
	}

	result.SessionID = session.ID
	result.Duration = time.Since(startTime)
	emit(Update{State: StateSemanticReady, Video: &result.Video, Text: result.Text, Result: result})

	p.logSummary(ctx, result)
	return result, nil
}

// ProcessFile segments a local caption file with the configured mode. The
// file name, up to its first dot, is used as the video id and title.
func (p *implProcessor) ProcessFile(ctx context.Context, vttPath string) (*Result, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Starting caption file processing: %s", vttPath)

	mode, err := p.resolveMode("")
	if err != nil {
		return nil, err
	}

	cues, err := transcript.ParseVTTFile(vttPath)
	if err != nil {
		return nil, fmt.Errorf("parse captions: %w", err)
	}

	result, err := p.finish(ctx, fileVideoInfo(vttPath), cues, mode, 0, func(Update) {})
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(startTime)
	p.logSummary(ctx, result)
	return result, nil
}

// fileVideoInfo derives video info from a name such as "<id>.en.vtt".
func fileVideoInfo(path string) caption.VideoInfo {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i > 0 {
		name = name[:i]
	}

	info := caption.VideoInfo{ID: name, Title: name}
	if caption.IsVideoID(name) {
		info.URL = caption.WatchURL(name)
	}
	return info
}

// finish runs the steps shared by URL and file processing: merge, basic
// delivery, segmentation, outputs and storage. The caller completes the
// result and reports SemanticReady.
func (p *implProcessor) finish(ctx context.Context, info caption.VideoInfo, cues []transcript.Cue, mode Mode, windowSeconds int, emit func(Update)) (*Result, error) {
	// Step 4: Merge cues into segments
	segments := transcript.MergeByTimeWindow(cues, p.mergeOptions(windowSeconds))
	if len(segments) == 0 {
		return nil, fmt.Errorf("merge captions: %w", caption.ErrNoCaptions)
	}
	p.logger.Info(ctx, "Merged %d cues into %d segments", len(cues), len(segments))

	doc := output.Document{
		Video:       info,
		Segments:    segments,
		ProcessedAt: p.now(),
	}

	basic := output.RenderBasic(doc)
	emit(Update{State: StateBasicReady, Video: &info, Text: basic})

	// Step 5: Segment
	segmented, err := p.segment(ctx, mode, segments)
	if err != nil {
		return nil, err
	}
	doc.Result = segmented
	p.logger.Info(ctx, "Segmented into %d paragraphs (%s)", len(segmented.Paragraphs), segmented.Method)

	// Step 6: Write outputs
	paths, err := p.writer.WriteAll(doc, p.cfg.Paths.Output)
	if err != nil {
		return nil, fmt.Errorf("write outputs: %w", err)
	}

	// Step 7: Persist
	if p.store != nil && doc.HasParagraphs() {
		if err := p.store.SaveTranscript(ctx, doc); err != nil {
			p.logger.Warn(ctx, "Failed to store transcript %s: %v", info.ID, err)
		}
	}

	text := basic
	if doc.HasParagraphs() {
		text = output.RenderTitled(doc)
	}

	return &Result{
		Video:        info,
		Segments:     segments,
		Segmentation: segmented,
		Paths:        paths,
		Text:         text,
	}, nil
}

func (p *implProcessor) segment(ctx context.Context, mode Mode, segments []transcript.Segment) (segmentation.Result, error) {
	if mode == ModeBasic {
		return segmentation.Result{Method: segmentation.MethodBasic}, nil
	}

	if err := p.slots.acquire(ctx); err != nil {
		return segmentation.Result{}, fmt.Errorf("wait for segmentation slot: %w", err)
	}
	defer p.slots.release()

	if mode == ModeGenerative {
		return p.generative.Segment(ctx, segments), nil
	}
	return p.semantic.Segment(ctx, transcript.JoinText(segments)), nil
}

func (p *implProcessor) resolveMode(m Mode) (Mode, error) {
	if m == "" {
		m = Mode(p.cfg.Segmentation.Mode)
	}
	switch m {
	case ModeSemantic, ModeGenerative, ModeBasic:
		return m, nil
	case "":
		return ModeSemantic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, m)
	}
}

func (p *implProcessor) mergeOptions(windowSeconds int) transcript.MergeOptions {
	opts := transcript.MergeOptions{
		Window:   time.Duration(p.cfg.Transcript.WindowSeconds) * time.Second,
		MaxPause: time.Duration(p.cfg.Transcript.PauseSeconds) * time.Second,
		MinWords: p.cfg.Transcript.MinWords,
	}
	if windowSeconds > 0 {
		opts.Window = time.Duration(windowSeconds) * time.Second
	}
	return opts
}

func (p *implProcessor) logSummary(ctx context.Context, r *Result) {
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output folder: %s", r.Paths.Dir)
	p.logger.Info(ctx, "Paragraphs: %d", len(r.Segmentation.Paragraphs))
	p.logger.Info(ctx, "Processing time: %s", r.Duration)
	p.logger.Info(ctx, "========================================")
}
