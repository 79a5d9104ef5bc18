package processor

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
	"github.com/nguyentantai21042004/script-extractor/internal/generative"
	"github.com/nguyentantai21042004/script-extractor/internal/keyphrase"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/output"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/storage"
	"github.com/nguyentantai21042004/script-extractor/pkg/executor"
)

// Components are the long-lived resources behind a Processor.
type Components struct {
	Provider embedding.Provider
	Store    storage.Store
}

// Close releases the embedding model, cache and database connections.
func (c Components) Close() {
	embedding.Close(c.Provider)
	if c.Store != nil {
		c.Store.Close()
	}
}

// SegmentationOptions converts the segmentation config section.
func SegmentationOptions(cfg config.SegmentationConfig) segmentation.Options {
	return segmentation.Options{
		Strategy:           segmentation.Strategy(cfg.Strategy),
		MinGap:             cfg.MinGap,
		MinParagraphs:      cfg.MinParagraphs,
		MaxParagraphs:      cfg.MaxParagraphs,
		MinParagraphLength: cfg.MinParagraphLength,
		TargetParagraphs:   cfg.TargetParagraphs,
		DropRatio:          cfg.DropRatio,
		RatioMinGap:        cfg.RatioMinGap,
		ExtractTitles:      cfg.TitlesEnabled(),
	}
}

// Build wires a Processor from cfg. Optional dependencies that fail to
// load degrade to their fallbacks with a warning.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (Processor, Components) {
	provider := embedding.New(ctx, cfg, log)

	var titles segmentation.TitleExtractor
	if cfg.Segmentation.TitlesEnabled() {
		extractor := keyphrase.NewMMR(provider, keyphrase.Options{
			TopN:      cfg.Keyphrase.TopN,
			Diversity: cfg.Keyphrase.Diversity,
			MaxNGram:  cfg.Keyphrase.MaxNGram,
		})
		titles = segmentation.NewKeyphraseTitles(extractor, log)
	}

	store, err := storage.New(ctx, cfg.Storage.DatabaseURL, log)
	if err != nil {
		log.Warn(ctx, "Transcript storage disabled: %v", err)
		store = nil
	}

	p := New(cfg, Deps{
		Fetcher:    caption.New(cfg.Caption, executor.New(), log),
		Semantic:   segmentation.New(SegmentationOptions(cfg.Segmentation), provider, titles, log),
		Generative: generative.New(ctx, cfg.Gemini, log),
		Writer:     output.New(log),
		Store:      store,
	}, log)

	return p, Components{Provider: provider, Store: store}
}
