package processor

import (
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/generative"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/output"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/storage"
)

// Deps are the collaborators a Processor drives. Store may be nil.
type Deps struct {
	Fetcher    caption.Fetcher
	Semantic   segmentation.Segmenter
	Generative generative.Segmenter
	Writer     output.Writer
	Store      storage.Store
}

type implProcessor struct {
	cfg        *config.Config
	fetcher    caption.Fetcher
	semantic   segmentation.Segmenter
	generative generative.Segmenter
	writer     output.Writer
	store      storage.Store
	slots      *semaphore
	logger     logger.Logger
	now        func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		fetcher:    deps.Fetcher,
		semantic:   deps.Semantic,
		generative: deps.Generative,
		writer:     deps.Writer,
		store:      deps.Store,
		slots:      newSemaphore(cfg.Performance.MaxConcurrent),
		logger:     log,
		now:        time.Now,
	}
}
