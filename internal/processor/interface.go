package processor

import "context"

// Processor runs the caption to paragraphs pipeline for one video.
type Processor interface {
	// Process runs the whole pipeline and returns when outputs are written.
	Process(ctx context.Context, req Request) (*Result, error)
	// ProcessProgressive runs the same pipeline, calling onUpdate
	// synchronously on every state transition.
	ProcessProgressive(ctx context.Context, req Request, onUpdate func(Update)) (*Result, error)
	// ProcessFile segments a local .vtt file.
	ProcessFile(ctx context.Context, vttPath string) (*Result, error)
}
