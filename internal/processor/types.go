package processor

import (
	"errors"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/output"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

var ErrInvalidMode = errors.New("invalid mode")

// Mode selects how the merged transcript is segmented.
type Mode string

const (
	ModeSemantic   Mode = "semantic"
	ModeGenerative Mode = "generative"
	ModeBasic      Mode = "basic"
)

// Request is one video to process. Zero values use the configured defaults.
type Request struct {
	URL           string
	Mode          Mode
	WindowSeconds int
}

// Result describes a finished run.
type Result struct {
	SessionID    string
	Video        caption.VideoInfo
	Segments     []transcript.Segment
	Segmentation segmentation.Result
	Paths        output.Paths
	// Text is the titled rendering when paragraphs exist, else the basic one.
	Text     string
	Duration time.Duration
}

// Document rebuilds the output document for r.
func (r *Result) Document(processedAt time.Time) output.Document {
	return output.Document{
		Video:       r.Video,
		Segments:    r.Segments,
		Result:      r.Segmentation,
		ProcessedAt: processedAt,
	}
}

// State is a progressive delivery state.
type State string

const (
	StateStarted       State = "started"
	StateBasicReady    State = "basic_ready"
	StateSemanticReady State = "semantic_ready"
	StateFailed        State = "failed"
)

// Update is emitted on every state transition.
type Update struct {
	State State
	Video *caption.VideoInfo
	// Text is the basic rendering on BasicReady and the titled one on SemanticReady.
	Text     string
	Result   *Result
	Category Category
	Message  string
	Err      error
}

// Session is the scratch directory owned by one request.
type Session struct {
	ID  string
	Dir string
}
