package transcript

import "time"

// Cue is a single caption line parsed from a subtitle track.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Segment is a cleaned, de-duplicated span of spoken text produced by
// MergeByTimeWindow.
type Segment struct {
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  string        `json:"text"`
}

// MergeOptions controls how cues are folded into segments.
type MergeOptions struct {
	// Window closes a segment once a cue starts this long after the segment start.
	Window time.Duration
	// MaxPause closes a segment when the silence before a cue exceeds it.
	MaxPause time.Duration
	// MinWords drops merged segments shorter than this.
	MinWords int
}

// DefaultMergeOptions returns the 25s window, 3s pause and 10 word minimum.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		Window:   25 * time.Second,
		MaxPause: 3 * time.Second,
		MinWords: 10,
	}
}
