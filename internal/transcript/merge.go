package transcript

import (
	"strings"
	"time"
)

type openSegment struct {
	start time.Duration
	end   time.Duration
	texts []string
}

// Accumulator is the fold state of MergeByTimeWindow.
type Accumulator struct {
	opts   MergeOptions
	open   *openSegment
	closed []Segment
}

// NewAccumulator returns an empty accumulator using opts.
func NewAccumulator(opts MergeOptions) Accumulator {
	return Accumulator{opts: opts}
}

// Add folds one cue into the accumulator and returns the new state.
func (a Accumulator) Add(cue Cue) Accumulator {
	if a.open == nil {
		a.open = &openSegment{start: cue.Start, end: cue.End, texts: []string{cue.Text}}
		return a
	}

	if a.closes(cue) {
		a = a.Flush()
		a.open = &openSegment{start: cue.Start, end: cue.End, texts: []string{cue.Text}}
		return a
	}

	texts := make([]string, len(a.open.texts), len(a.open.texts)+1)
	copy(texts, a.open.texts)
	a.open = &openSegment{
		start: a.open.start,
		end:   cue.End,
		texts: append(texts, cue.Text),
	}
	return a
}

func (a Accumulator) closes(cue Cue) bool {
	return cue.Start-a.open.start >= a.opts.Window || cue.Start-a.open.end > a.opts.MaxPause
}

// Flush closes the open segment. The merged text is kept only when it
// reaches the minimum word count.
func (a Accumulator) Flush() Accumulator {
	if a.open == nil {
		return a
	}

	text := CleanText(MergeOverlapping(a.open.texts))
	closed := a.closed
	if text != "" && len(strings.Fields(text)) >= a.opts.MinWords {
		closed = make([]Segment, len(a.closed), len(a.closed)+1)
		copy(closed, a.closed)
		closed = append(closed, Segment{Start: a.open.start, End: a.open.end, Text: text})
	}

	return Accumulator{opts: a.opts, closed: closed}
}

// Segments returns the closed segments.
func (a Accumulator) Segments() []Segment {
	return a.closed
}

// MergeByTimeWindow folds cues into segments. A segment closes when a cue
// starts Window or more after the segment start, or after a pause longer
// than MaxPause.
func MergeByTimeWindow(cues []Cue, opts MergeOptions) []Segment {
	acc := NewAccumulator(opts)
	for _, cue := range cues {
		acc = acc.Add(cue)
	}
	return acc.Flush().Segments()
}
