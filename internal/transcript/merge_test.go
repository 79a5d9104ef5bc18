package transcript

import (
	"strings"
	"testing"
	"time"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[Music] hello   world", "hello world"},
		{"  we [Applause] did it  ", "we did it"},
		{"[Music]", ""},
		{"line\none", "line one"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMergeOverlapping(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{
			name:  "sequential overlap",
			texts: []string{"at some point you have", "you have to believe", "believe something"},
			want:  "at some point you have to believe something",
		},
		{
			name:  "no overlap",
			texts: []string{"first part", "second part"},
			want:  "first part second part",
		},
		{
			name:  "case insensitive keeps first casing",
			texts: []string{"So We began", "we began again"},
			want:  "So We began again",
		},
		{
			name:  "full repeat",
			texts: []string{"hello there", "hello there"},
			want:  "hello there",
		},
		{
			name:  "empty",
			texts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeOverlapping(tt.texts); got != tt.want {
				t.Errorf("MergeOverlapping() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeOverlappingIdempotent(t *testing.T) {
	out := MergeOverlapping([]string{"at some point you have", "you have to believe", "believe something"})

	if again := MergeOverlapping([]string{out}); again != out {
		t.Errorf("MergeOverlapping(out) = %q, want %q", again, out)
	}
	if again := MergeOverlapping([]string{out, out}); again != out {
		t.Errorf("MergeOverlapping(out, out) = %q, want %q", again, out)
	}
}

func TestMergeByTimeWindow(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 2 * time.Second, Text: "[Music] at some point you have"},
		{Start: 2 * time.Second, End: 4 * time.Second, Text: "you have to believe something in your life"},
		{Start: 4 * time.Second, End: 6 * time.Second, Text: "in your life and keep going forward"},
		// 4s pause closes the segment; too short to keep on its own
		{Start: 10 * time.Second, End: 12 * time.Second, Text: "short words only here"},
	}

	got := MergeByTimeWindow(cues, DefaultMergeOptions())
	if len(got) != 1 {
		t.Fatalf("MergeByTimeWindow() got %d segments, want 1: %+v", len(got), got)
	}

	want := Segment{
		Start: 0,
		End:   6 * time.Second,
		Text:  "at some point you have to believe something in your life and keep going forward",
	}
	if got[0] != want {
		t.Errorf("MergeByTimeWindow() = %+v, want %+v", got[0], want)
	}
}

func TestMergeByTimeWindowSplitsOnWindow(t *testing.T) {
	var cues []Cue
	for i := 0; i < 7; i++ {
		start := time.Duration(i*5) * time.Second
		cues = append(cues, Cue{
			Start: start,
			End:   start + 5*time.Second,
			Text:  strings.Repeat("w"+string(rune('a'+i))+" ", 5),
		})
	}

	got := MergeByTimeWindow(cues, DefaultMergeOptions())
	if len(got) != 2 {
		t.Fatalf("MergeByTimeWindow() got %d segments, want 2", len(got))
	}
	if got[0].Start != 0 || got[0].End != 25*time.Second {
		t.Errorf("first segment span = %v-%v, want 0s-25s", got[0].Start, got[0].End)
	}
	if got[1].Start != 25*time.Second || got[1].End != 35*time.Second {
		t.Errorf("second segment span = %v-%v, want 25s-35s", got[1].Start, got[1].End)
	}
	if n := len(strings.Fields(got[1].Text)); n != 10 {
		t.Errorf("second segment has %d words, want 10", n)
	}
}

func TestAccumulatorFlush(t *testing.T) {
	opts := MergeOptions{Window: 25 * time.Second, MaxPause: 3 * time.Second, MinWords: 3}

	empty := NewAccumulator(opts).Flush()
	if len(empty.Segments()) != 0 {
		t.Errorf("Flush() on empty accumulator produced %d segments", len(empty.Segments()))
	}

	first := NewAccumulator(opts).Add(Cue{Start: 0, End: time.Second, Text: "one two three"})
	second := first.Add(Cue{Start: time.Second, End: 2 * time.Second, Text: "three four"})

	if got := first.Flush().Segments(); len(got) != 1 || got[0].Text != "one two three" {
		t.Errorf("first.Flush() = %+v, want the first cue only", got)
	}
	if got := second.Flush().Segments(); len(got) != 1 || got[0].Text != "one two three four" {
		t.Errorf("second.Flush() = %+v, want merged cues", got)
	}

	short := NewAccumulator(opts).Add(Cue{Start: 0, End: time.Second, Text: "too short"}).Flush()
	if len(short.Segments()) != 0 {
		t.Errorf("Flush() kept a segment below MinWords: %+v", short.Segments())
	}
}

func TestJoinText(t *testing.T) {
	segments := []Segment{{Text: "First one."}, {Text: ""}, {Text: "Second one."}}
	if got := JoinText(segments); got != "First one. Second one." {
		t.Errorf("JoinText() = %q", got)
	}
}
