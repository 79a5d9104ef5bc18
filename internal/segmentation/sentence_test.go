package segmentation

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic",
			text: "Hello world. How are you? Great!",
			want: []string{"Hello world.", "How are you?", "Great!"},
		},
		{
			name: "punctuation runs",
			text: "Wait... what?! Really.",
			want: []string{"Wait...", "what?!", "Really."},
		},
		{
			name: "trailing fragment kept",
			text: "First sentence. and then it trails off",
			want: []string{"First sentence.", "and then it trails off"},
		},
		{
			name: "lone punctuation dropped",
			text: "One. . Two.",
			want: []string{"One.", "Two."},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
		{
			name: "single unterminated",
			text: "no punctuation at all",
			want: []string{"no punctuation at all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimilarities(t *testing.T) {
	if got := Similarities(nil); len(got) != 0 {
		t.Errorf("Similarities(nil) = %v, want empty", got)
	}
	if got := Similarities([][]float32{{1, 0}}); len(got) != 0 {
		t.Errorf("Similarities(one) = %v, want empty", got)
	}

	got := Similarities([][]float32{{1, 0}, {1, 0}, {0, 1}, {0, 0}})
	want := []float64{1, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Similarities() = %v, want %v", got, want)
	}
}
