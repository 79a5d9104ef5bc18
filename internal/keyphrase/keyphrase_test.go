package keyphrase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
)

// topicProvider embeds text on three axes counting mentions of
// "neural", "garden" and "market".
type topicProvider struct{}

func (topicProvider) Name() string { return "topic" }

func (topicProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := []float32{
			float32(strings.Count(t, "neural")),
			float32(strings.Count(t, "garden")),
			float32(strings.Count(t, "market")),
			0.1,
		}
		out[i] = embedding.Normalize(v)
	}
	return out, nil
}

func TestCandidates(t *testing.T) {
	got := Candidates("The neural network is a network of neural units.", 2)
	want := []string{"neural", "neural network", "network", "network network", "network neural", "neural units", "units"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}

	if got := Candidates("it is what it is", 3); len(got) != 0 {
		t.Errorf("Candidates() of stop words = %v, want none", got)
	}
}

func TestCandidatesUnicode(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Café naïve façade", []string{"café", "naïve", "façade"}},
		{"Über Straße", []string{"über", "straße"}},
		{"x é 42 a_b", []string{"42", "a_b"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Candidates(tt.text, 1); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMMRExtract(t *testing.T) {
	e := NewMMR(topicProvider{}, DefaultOptions())

	text := "Neural networks learn neural representations. The neural model trains fast. A garden grows slowly."
	got, err := e.Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Extract() got %d phrases, want 3", len(got))
	}
	if !strings.Contains(got[0].Phrase, "neural") {
		t.Errorf("Extract()[0] = %q, want a neural phrase first", got[0].Phrase)
	}
	if got[0].Score < got[1].Score || got[0].Score < got[2].Score {
		t.Errorf("first phrase is not the most document-similar: %+v", got)
	}
}

func TestMMRDiversity(t *testing.T) {
	words := [][]float32{{1, 0}, {0.99, 0.14}, {0, 1}}
	docSim := []float64{0.9, 0.89, 0.5}

	if got := mmr(words, docSim, 2, 0.5); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("mmr(diversity 0.5) = %v, want [0 2]", got)
	}
	if got := mmr(words, docSim, 2, 0); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("mmr(diversity 0) = %v, want [0 1]", got)
	}
}

func TestUnavailable(t *testing.T) {
	e := NewMMR(embedding.Unavailable{Reason: "none"}, DefaultOptions())
	if IsAvailable(e) {
		t.Error("IsAvailable() = true, want false")
	}
	if _, err := e.Extract(context.Background(), "anything here"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Extract() error = %v, want ErrUnavailable", err)
	}
}
