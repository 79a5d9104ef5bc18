package generative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func newTestSegmenter(gen generator, maxTokens int) *implSegmenter {
	return &implSegmenter{
		gen:             gen,
		counter:         estimateTokens,
		maxPromptTokens: maxTokens,
		logger:          logger.Nop(),
	}
}

func sentences(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Sentence number %d.", i)
	}
	return out
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantTitles []string
		wantErr    bool
	}{
		{
			name:       "plain json",
			raw:        `{"segments":[{"title":"Training Neural Networks Fast","text":"First one. Second one."},{"title":"Garden Care Basics","text":"Water daily."}]}`,
			wantTitles: []string{"Training Neural Networks Fast", "Garden Care Basics"},
		},
		{
			name:       "fenced json",
			raw:        "```json\n{\"segments\":[{\"title\":\"Market Cycles Explained\",\"text\":\"Prices move.\"}]}\n```",
			wantTitles: []string{"Market Cycles Explained"},
		},
		{
			name:       "generic titles replaced",
			raw:        `{"segments":[{"title":"Introduction","text":"Hi there."},{"title":"","text":"Next part."},{"title":"Topic 7","text":"More."}]}`,
			wantTitles: []string{"Topic 1", "Topic 2", "Topic 3"},
		},
		{
			name:       "empty text segments skipped",
			raw:        `{"segments":[{"title":"Nothing Here","text":"  "},{"title":"Real Content Title","text":"Something."}]}`,
			wantTitles: []string{"Real Content Title"},
		},
		{
			name:    "not json",
			raw:     "Sure! Here are your segments.",
			wantErr: true,
		},
		{
			name:    "no segments",
			raw:     `{"segments":[]}`,
			wantErr: true,
		},
		{
			name:    "missing field",
			raw:     `{"sections":[{"title":"A","text":"B."}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paragraphs, titles, err := parseResponse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Errorf("parseResponse() error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if len(paragraphs) != len(titles) {
				t.Errorf("got %d paragraphs and %d titles", len(paragraphs), len(titles))
			}
			if strings.Join(titles, "|") != strings.Join(tt.wantTitles, "|") {
				t.Errorf("parseResponse() titles = %v, want %v", titles, tt.wantTitles)
			}
		})
	}
}

func TestEqualChunks(t *testing.T) {
	tests := []struct {
		name      string
		sentences int
		wantCount int
	}{
		{"empty", 0, 0},
		{"fewer than five", 3, 3},
		{"small transcript uses five", 23, 5},
		{"medium", 75, 7},
		{"large capped at ten", 400, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sentences(tt.sentences)
			got := EqualChunks(in)
			if len(got.Paragraphs) != tt.wantCount {
				t.Fatalf("EqualChunks() got %d chunks, want %d", len(got.Paragraphs), tt.wantCount)
			}
			if len(got.Titles) != len(got.Paragraphs) {
				t.Errorf("titles %d != paragraphs %d", len(got.Titles), len(got.Paragraphs))
			}
			if strings.Join(got.Sentences(), " ") != strings.Join(in, " ") {
				t.Error("EqualChunks() does not partition its input")
			}
			for i, title := range got.Titles {
				if title != segmentation.NumberedTitle(i) {
					t.Errorf("title %d = %q", i, title)
				}
			}
		})
	}
}

func TestSegment(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "Neural nets learn. They need data."},
		{Text: "Gardens need water. Plants grow."},
	}

	t.Run("model success", func(t *testing.T) {
		gen := &fakeGenerator{response: `{"segments":[{"title":"How Neural Nets Learn","text":"Neural nets learn. They need data."},{"title":"Keeping Gardens Alive","text":"Gardens need water. Plants grow."}]}`}
		got := newTestSegmenter(gen, 900000).Segment(context.Background(), segments)

		if got.Method != segmentation.MethodGenerative {
			t.Errorf("Method = %v, want generative", got.Method)
		}
		if len(got.Paragraphs) != 2 || got.Titles[1] != "Keeping Gardens Alive" {
			t.Errorf("Segment() = %+v", got)
		}
		if !strings.Contains(gen.prompts[0], "Gardens need water.") {
			t.Error("prompt does not contain the transcript")
		}
	})

	t.Run("model error falls back", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("all API keys exhausted")}
		got := newTestSegmenter(gen, 900000).Segment(context.Background(), segments)
		if got.Method != segmentation.MethodFallback || len(got.Paragraphs) != 4 {
			t.Errorf("Segment() = %+v, want 4 single-sentence fallback chunks", got)
		}
	})

	t.Run("malformed response falls back", func(t *testing.T) {
		gen := &fakeGenerator{response: "not json"}
		got := newTestSegmenter(gen, 900000).Segment(context.Background(), segments)
		if got.Method != segmentation.MethodFallback {
			t.Errorf("Method = %v, want fallback", got.Method)
		}
	})

	t.Run("oversized prompt skips the call", func(t *testing.T) {
		gen := &fakeGenerator{response: "{}"}
		got := newTestSegmenter(gen, 10).Segment(context.Background(), segments)
		if len(gen.prompts) != 0 {
			t.Error("generator called for an oversized prompt")
		}
		if got.Method != segmentation.MethodFallback {
			t.Errorf("Method = %v, want fallback", got.Method)
		}
	})

	t.Run("no keys", func(t *testing.T) {
		got := newTestSegmenter(nil, 0).Segment(context.Background(), segments)
		if got.Method != segmentation.MethodFallback {
			t.Errorf("Method = %v, want fallback", got.Method)
		}
	})
}

func TestGeminiRotateKey(t *testing.T) {
	g := newGemini([]string{"k1", "k2", "k3"}, "", logger.Nop())
	if g.model != "gemini-2.5-flash-lite" {
		t.Errorf("model = %v", g.model)
	}
	g.rotateKey()
	g.rotateKey()
	g.rotateKey()
	if idx, key := g.key(); idx != 0 || key != "k1" {
		t.Errorf("key() = %d %s, want 0 k1 after a full rotation", idx, key)
	}
}
