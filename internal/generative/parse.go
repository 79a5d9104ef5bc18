package generative

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
)

// ErrMalformedResponse is returned when the model output is not the
// expected segments document.
var ErrMalformedResponse = errors.New("malformed model response")

var (
	reFence        = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")
	reGenericTitle = regexp.MustCompile(`(?i)^(topic|section|segment|part)\s*\d*$`)
	genericTitles  = map[string]bool{
		"introduction": true,
		"discussion":   true,
		"untitled":     true,
		"conclusion":   true,
		"summary":      true,
	}
)

type segmentsResponse struct {
	Segments []struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"segments"`
}

// parseResponse decodes the model output into paragraphs and titles.
// Generic or empty titles become "Topic {i+1}".
func parseResponse(raw string) ([][]string, []string, error) {
	body := strings.TrimSpace(raw)
	if m := reFence.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var resp segmentsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var paragraphs [][]string
	var titles []string
	for _, seg := range resp.Segments {
		sentences := segmentation.SplitSentences(seg.Text)
		if len(sentences) == 0 {
			continue
		}
		i := len(paragraphs)
		title := strings.TrimSpace(seg.Title)
		if isGeneric(title) {
			title = segmentation.NumberedTitle(i)
		}
		paragraphs = append(paragraphs, sentences)
		titles = append(titles, title)
	}

	if len(paragraphs) == 0 {
		return nil, nil, fmt.Errorf("%w: no segments with text", ErrMalformedResponse)
	}
	return paragraphs, titles, nil
}

func isGeneric(title string) bool {
	if title == "" {
		return true
	}
	lower := strings.ToLower(strings.TrimRight(title, ".:"))
	return genericTitles[lower] || reGenericTitle.MatchString(lower)
}
