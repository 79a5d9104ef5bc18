package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type jsonMetadata struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	VideoID       string `json:"video_id"`
	ProcessedTime string `json:"processed_time"`
	NumSections   int    `json:"num_sections"`
	Method        string `json:"method"`
}

// Section is one titled paragraph of the JSON document.
type Section struct {
	Title     string   `json:"title"`
	Sentences []string `json:"sentences"`
	Text      string   `json:"text"`
}

type jsonDocument struct {
	Metadata jsonMetadata `json:"metadata"`
	Sections []Section    `json:"sections"`
}

// Sections pairs each paragraph with its title.
func Sections(doc Document) []Section {
	sections := make([]Section, len(doc.Result.Paragraphs))
	for i, p := range doc.Result.Paragraphs {
		sections[i] = Section{
			Title:     titleAt(doc.Result, i),
			Sentences: p,
			Text:      strings.Join(p, " "),
		}
	}
	return sections
}

// RenderJSON returns the indented JSON document.
func RenderJSON(doc Document) ([]byte, error) {
	sections := Sections(doc)
	data := jsonDocument{
		Metadata: jsonMetadata{
			Title:         doc.Video.Title,
			URL:           doc.Video.URL,
			VideoID:       doc.Video.ID,
			ProcessedTime: doc.ProcessedAt.Format(timeLayout),
			NumSections:   len(sections),
			Method:        string(doc.Result.Method),
		},
		Sections: sections,
	}
	return json.MarshalIndent(data, "", "  ")
}

func writeJSON(path string, doc Document) error {
	data, err := RenderJSON(doc)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
