package api

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/output"
	"github.com/nguyentantai21042004/script-extractor/internal/processor"
	"github.com/nguyentantai21042004/script-extractor/internal/storage"
)

var validate = validator.New()

// ExtractRequest is the body of /extract and /extract/stream.
type ExtractRequest struct {
	URL           string `json:"url" validate:"required,url"`
	Mode          string `json:"mode" validate:"omitempty,oneof=semantic generative basic"`
	WindowSeconds int    `json:"window_seconds" validate:"omitempty,min=5,max=300"`
}

// Validate returns per-field messages, or nil when the request is valid.
func (r *ExtractRequest) Validate() map[string]string {
	errors := fieldErrors(r)
	if _, ok := errors["url"]; !ok {
		if _, err := caption.ParseVideoID(r.URL); err != nil {
			if errors == nil {
				errors = make(map[string]string)
			}
			errors["url"] = "not a YouTube video URL"
		}
	}
	return errors
}

func (r *ExtractRequest) toProcessor() processor.Request {
	return processor.Request{
		URL:           r.URL,
		Mode:          processor.Mode(r.Mode),
		WindowSeconds: r.WindowSeconds,
	}
}

// SearchRequest is the body of /search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

func (r *SearchRequest) Validate() map[string]string {
	return fieldErrors(r)
}

func fieldErrors(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}
	errors := make(map[string]string)
	for _, e := range errs {
		errors[jsonName(e.Field())] = fmt.Sprintf("failed on '%s' tag", e.Tag())
	}
	return errors
}

func jsonName(field string) string {
	switch field {
	case "URL":
		return "url"
	case "Mode":
		return "mode"
	case "WindowSeconds":
		return "window_seconds"
	case "Query":
		return "query"
	case "Limit":
		return "limit"
	default:
		return field
	}
}

// ExtractResponse describes a finished extraction.
type ExtractResponse struct {
	SessionID  string            `json:"session_id"`
	Video      caption.VideoInfo `json:"video"`
	Method     string            `json:"method"`
	Segments   int               `json:"segments"`
	Sections   []output.Section  `json:"sections"`
	Text       string            `json:"text"`
	Files      output.Paths      `json:"files"`
	DurationMs int64             `json:"duration_ms"`
}

func newExtractResponse(r *processor.Result) ExtractResponse {
	sections := output.Sections(r.Document(time.Time{}))
	if sections == nil {
		sections = []output.Section{}
	}
	return ExtractResponse{
		SessionID:  r.SessionID,
		Video:      r.Video,
		Method:     string(r.Segmentation.Method),
		Segments:   len(r.Segments),
		Sections:   sections,
		Text:       r.Text,
		Files:      r.Paths,
		DurationMs: r.Duration.Milliseconds(),
	}
}

// StreamEvent is one NDJSON line of /extract/stream.
type StreamEvent struct {
	State    processor.State    `json:"state"`
	Video    *caption.VideoInfo `json:"video,omitempty"`
	Text     string             `json:"text,omitempty"`
	Result   *ExtractResponse   `json:"result,omitempty"`
	Category string             `json:"category,omitempty"`
	Error    string             `json:"error,omitempty"`
}

func newStreamEvent(u processor.Update) StreamEvent {
	ev := StreamEvent{
		State:    u.State,
		Video:    u.Video,
		Text:     u.Text,
		Category: string(u.Category),
		Error:    u.Message,
	}
	if u.Result != nil {
		res := newExtractResponse(u.Result)
		ev.Result = &res
		ev.Text = ""
	}
	return ev
}

// SearchResponse lists matching sections, best first.
type SearchResponse struct {
	Results []storage.SearchHit `json:"results"`
}
