package processor

import (
	"errors"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
)

// Category groups pipeline failures into user-facing kinds.
type Category string

const (
	CategoryNoCaptions       Category = "no_captions"
	CategoryPrivateVideo     Category = "private_video"
	CategoryVideoUnavailable Category = "video_unavailable"
	CategoryInvalidInput     Category = "invalid_input"
	CategoryFailed           Category = "failed"
)

// Categorize maps a pipeline error to its Category.
func Categorize(err error) Category {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, caption.ErrNoCaptions):
		return CategoryNoCaptions
	case errors.Is(err, caption.ErrPrivateVideo):
		return CategoryPrivateVideo
	case errors.Is(err, caption.ErrVideoUnavailable):
		return CategoryVideoUnavailable
	case errors.Is(err, caption.ErrInvalidURL), errors.Is(err, ErrInvalidMode):
		return CategoryInvalidInput
	default:
		return CategoryFailed
	}
}

// Message is the text shown to users for c.
func (c Category) Message() string {
	switch c {
	case CategoryNoCaptions:
		return "This video has no captions available."
	case CategoryPrivateVideo:
		return "This video is private."
	case CategoryVideoUnavailable:
		return "This video is unavailable or has been removed."
	case CategoryInvalidInput:
		return "The request is invalid. Check the video URL and mode."
	default:
		return "Processing failed. Please try again later."
	}
}
