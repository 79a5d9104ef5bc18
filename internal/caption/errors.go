package caption

import (
	"errors"
	"strings"

	"github.com/nguyentantai21042004/script-extractor/pkg/executor"
)

var (
	ErrNoCaptions       = errors.New("no captions available")
	ErrPrivateVideo     = errors.New("private video")
	ErrVideoUnavailable = errors.New("video unavailable")
	ErrInvalidURL       = errors.New("invalid video url")
)

// classify maps yt-dlp failures onto the sentinel errors. Unknown failures
// are returned unchanged.
func classify(err error) error {
	var execErr *executor.Error
	msg := err.Error()
	if errors.As(err, &execErr) {
		msg = execErr.Stderr
	}

	switch {
	case strings.Contains(msg, "Private video"):
		return errors.Join(ErrPrivateVideo, err)
	case strings.Contains(msg, "Video unavailable"),
		strings.Contains(msg, "This video is not available"),
		strings.Contains(msg, "is not available in your country"),
		strings.Contains(msg, "This video has been removed"):
		return errors.Join(ErrVideoUnavailable, err)
	case strings.Contains(msg, "no subtitles"),
		strings.Contains(msg, "There are no subtitles"):
		return errors.Join(ErrNoCaptions, err)
	}
	return err
}

// permanent reports whether retrying cannot help.
func permanent(err error) bool {
	return errors.Is(err, ErrNoCaptions) ||
		errors.Is(err, ErrPrivateVideo) ||
		errors.Is(err, ErrVideoUnavailable) ||
		errors.Is(err, ErrInvalidURL)
}
