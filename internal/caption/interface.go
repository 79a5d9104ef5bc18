package caption

import "context"

// VideoInfo identifies a video and its display title.
type VideoInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Fetcher retrieves video metadata and its caption track.
type Fetcher interface {
	VideoInfo(ctx context.Context, url string) (VideoInfo, error)
	// Download writes the caption track into workDir and returns the .vtt path.
	Download(ctx context.Context, info VideoInfo, workDir string) (string, error)
}
