package output

import (
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/caption"
	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

// Document is everything rendered for one processed video.
type Document struct {
	Video       caption.VideoInfo
	Segments    []transcript.Segment
	Result      segmentation.Result
	ProcessedAt time.Time
}

// HasParagraphs reports whether segmentation produced paragraphs.
func (d Document) HasParagraphs() bool {
	return len(d.Result.Paragraphs) > 0
}

// Paths lists the files written for a document. Empty fields were not written.
type Paths struct {
	Dir   string `json:"dir"`
	CSV   string `json:"csv"`
	TXT   string `json:"txt"`
	Plain string `json:"txt_plain,omitempty"`
	JSON  string `json:"json,omitempty"`
	DOCX  string `json:"docx,omitempty"`
}

// Writer renders documents to disk.
type Writer interface {
	WriteAll(doc Document, baseDir string) (Paths, error)
}
