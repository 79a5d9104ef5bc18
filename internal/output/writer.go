package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAll renders doc into baseDir/<sanitized title>/. The CSV and TXT
// files are always written; the plain TXT, JSON and DOCX only when the
// document has paragraphs.
func (w *implWriter) WriteAll(doc Document, baseDir string) (Paths, error) {
	dir := filepath.Join(baseDir, SanitizeFilename(doc.Video.Title, doc.Video.ID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	paths := Paths{Dir: dir, CSV: filepath.Join(dir, "transcript.csv")}
	if err := writeCSV(paths.CSV, doc.Segments); err != nil {
		return Paths{}, err
	}

	paths.TXT = filepath.Join(dir, "transcript.txt")
	if !doc.HasParagraphs() {
		if err := writeText(paths.TXT, RenderBasic(doc)); err != nil {
			return Paths{}, err
		}
		return paths, nil
	}

	if err := writeText(paths.TXT, RenderTitled(doc)); err != nil {
		return Paths{}, err
	}

	paths.Plain = filepath.Join(dir, "transcript_plain.txt")
	if err := writeText(paths.Plain, RenderPlain(doc)); err != nil {
		return Paths{}, err
	}

	paths.JSON = filepath.Join(dir, "transcript.json")
	if err := writeJSON(paths.JSON, doc); err != nil {
		return Paths{}, err
	}

	if w.docx {
		docxPath := filepath.Join(dir, "transcript.docx")
		if err := writeDOCX(docxPath, doc); err != nil {
			w.warn("Failed to write %s: %v", docxPath, err)
		} else {
			paths.DOCX = docxPath
		}
	}

	return paths, nil
}

func writeText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
