package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

// utf8BOM lets spreadsheet tools detect the encoding.
const utf8BOM = "\ufeff"

func writeCSV(path string, segments []transcript.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"start", "end", "text"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, seg := range segments {
		record := []string{
			transcript.FormatTimestamp(seg.Start),
			transcript.FormatTimestamp(seg.End),
			seg.Text,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
