package output

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/script-extractor/internal/segmentation"
	"github.com/nguyentantai21042004/script-extractor/internal/transcript"
)

const (
	timeLayout    = "2006-01-02 15:04:05"
	maxLineLength = 100
)

func writeHeader(b *strings.Builder, doc Document, countLabel string, count int) {
	fmt.Fprintf(b, "Video: %s\n", doc.Video.Title)
	fmt.Fprintf(b, "URL: %s\n", doc.Video.URL)
	fmt.Fprintf(b, "Processed: %s\n", doc.ProcessedAt.Format(timeLayout))
	fmt.Fprintf(b, "%s: %d\n", countLabel, count)
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n\n")
}

// RenderBasic renders the merged transcript without paragraphs, packing
// sentences into lines of at most 100 characters.
func RenderBasic(doc Document) string {
	var b strings.Builder
	writeHeader(&b, doc, "Segments", len(doc.Segments))

	for _, line := range packLines(segmentation.SplitSentences(transcript.JoinText(doc.Segments)), maxLineLength) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// packLines joins sentences into lines, starting a new line when the next
// sentence would exceed limit. A single long sentence keeps its own line.
func packLines(sentences []string, limit int) []string {
	var lines []string
	current := ""
	for _, s := range sentences {
		if current != "" && len(current)+len(s)+1 > limit {
			lines = append(lines, current)
			current = s
			continue
		}
		if current == "" {
			current = s
		} else {
			current += " " + s
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// RenderTitled renders paragraphs each under a "### title" heading.
func RenderTitled(doc Document) string {
	var b strings.Builder
	writeHeader(&b, doc, "Paragraphs", len(doc.Result.Paragraphs))

	for i, p := range doc.Result.Paragraphs {
		fmt.Fprintf(&b, "### %s\n\n", titleAt(doc.Result, i))
		b.WriteString(strings.Join(p, " "))
		b.WriteString("\n\n")
	}
	return b.String()
}

// RenderPlain renders paragraphs separated by blank lines, without titles.
func RenderPlain(doc Document) string {
	var b strings.Builder
	writeHeader(&b, doc, "Paragraphs", len(doc.Result.Paragraphs))

	for _, p := range doc.Result.Paragraphs {
		b.WriteString(strings.Join(p, " "))
		b.WriteString("\n\n")
	}
	return b.String()
}

func titleAt(r segmentation.Result, i int) string {
	if i < len(r.Titles) && r.Titles[i] != "" {
		return r.Titles[i]
	}
	return segmentation.NumberedTitle(i)
}
