package output

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	headSize  = 14
)

// writeDOCX renders the titled paragraphs as a styled docx file.
func writeDOCX(path string, doc Document) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(d.AddParagraph(""), doc.Video.Title, true, titleSize)
	addStyledRun(d.AddParagraph(""), doc.Video.URL, false, fontSize)
	d.AddParagraph("")

	for i, p := range doc.Result.Paragraphs {
		addStyledRun(d.AddParagraph(""), titleAt(doc.Result, i), true, headSize)
		addStyledRun(d.AddParagraph(""), strings.Join(p, " "), false, fontSize)
	}

	return d.SaveTo(path)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
