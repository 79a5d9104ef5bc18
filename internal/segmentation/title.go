package segmentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/script-extractor/internal/keyphrase"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleExtractor derives one title per paragraph. It never fails: a
// paragraph without a usable title gets NumberedTitle.
type TitleExtractor interface {
	Titles(ctx context.Context, paragraphs [][]string) []string
}

// NumberedTitle returns the generic title for the paragraph at index i.
func NumberedTitle(i int) string {
	return fmt.Sprintf("Topic %d", i+1)
}

// NumberedTitles labels paragraphs "Topic 1" through "Topic n".
type NumberedTitles struct{}

func (NumberedTitles) Titles(_ context.Context, paragraphs [][]string) []string {
	return numbered(len(paragraphs))
}

func numbered(n int) []string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = NumberedTitle(i)
	}
	return titles
}

type keyphraseTitles struct {
	extractor keyphrase.Extractor
	logger    logger.Logger
	caser     cases.Caser
}

// NewKeyphraseTitles titles each paragraph with its top keyphrase in title case.
func NewKeyphraseTitles(extractor keyphrase.Extractor, log logger.Logger) TitleExtractor {
	if extractor == nil || !keyphrase.IsAvailable(extractor) {
		return NumberedTitles{}
	}
	return &keyphraseTitles{
		extractor: extractor,
		logger:    log,
		caser:     cases.Title(language.English),
	}
}

func (k *keyphraseTitles) Titles(ctx context.Context, paragraphs [][]string) []string {
	titles := make([]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		titles[i] = k.title(ctx, i, paragraph)
	}
	return titles
}

func (k *keyphraseTitles) title(ctx context.Context, i int, paragraph []string) string {
	phrases, err := k.extractor.Extract(ctx, strings.Join(paragraph, " "))
	if err != nil {
		k.logger.Warn(ctx, "Keyphrase extraction failed for paragraph %d: %v", i+1, err)
		return NumberedTitle(i)
	}
	if len(phrases) == 0 || strings.TrimSpace(phrases[0].Phrase) == "" {
		return NumberedTitle(i)
	}
	return k.caser.String(phrases[0].Phrase)
}
