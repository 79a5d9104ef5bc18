package output

import (
	"regexp"
	"strings"
)

const maxFilenameRunes = 100

var reInvalidFilename = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename turns a video title into a folder name: invalid
// characters removed, spaces replaced by underscores, at most 100 runes.
// An empty result falls back to fallback.
func SanitizeFilename(title, fallback string) string {
	name := reInvalidFilename.ReplaceAllString(title, "")
	name = strings.ReplaceAll(name, " ", "_")
	if r := []rune(name); len(r) > maxFilenameRunes {
		name = string(r[:maxFilenameRunes])
	}
	if strings.Trim(name, "_.") == "" {
		return fallback
	}
	return name
}
