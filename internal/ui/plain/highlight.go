package plain

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// keyRe matches a JSON key emitted by json.MarshalIndent, e.g. "title":
// Keys open their line, so quotes inside values never match.
var keyRe = regexp.MustCompile(`(?m)^(\s*)"((?:[^"\\]|\\.)*)":`)

// HighlightKeys colours every JSON key with style and leaves values
// untouched. Input must already be indented JSON.
func HighlightKeys(src string, style lipgloss.Style) string {
	return keyRe.ReplaceAllStringFunc(src, func(m string) string {
		sub := keyRe.FindStringSubmatch(m)
		if len(sub) < 3 {
			return m
		}
		return sub[1] + style.Render(`"`+sub[2]+`"`) + ":"
	})
}
