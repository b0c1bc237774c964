package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

// renderItem draws one story as a single terminal line: score, title linked
// to the story url, and author. A width of 0 disables truncation and
// padding. Every segment carries the row background so inner style resets
// do not punch holes into it.
func renderItem(s story.Story, th theme.Theme, width int, selected bool) string {
	bg := th.Row
	if selected {
		bg = th.RowHover
	}
	base := lipgloss.NewStyle().Background(bg).Foreground(th.Text)

	score := base.Foreground(th.Accent).Bold(true).Width(scoreWidth).PaddingLeft(1).
		Render(fmt.Sprintf("[%d]", s.Score))
	by := base.Faint(true).Render(" by ")
	author := base.Render(s.By)

	title := s.Title
	if width > 0 {
		avail := width - lipgloss.Width(score) - lipgloss.Width(by) - lipgloss.Width(author) - 1
		if avail < 1 {
			avail = 1
		}
		title = ansi.Truncate(title, avail, "…")
	}
	link := ansi.SetHyperlink(s.URL) + base.Underline(true).Render(title) + ansi.ResetHyperlink()

	var b strings.Builder
	b.WriteString(score)
	b.WriteString(link)
	b.WriteString(by)
	b.WriteString(author)

	if width > 0 {
		if pad := width - lipgloss.Width(b.String()); pad > 0 {
			b.WriteString(base.Render(strings.Repeat(" ", pad)))
		}
	}
	return b.String()
}
