package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwafle/topstories/internal/hackernews"
)

var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}
)

func tabTitle(l hackernews.List) string {
	s := l.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderTabs draws one tab per story list, highlighting the active one.
func (m Model) RenderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(m.theme.RowHover).
		Padding(0, 1)
	activeTabStyle := tabStyle.Border(activeTabBorder, true).Bold(true)
	tabGap := tabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	lists := hackernews.Lists()
	tabs := make([]string, len(lists))
	for i, l := range lists {
		if l == m.Active {
			tabs[i] = activeTabStyle.Render(tabTitle(l))
		} else {
			tabs[i] = tabStyle.Render(tabTitle(l))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.viewport.Width > 0 {
		gapWidth := m.viewport.Width - lipgloss.Width(row)
		if gapWidth < 0 {
			gapWidth = 0
		}
		row = lipgloss.JoinHorizontal(lipgloss.Bottom,
			row,
			tabGap.Render(strings.Repeat(" ", gapWidth)),
		)
	}
	return row
}
