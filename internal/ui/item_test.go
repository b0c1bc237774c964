package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-playground/assert/v2"

	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

func TestRenderItemLinksTitle(t *testing.T) {
	row := renderItem(d101, theme.MustParse("blue"), 0, false)

	if !strings.Contains(row, ansi.SetHyperlink("http://x")) {
		t.Fatalf("row does not open a hyperlink to the story url: %q", row)
	}
	plain := ansi.Strip(row)
	assert.Equal(t, true, strings.Contains(plain, "[10]"))
	assert.Equal(t, true, strings.Contains(plain, "T1"))
	assert.Equal(t, true, strings.HasSuffix(plain, "by a"))
}

func TestRenderItemFitsWidth(t *testing.T) {
	s := story.Placeholder()[0]

	row := renderItem(s, theme.MustParse("green"), 60, true)

	assert.Equal(t, 60, lipgloss.Width(row))
	assert.Equal(t, true, strings.Contains(ansi.Strip(row), "…"))
	assert.Equal(t, true, strings.HasSuffix(strings.TrimRight(ansi.Strip(row), " "), "by user"))
}
