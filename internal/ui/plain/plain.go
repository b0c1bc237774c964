// Package plain prints a story list once, for pipes and scripts.
package plain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

// Options configures Print.
type Options struct {
	Loader *feed.Loader
	Theme  theme.Theme
	List   hackernews.List
	JSON   bool
	Color  bool // style output, for terminals
}

// Print loads the list and writes it to w. When the load fails the sample
// stories are written and the load error is returned.
func Print(ctx context.Context, w io.Writer, opts Options) error {
	var snap story.Snapshot
	for snap = range feed.Watch(ctx, opts.Loader, opts.List) {
	}
	if snap.Phase() != story.PhaseLoaded && snap.Phase() != story.PhaseFailed {
		return fmt.Errorf("load %s stories: %w", opts.List, ctx.Err())
	}

	var err error
	if opts.JSON {
		err = writeJSON(w, snap.Stories(), opts)
	} else {
		err = writeText(w, snap.Stories(), opts)
	}
	if err != nil {
		return err
	}
	return snap.Err()
}

func writeJSON(w io.Writer, stories []story.Story, opts Options) error {
	blob, err := json.MarshalIndent(stories, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stories: %w", err)
	}
	out := string(blob)
	if opts.Color {
		out = HighlightKeys(out, lipgloss.NewStyle().Bold(true).Foreground(opts.Theme.Accent))
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func writeText(w io.Writer, stories []story.Story, opts Options) error {
	score := lipgloss.NewStyle().Width(8)
	title := lipgloss.NewStyle()
	if opts.Color {
		score = score.Bold(true).Foreground(opts.Theme.Accent)
		title = title.Underline(true)
	}
	var b strings.Builder
	for _, s := range stories {
		b.WriteString(score.Render(fmt.Sprintf("[%d]", s.Score)))
		b.WriteString(title.Render(s.Title))
		b.WriteString(" by ")
		b.WriteString(s.By)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", 8))
		b.WriteString(s.URL)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
