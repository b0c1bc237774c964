package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

// storiesMsg carries the outcome of one fetch pipeline run.
type storiesMsg struct {
	feed.Result
}

// items is the container of one story list. It starts on the placeholder
// snapshot and fetches once, the first time it is shown.
type items struct {
	list    hackernews.List
	snap    story.Snapshot
	mounted bool
}

func newItems(list hackernews.List) *items {
	return &items{list: list, snap: story.Initial()}
}

// mount starts the fetch. It returns nil on every call after the first.
func (c *items) mount(ctx context.Context, l *feed.Loader) tea.Cmd {
	if c.mounted {
		return nil
	}
	c.mounted = true
	snap, err := story.Transition(c.snap, story.FetchStarted{})
	if err != nil {
		return nil
	}
	c.snap = snap
	return fetchStories(ctx, l, c.list)
}

// apply moves the snapshot to Loaded or Failed.
func (c *items) apply(res feed.Result) error {
	snap, err := story.Transition(c.snap, res.Event())
	if err != nil {
		return err
	}
	c.snap = snap
	return nil
}

// render draws every row; selected < 0 highlights nothing.
func (c *items) render(th theme.Theme, width, selected int) string {
	rows := make([]string, c.snap.Len())
	for i := range rows {
		rows[i] = renderItem(c.snap.At(i), th, width, i == selected)
	}
	return strings.Join(rows, "\n")
}

// fetchStories runs the pipeline off the UI goroutine.
func fetchStories(ctx context.Context, l *feed.Loader, list hackernews.List) tea.Cmd {
	return func() tea.Msg {
		return storiesMsg{l.Load(ctx, list)}
	}
}
