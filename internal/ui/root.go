package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/theme"
)

// Options configures Run.
type Options struct {
	Loader *feed.Loader
	Theme  theme.Theme
	List   hackernews.List
}

// Run spins up the Bubble Tea program and blocks until the TUI exits.
// In-flight fetches are cancelled when the user quits.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(ctx, cancel, opts.Loader, opts.Theme, opts.List)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
