package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

// verticalMargin is the room taken by tabs, status and help.
const verticalMargin = 6

// Model is the Bubble Tea model driving the UI.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	loader *feed.Loader
	theme  theme.Theme

	spinner spinner.Model
	help    help.Model
	ready   bool

	viewport viewport.Model

	cur    cursor
	store  *listStore
	Active hackernews.List
}

func newModel(ctx context.Context, cancel context.CancelFunc, loader *feed.Loader, th theme.Theme, active hackernews.List) Model {
	return Model{
		ctx:     ctx,
		cancel:  cancel,
		loader:  loader,
		theme:   th,
		spinner: spinner.New(),
		help:    help.New(),
		store:   newListStore(),
		Active:  active,
	}
}

func (m *Model) active() *items {
	return m.store.get(m.Active)
}

// switchTo shows list l, mounting its container if this is its first showing.
func (m *Model) switchTo(l hackernews.List) tea.Cmd {
	m.Active = l
	m.cur.reset()
	m.viewport.GotoTop()
	m.syncViewport()
	return m.active().mount(m.ctx, m.loader)
}

func (m *Model) step(delta int) tea.Cmd {
	lists := hackernews.Lists()
	i := (int(m.Active) + delta + len(lists)) % len(lists)
	return m.switchTo(lists[i])
}

func (m *Model) ensureCursorVisible() {
	if m.cur.row < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cur.row)
	} else if m.viewport.Height > 0 && m.cur.row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cur.row - m.viewport.Height + 1)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.active().mount(m.ctx, m.loader),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, Keys.NextTab):
			return m, m.step(1)
		case key.Matches(msg, Keys.Prev):
			return m, m.step(-1)
		case key.Matches(msg, Keys.Tab):
			n, _ := strconv.Atoi(msg.String())
			if lists := hackernews.Lists(); n >= 1 && n <= len(lists) {
				return m, m.switchTo(lists[n-1])
			}
			return m, nil
		case key.Matches(msg, Keys.Up):
			m.cur.row--
			m.cur.clamp(m.active().snap.Len())
			m.ensureCursorVisible()
			m.syncViewport()
			return m, nil
		case key.Matches(msg, Keys.Down):
			m.cur.row++
			m.cur.clamp(m.active().snap.Len())
			m.ensureCursorVisible()
			m.syncViewport()
			return m, nil
		}
		var c tea.Cmd
		m.help, c = m.help.Update(msg)
		cmds = append(cmds, c)

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = msg.Width, msg.Height-verticalMargin
		}
		m.help.Width = msg.Width
		m.syncViewport()

	case storiesMsg:
		// a failed apply means the result arrived for a list that is not
		// fetching; nothing to show
		if err := m.store.get(msg.List).apply(msg.Result); err == nil && msg.List == m.Active {
			m.cur.clamp(m.active().snap.Len())
			m.syncViewport()
		}
		return m, nil

	case spinner.TickMsg:
		var c tea.Cmd
		m.spinner, c = m.spinner.Update(msg)
		cmds = append(cmds, c)
	}

	var c tea.Cmd
	m.viewport, c = m.viewport.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.RenderTabs())
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.active().render(m.theme, 0, m.cur.row))
	}
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(Keys))

	return b.String()
}

func (m Model) status() string {
	snap := m.active().snap
	switch snap.Phase() {
	case story.PhaseFetching:
		return m.spinner.View() + statusStyle.Render(fmt.Sprintf(" Fetching %s stories", m.Active))
	case story.PhaseLoaded:
		return statusStyle.Render(fmt.Sprintf("%d %s stories", snap.Len(), m.Active))
	case story.PhaseFailed:
		return errStyle.Render(fmt.Sprintf("error: %v (showing sample stories)", snap.Err()))
	default:
		return statusStyle.Render("Waiting")
	}
}

func (m *Model) syncViewport() {
	c := m.active()
	m.cur.clamp(c.snap.Len())
	m.viewport.SetContent(c.render(m.theme, m.viewport.Width, m.cur.row))
}
