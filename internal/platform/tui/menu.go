package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 2)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// MenuItem is one playable mode.
type MenuItem struct {
	GameID string
	Title  string
	Record string // "W3 L1", empty before the first stored match
}

// MenuModel picks a mode. It exits with ExitPlay, ExitScores or ExitQuit.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	keys   MenuKeys
	help   help.Model
	exit   Exit
}

// NewMenuModel lists every registered mode with its stored record.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Record: record(store, g.ID)})
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, width: cfg.ScreenW, keys: DefaultMenuKeys(), help: h}
}

func record(store *storage.Store, gameID string) string {
	if store == nil {
		return ""
	}
	stats, err := store.Stats(gameID)
	if err != nil || stats.Matches == 0 {
		return ""
	}
	return fmt.Sprintf("W%d L%d", stats.Wins, stats.Losses)
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = ExitQuit
		case key.Matches(msg, m.keys.Scores):
			m.exit = ExitScores
		case key.Matches(msg, m.keys.Select) && len(m.items) > 0:
			m.exit = ExitPlay
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		}
		if m.exit != ExitNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.exit != ExitNone {
		return ""
	}

	center := func(s string) string { return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s) }
	lines := []string{"", center(logoStyle.Render("P O N G")), ""}
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		if item.Record != "" {
			line += "  " + dimStyle.Render(item.Record)
		}
		lines = append(lines, center(line))
	}
	lines = append(lines, "", center(m.help.View(m.keys)), "")
	return strings.Join(lines, "\n")
}

// Choice is the mode under the cursor, the one to start on ExitPlay.
func (m MenuModel) Choice() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].GameID
}

func (m MenuModel) Exit() Exit { return m.exit }
