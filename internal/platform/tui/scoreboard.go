package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// historyLimit is how many recent matches are loaded per mode.
const historyLimit = 100

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	historyBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	historyEmptyStyle = dimStyle.Italic(true).Padding(2, 4)
)

var historyColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 7},
	{Title: "Winner", Width: 8},
	{Title: "Rallies", Width: 8},
	{Title: "Longest", Width: 8},
	{Title: "Date", Width: 14},
}

// ScoreboardModel browses the stored matches of each mode. It exits with
// ExitBack or ExitQuit.
type ScoreboardModel struct {
	store   *storage.Store
	modes   []registry.GameInfo
	mode    int
	matches []storage.MatchEntry
	stats   storage.GameStats
	table   table.Model
	help    help.Model
	keys    ScoreKeys
	width   int
	exit    Exit
}

func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		modes: registry.List(),
		keys:  DefaultScoreKeys(),
		help:  help.New(),
	}
	m.resize(width, height)
	m.load()
	return m
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width = width
	m.help.Width = width

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(false)

	rows := m.table.Rows()
	// Title, summary and help take about ten rows.
	m.table = table.New(
		table.WithColumns(historyColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(styles),
	)
}

// load reads the matches and totals of the selected mode.
func (m *ScoreboardModel) load() {
	m.matches, m.stats = nil, storage.GameStats{}
	id := m.modeID()
	if m.store != nil && id != "" {
		if matches, err := m.store.RecentMatches(id, historyLimit); err == nil {
			m.matches = matches
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = *stats
		}
	}

	rows := make([]table.Row, 0, len(m.matches))
	for i, e := range m.matches {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%d-%d", e.Score1, e.Score2),
			winnerName(id, e.Winner),
			strconv.Itoa(e.Rallies),
			strconv.Itoa(e.LongestRally),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// winnerName labels the winning side the way the game does.
func winnerName(gameID string, winner int) string {
	switch {
	case winner == 1:
		return "P1"
	case winner == 2 && strings.HasSuffix(gameID, "_versus"):
		return "P2"
	case winner == 2:
		return "CPU"
	default:
		return "-"
	}
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = ExitQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = ExitBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next, m.keys.Prev):
			if n := len(m.modes); n > 0 {
				step := 1
				if key.Matches(msg, m.keys.Prev) {
					step = n - 1
				}
				m.mode = (m.mode + step) % n
				m.load()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.exit != ExitNone {
		return ""
	}

	center := func(s string) string { return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s) }

	title := "MATCHES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}
	lines := []string{"", center(historyTitleStyle.Render(title)), ""}

	if m.stats.Matches > 0 {
		lines = append(lines, center(fmt.Sprintf("%d played  |  %d won  |  %d lost  |  longest rally %d",
			m.stats.Matches, m.stats.Wins, m.stats.Losses, m.stats.LongestRally)), "")
	}

	body := historyEmptyStyle.Render("No matches recorded yet.\nFinish a match to see it here!")
	if len(m.matches) > 0 {
		body = m.table.View()
	}
	lines = append(lines, center(historyBoxStyle.Render(body)), "", dimStyle.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) Exit() Exit { return m.exit }
