package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Exit tells how a page handed control back.
type Exit int

const (
	ExitNone   Exit = iota // still running
	ExitQuit               // leave the program
	ExitBack               // return to the menu
	ExitPlay               // the menu picked a mode
	ExitScores             // the menu asked for the match history
)

// page is one full-screen view. A page that exits also returns tea.Quit so
// it can run as a program of its own.
type page interface {
	tea.Model
	Exit() Exit
}

// runPage runs p in the alternate screen and returns its final state.
func runPage[P page](p P) (P, error) {
	final, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	if err != nil {
		return p, err
	}
	if fp, ok := final.(P); ok {
		return fp, nil
	}
	return p, nil
}

// SessionModel chains the menu, matches and the match history inside one
// program. The SSH server runs one per connection and the menu command
// runs one locally.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	seed   int64 // pinned seed, 0 for a fresh one per match
	logger *log.Logger
	page   page
	quit   bool
}

// NewSessionModel starts at the menu. A non-zero cfg.Seed is used for every
// match of the session.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		seed:   cfg.Seed,
		logger: logger,
		page:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.page.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	next, cmd := m.page.Update(msg)
	if p, ok := next.(page); ok {
		m.page = p
	}

	// The page's own tea.Quit is dropped unless the player quits.
	switch m.page.Exit() {
	case ExitNone:
		return m, cmd
	case ExitPlay:
		return m.play(m.page.(MenuModel).Choice())
	case ExitScores:
		m.page = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.page.Init()
	case ExitBack:
		return m.menu()
	default:
		m.quit = true
		return m, tea.Quit
	}
}

// menu rebuilds the menu so it shows fresh records.
func (m SessionModel) menu() (tea.Model, tea.Cmd) {
	m.page = NewMenuModel(m.store, m.config)
	return m, m.page.Init()
}

func (m SessionModel) play(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		return m.menu()
	}

	cfg := m.config
	cfg.Seed = m.seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m.logger.Info("game started", "game", id)
	m.page = NewModel(game, m.store, cfg, m.logger)
	return m, m.page.Init()
}

func (m SessionModel) View() string {
	if m.quit {
		return ""
	}
	return m.page.View()
}

// RunSession runs a menu session on the local terminal until the player quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	_, err := tea.NewProgram(NewSessionModel(store, cfg, logger), tea.WithAltScreen()).Run()
	return err
}
