package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Model plays one game: it ticks the simulation, feeds it decoded keys and
// stores the result when the match ends.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store // nil runs without persistence
	config core.RuntimeConfig
	keys   GameKeys
	logger *log.Logger

	loop  uint64          // id carried by this model's ticks
	input core.InputFrame // actions since the last tick
	state core.GameState
	saved bool // result stored for the current game over
	exit  Exit
}

// NewModel wraps game. A zero seed is replaced with the clock and a nil
// logger discards diagnostics.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeys(),
		logger: logger,
		loop:   newLoop(),
	}
}

// Init resets the game and starts the tick loop. The state is read back on
// the first tick since Init cannot update the model.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if msg.Loop == m.loop {
			return m.tick()
		}
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.screenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionNone:
	case core.ActionQuit:
		m.exit = ExitQuit
		return m, tea.Quit
	case core.ActionBack:
		// Back pauses a live match and leaves a paused or finished one.
		if m.state.GameOver || m.state.Paused {
			m.exit = ExitBack
			return m, tea.Quit
		}
		m.input.Set(core.ActionPause)
	default:
		m.input.Set(a)
	}
	return m, nil
}

// resize relays the court out for the new size, restarting a live match.
func (m *Model) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)
	if !m.state.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) tick() (tea.Model, tea.Cmd) {
	in := m.input
	m.input.Clear()

	switch {
	case m.state.GameOver && in.Has(core.ActionRestart):
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.saved = false
	case m.state.GameOver:
		// Waiting for restart, back or quit.
	default:
		m.state = m.game.Step(in).State
		if m.state.GameOver && !m.saved {
			m.save()
			m.saved = true
		}
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// save stores the finished match. Failures are logged and play goes on.
func (m Model) save() {
	if m.store == nil {
		return
	}

	id := m.game.ID()
	var err error
	if r, ok := m.game.(registry.MatchReporter); ok {
		res := r.Result()
		_, err = m.store.SaveMatch(id, res)
		m.logger.Debug("match saved", "game", id, "score", fmt.Sprintf("%d-%d", res.Score1, res.Score2), "rallies", res.Rallies)
	} else if m.state.Score > 0 {
		_, err = m.store.SaveScore(id, m.state.Score)
	}
	if err != nil {
		m.logger.Warn("could not save result", "game", id, "error", err)
	}
}

// screenshot writes the court as plain text under ~/.pong/screenshots.
func (m Model) screenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	m.game.Render(m.screen)
	path := filepath.Join(dir, m.game.ID()+"_"+time.Now().Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func (m Model) View() string {
	if m.exit != ExitNone {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Exit reports how the player left the match, ExitNone while playing.
func (m Model) Exit() Exit {
	return m.exit
}

// Run plays game in its own program until the player quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Exit, error) {
	m, err := runPage(NewModel(game, store, cfg, logger))
	return m.Exit(), err
}
