package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// fakeGame ends after a fixed number of steps and records its input.
type fakeGame struct {
	steps    int
	endAfter int
	resets   int
	last     core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "fake", core.ColorRed)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: 3, GameOver: g.steps >= g.endAfter}
}

func (g *fakeGame) Result() core.MatchResult {
	return core.MatchResult{Score1: 3, Score2: 1, Winner: 1, Rallies: 4, LongestRally: 2, Ticks: g.steps}
}

var testConfig = core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// tick sends m one tick from its own loop.
func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg{Loop: m.loop})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelForwardsInput(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, nil, testConfig, nil)
	m.Init()

	m = step(t, m, runeKey("w"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)

	if !g.last.Has(core.ActionUp) || !g.last.Has(core.ActionAltDown) {
		t.Errorf("game did not receive both actions: %v", g.last)
	}

	m = tick(t, m)
	if g.last.Has(core.ActionUp) {
		t.Error("input leaked into the next tick")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, nil, testConfig, nil)
	m.Init()

	other := NewModel(&fakeGame{endAfter: 100}, nil, testConfig, nil)
	if other.loop == m.loop {
		t.Fatal("models share a tick loop")
	}

	m = step(t, m, TickMsg{Loop: other.loop})
	if g.steps != 0 {
		t.Errorf("steps = %d after a tick from another loop, expected 0", g.steps)
	}
	m = tick(t, m)
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestModelSavesMatchOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 2}
	m := NewModel(g, store, testConfig, nil)
	m.Init()

	for range 5 {
		m = tick(t, m)
	}
	if g.steps != 2 {
		t.Errorf("steps = %d, a finished game should not be stepped", g.steps)
	}

	matches, err := store.RecentMatches("fake", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("stored %d matches, expected 1", len(matches))
	}
	if matches[0].Score1 != 3 || matches[0].Winner != 1 || matches[0].Ticks != 2 {
		t.Errorf("stored %+v", matches[0])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := NewModel(g, nil, testConfig, nil)
	m.Init()

	m = tick(t, m)
	if !m.state.GameOver {
		t.Fatal("expected game over")
	}

	m = step(t, m, runeKey("r"))
	m = tick(t, m)
	if g.resets != 2 || m.state.GameOver {
		t.Errorf("resets = %d, game over = %v; expected a fresh match", g.resets, m.state.GameOver)
	}
}

func TestModelBack(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, nil, testConfig, nil)
	m.Init()

	// Esc during play pauses instead of leaving
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Exit() != ExitNone {
		t.Fatal("esc during play should not leave the game")
	}
	m = tick(t, m)
	if !g.last.Has(core.ActionPause) {
		t.Error("esc during play should pause")
	}

	g.endAfter = 0
	m = tick(t, m)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).Exit() != ExitBack || !isQuit(cmd) {
		t.Error("esc after game over should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{endAfter: 100}, nil, testConfig, nil)
	m = step(t, m, runeKey("q"))
	if m.Exit() != ExitQuit || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(1, 0, "ab", core.ColorRed)
	s.DrawTextColored(3, 0, "cd", core.ColorBlue)
	s.DrawTextColored(0, 1, "plain", core.ColorDefault)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, expected 10", i, w)
		}
	}
	if !strings.Contains(lines[1], "plain") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
