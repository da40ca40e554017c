package pong

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// useConfig points the game at a config file for the duration of a test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, g *Game) *Game {
	t.Helper()
	useConfig(t, "gameplay:\n  countdown: 1\n  win_score: 3\n")
	g.Reset(testRuntime)
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"pong", "pong_versus"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestCountdownHoldsBall(t *testing.T) {
	g := newGame(t, New())
	startX := g.ballX

	// countdown: 1 second at 60 ticks per second
	if g.countdown != 60 {
		t.Fatalf("countdown = %d, expected 60", g.countdown)
	}
	for range 59 {
		g.Step(core.NewInputFrame())
	}
	if g.ballX != startX {
		t.Fatalf("ball moved during countdown: %v -> %v", startX, g.ballX)
	}

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.ballX == startX {
		t.Error("ball should move once the countdown ends")
	}
}

func TestCountdownRender(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown: 3\n")
	g := New()
	g.Reset(testRuntime)

	s := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(s)
	if got := strings.Count(s.Row(testRuntime.ScreenH/2+2), string(CountdownChar)); got != 3 {
		t.Errorf("countdown squares = %d, expected 3", got)
	}
	if strings.ContainsRune(s.String(), BallChar) {
		t.Error("ball should be hidden during the countdown")
	}

	for range 121 {
		g.Step(core.NewInputFrame())
	}
	g.Render(s)
	if got := strings.Count(s.Row(testRuntime.ScreenH/2+2), string(CountdownChar)); got != 1 {
		t.Errorf("countdown squares = %d, expected 1", got)
	}
}

func TestVersusControls(t *testing.T) {
	g := newGame(t, NewVersus())
	p1, p2 := g.paddle1Y, g.paddle2Y

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionAltDown)
	g.Step(in)

	if g.paddle1Y >= p1 {
		t.Errorf("W should move the left paddle up: %v -> %v", p1, g.paddle1Y)
	}
	if g.paddle2Y <= p2 {
		t.Errorf("Down should move the right paddle down: %v -> %v", p2, g.paddle2Y)
	}
}

func TestCPUModeArrowsMoveLeftPaddle(t *testing.T) {
	g := newGame(t, New())
	p1 := g.paddle1Y

	in := core.NewInputFrame()
	in.Set(core.ActionAltDown)
	g.Step(in)

	if g.paddle1Y <= p1 {
		t.Errorf("arrow keys should drive the left paddle against the CPU: %v -> %v", p1, g.paddle1Y)
	}
}

func TestPaddleBounce(t *testing.T) {
	g := newGame(t, New())
	g.countdown = 0

	p := g.paddleRect(1)
	g.ballX = float64(p.Right()) + 0.2
	g.ballY = float64(p.Y + p.H/2)
	g.ballVX = -0.5
	g.ballVY = 0.1

	g.Step(core.NewInputFrame())

	if g.ballVX <= 0 {
		t.Fatalf("ball should bounce right, vx = %v", g.ballVX)
	}
	if want := 0.5 * g.cfg.Physics.SpeedUp; math.Abs(g.ballVX-want) > 1e-9 {
		t.Errorf("vx after bounce = %v, expected %v", g.ballVX, want)
	}
	if g.hits != 1 {
		t.Errorf("hits = %d, expected 1", g.hits)
	}
}

func TestFastBallDoesNotTunnel(t *testing.T) {
	g := newGame(t, New())
	g.countdown = 0

	p := g.paddleRect(1)
	g.ballX = float64(p.Right()) + 0.1
	g.ballY = float64(p.Y + p.H/2)
	g.ballVX = -1.5
	g.ballVY = 0

	g.Step(core.NewInputFrame())

	if g.ballVX <= 0 {
		t.Errorf("fast ball passed through the paddle, x = %v", g.ballX)
	}
}

func TestScoringAndFeed(t *testing.T) {
	g := newGame(t, New())
	g.countdown = 0

	// Ball past the left paddle, away from it vertically
	g.ballX = 0.5
	g.ballY = 2
	g.paddle1Y = 15
	g.ballVX = -1
	g.ballVY = 0

	g.Step(core.NewInputFrame())

	if g.score2 != 1 {
		t.Fatalf("score2 = %d, expected 1", g.score2)
	}
	if g.countdown == 0 {
		t.Error("a point should restart the countdown")
	}
	if g.ballVX >= 0 {
		t.Error("serve should go towards the player who conceded")
	}

	entries := g.feed.Entries()
	if len(entries) != 2 || entries[1].Scorer != 2 {
		t.Errorf("feed = %+v, expected anchor and one CPU rally", entries)
	}
}

func TestWinEndsGame(t *testing.T) {
	g := newGame(t, New())

	for range 3 {
		g.point(1)
	}

	state := g.State()
	if !state.GameOver {
		t.Fatal("game should be over at win score")
	}
	if state.Score != 3 || g.winner != 1 {
		t.Errorf("score = %d winner = %d, expected 3 and 1", state.Score, g.winner)
	}

	s := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(s)
	if !strings.Contains(s.String(), "YOU WIN!") {
		t.Error("game over message missing")
	}

	// Steps after game over change nothing
	before := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != before {
		t.Error("game advanced after game over")
	}
}

func TestPause(t *testing.T) {
	g := newGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	ticks := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != ticks {
		t.Error("paused game should not advance")
	}

	s := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(s)
	centerX := testRuntime.ScreenW / 2
	if s.Get(centerX, 1) != NetChar || s.Get(centerX, 2) != ' ' || s.Get(centerX, 3) != NetChar {
		t.Errorf("net should be dashed, got %q", []rune{s.Get(centerX, 1), s.Get(centerX, 2), s.Get(centerX, 3)})
	}
	// The message box covers the net.
	if !strings.Contains(s.Row(10), "PAUSED") {
		t.Errorf("pause title missing, row 10 = %q", s.Row(10))
	}
	if s.Get(centerX, 11) != ' ' {
		t.Errorf("net drawn inside the message box: %q", s.Get(centerX, 11))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (float64, float64, int) {
		g := newGame(t, New())
		for i := range 2000 {
			in := core.NewInputFrame()
			if i%7 < 3 {
				in.Set(core.ActionUp)
			} else {
				in.Set(core.ActionDown)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.ballX, g.ballY, g.score1*100 + g.score2
	}

	x1, y1, s1 := run()
	x2, y2, s2 := run()
	if x1 != x2 || y1 != y2 || s1 != s2 {
		t.Errorf("same seed and input diverged: (%v,%v,%d) vs (%v,%v,%d)", x1, y1, s1, x2, y2, s2)
	}
}

func TestTrailDisabled(t *testing.T) {
	useConfig(t, "trail:\n  enabled: false\ngameplay:\n  countdown: 0\n")
	g := New()
	g.Reset(testRuntime)

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if g.trail != nil {
		t.Error("trail should not exist when disabled")
	}
}

func TestTrailFollowsBall(t *testing.T) {
	useConfig(t, "trail:\n  length: 5\n  interval: 1\ngameplay:\n  countdown: 0\n")
	g := New()
	g.Reset(testRuntime)

	for range 20 {
		g.Step(core.NewInputFrame())
		if g.trail.Len() > 5 {
			t.Fatalf("trail Len = %d, limit is 5", g.trail.Len())
		}
	}

	points := g.trail.Points()
	last := points[len(points)-1]
	if last.X != int(g.ballX) || last.Y != int(g.ballY) {
		t.Errorf("newest trail point %+v, ball at (%v,%v)", last, g.ballX, g.ballY)
	}
}
