// Package pong implements Pong against the CPU or a second local player.
// Player 1 controls the left paddle. The right paddle belongs to the CPU or,
// in versus mode, to player 2.
package pong

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar    = '█'
	BallChar      = '●'
	NetChar       = '│'
	CountdownChar = '■'
)

// Mode selects who controls the right paddle.
type Mode int

const (
	ModeCPU    Mode = iota // Player vs CPU
	ModeVersus             // Two players on one keyboard
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "error", err)
	}
	difficultyPreset = p
}

// SetLogger routes game diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix("pong")
}

// Game implements the Pong game logic.
type Game struct {
	mode Mode

	// Paddles (top edge)
	paddle1Y float64
	paddle2Y float64

	// Ball
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	// Scores
	score1       int
	score2       int
	hits         int // Paddle hits in the current rally
	rallies      int
	longestRally int

	// Game state
	gameOver  bool
	paused    bool
	winner    int // 1 or 2
	countdown int // Ticks left before the serve
	tickCount int

	trail *Trail
	feed  *Feed

	// Configuration
	runtime      core.RuntimeConfig
	cfg          config.PongConfig
	difficulty   *config.Difficulty
	paddleHeight int
	rng          *rand.Rand
}

// New creates a Pong game against the CPU.
func New() *Game {
	return &Game{mode: ModeCPU}
}

// NewVersus creates a two-player Pong game.
func NewVersus() *Game {
	return &Game{mode: ModeVersus}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return "pong_versus"
	}
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "Pong (2 Players)"
	}
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultPongConfig()
	}
	config.ApplyPongPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficulty(cfg.Difficulty)
	logger.Debug("match start", "id", g.ID(), "preset", difficultyPreset,
		"level", g.difficulty.Level(0, 0), "progressive", g.difficulty.Progressive())

	// Paddles never take more than half the court
	g.paddleHeight = core.Clamp(cfg.Paddles.Height, 1, max(runtime.ScreenH/2, 1))

	centerY := float64(runtime.ScreenH) / 2.0
	g.paddle1Y = centerY - float64(g.paddleHeight)/2.0
	g.paddle2Y = g.paddle1Y

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.tickCount = 0
	g.rallies = 0
	g.longestRally = 0

	g.trail = nil
	if cfg.Trail.Enabled {
		g.trail = NewTrail(cfg.Trail.Length, cfg.Trail.Interval)
	}
	if g.feed == nil {
		g.feed = NewFeed(cfg.Feed.Length)
	} else {
		g.feed.Reset()
		g.feed.limit = max(cfg.Feed.Length, 0)
	}

	g.startServe(1)
}

// startServe centers the ball and starts the countdown. The ball leaves
// towards the side that just conceded.
func (g *Game) startServe(server int) {
	g.countdown = g.runtime.Seconds(g.cfg.Gameplay.Countdown)
	g.hits = 0

	g.ballX = float64(g.runtime.ScreenW) / 2.0
	g.ballY = float64(g.runtime.ScreenH) / 2.0

	speed := g.difficulty.BallSpeed(g.cfg.Physics.BallSpeed, g.score1+g.score2, g.tickCount)
	if server == 1 {
		g.ballVX = -speed
	} else {
		g.ballVX = speed
	}

	// Random vertical angle
	g.ballVY = speed * core.RandFloat(g.rng, -0.3, 0.3)

	if g.trail != nil {
		g.trail.Reset()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Paddles move during the countdown too
	if g.countdown > 0 {
		g.countdown--
	}

	speed := g.cfg.Physics.PaddleSpeed
	maxY := float64(g.runtime.ScreenH - g.paddleHeight - 1)

	if g.mode == ModeVersus {
		g.paddle1Y += speed * axis(in, core.ActionUp, core.ActionDown)
		g.paddle2Y += speed * axis(in, core.ActionAltUp, core.ActionAltDown)
	} else {
		// Both key sets drive the only human paddle
		dir := axis(in, core.ActionUp, core.ActionDown) + axis(in, core.ActionAltUp, core.ActionAltDown)
		g.paddle1Y += speed * core.Clamp(dir, -1, 1)
		g.updateCPU()
	}
	g.paddle1Y = core.Clamp(g.paddle1Y, 1, maxY)
	g.paddle2Y = core.Clamp(g.paddle2Y, 1, maxY)

	if g.countdown == 0 {
		g.updateBall()
	}

	return core.StepResult{State: g.State()}
}

// axis returns -1, 0 or 1 for a pair of opposing actions.
func axis(in core.InputFrame, up, down core.Action) float64 {
	var d float64
	if in.Has(up) {
		d--
	}
	if in.Has(down) {
		d++
	}
	return d
}

// cpuSkill returns the CPU reaction skill for the current difficulty.
func (g *Game) cpuSkill() float64 {
	return g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, g.score1+g.score2, g.tickCount)
}

// updateCPU moves the right paddle towards the ball while it approaches.
func (g *Game) updateCPU() {
	if g.ballVX <= 0 {
		return
	}

	targetY := g.ballY - float64(g.paddleHeight)/2.0
	diff := targetY - g.paddle2Y

	moveSpeed := g.cfg.Physics.PaddleSpeed * g.cpuSkill()
	if math.Abs(diff) > moveSpeed {
		g.paddle2Y += math.Copysign(moveSpeed, diff)
	}
}

// paddleRect returns the collision rectangle of paddle 1 or 2.
func (g *Game) paddleRect(player int) core.Rect {
	w := g.cfg.Paddles.Width
	if player == 1 {
		return core.NewRect(g.cfg.Paddles.Offset, int(g.paddle1Y), w, g.paddleHeight)
	}
	return core.NewRect(g.runtime.ScreenW-g.cfg.Paddles.Offset-w, int(g.paddle2Y), w, g.paddleHeight)
}

// updateBall moves the ball and resolves walls, paddles and scoring.
func (g *Game) updateBall() {
	prevX := g.ballX
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// Top and bottom walls
	if g.ballY <= 1 {
		g.ballY = 1
		g.ballVY = -g.ballVY
	}
	if g.ballY >= float64(g.runtime.ScreenH-2) {
		g.ballY = float64(g.runtime.ScreenH - 2)
		g.ballVY = -g.ballVY
	}

	// The ball covers every column it crossed this tick so fast serves
	// cannot tunnel through a thin paddle.
	ball := core.Sweep(prevX, g.ballX, g.ballY)
	if g.ballVX < 0 {
		if p := g.paddleRect(1); prevX >= float64(p.X) && ball.Intersects(p) {
			g.ballX = float64(p.Right())
			g.bounce(p)
		}
	} else if g.ballVX > 0 {
		if p := g.paddleRect(2); prevX < float64(p.Right()) && ball.Intersects(p) {
			g.ballX = float64(p.X - 1)
			g.bounce(p)
		}
	}

	g.limitSpeed()

	if g.trail != nil {
		if err := g.trail.Tick(TrailPoint{X: int(g.ballX), Y: int(g.ballY)}); err != nil {
			logger.Warn("trail dropped a sample", "error", err)
		}
	}

	switch {
	case g.ballX < 0:
		g.point(2)
	case g.ballX > float64(g.runtime.ScreenW):
		g.point(1)
	}
}

// bounce reverses the ball off paddle p. The horizontal speed grows a
// little; the vertical speed is re-rolled in the current direction plus
// spin from where the ball struck.
func (g *Game) bounce(p core.Rect) {
	g.hits++
	g.ballVX *= -g.cfg.Physics.SpeedUp

	dir := 1.0
	if g.ballVY < 0 {
		dir = -1.0
	}
	spread := g.cfg.Physics.BallSpeed * g.cfg.Physics.BounceSpread
	g.ballVY = dir * core.RandFloat(g.rng, spread/4, spread)

	g.ballVY += (p.Offset(g.ballY) - 0.5) * g.cfg.Physics.SpinFactor
}

// limitSpeed caps the ball velocity.
func (g *Game) limitSpeed() {
	maxSpeed := g.cfg.Physics.BallSpeed * g.cfg.Physics.MaxBallSpeed
	if math.Abs(g.ballVX) > maxSpeed {
		g.ballVX = math.Copysign(maxSpeed, g.ballVX)
	}
	if math.Abs(g.ballVY) > maxSpeed/2 {
		g.ballVY = math.Copysign(maxSpeed/2, g.ballVY)
	}
}

// point awards a point to scorer and either ends the match or serves again.
func (g *Game) point(scorer int) {
	if scorer == 1 {
		g.score1++
	} else {
		g.score2++
	}

	g.rallies++
	g.longestRally = max(g.longestRally, g.hits)

	rally := Rally{Scorer: scorer, Hits: g.hits, Score1: g.score1, Score2: g.score2}
	if err := g.feed.Add(rally); err != nil {
		logger.Warn("rally not recorded", "error", err)
	}
	logger.Debug("point", "scorer", scorer, "hits", g.hits, "score", fmt.Sprintf("%d-%d", g.score1, g.score2))

	if max(g.score1, g.score2) >= g.cfg.Gameplay.WinScore {
		g.gameOver = true
		g.winner = scorer
		return
	}
	// The side that conceded receives
	if scorer == 1 {
		g.startServe(2)
	} else {
		g.startServe(1)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	centerX := dst.Width() / 2
	dst.DrawVLine(centerX, 1, dst.Height()-1, 2, NetChar, core.ColorPearl)

	dst.DrawRect(g.paddleRect(1), PaddleChar, core.ColorRed)
	dst.DrawRect(g.paddleRect(2), PaddleChar, core.ColorBlue)

	if g.trail != nil {
		g.trail.Render(dst)
	}

	if g.countdown > 0 {
		g.drawCountdown(dst)
	} else {
		dst.SetColored(int(g.ballX), int(g.ballY), BallChar, core.ColorWhite)
	}

	dst.DrawTextColored(centerX-5, 0, fmt.Sprintf("%d", g.score1), core.ColorYellow)
	dst.DrawTextColored(centerX+4, 0, fmt.Sprintf("%d", g.score2), core.ColorYellow)

	dst.DrawTextColored(1, 0, "P1", core.ColorRed)
	right := "CPU"
	if g.mode == ModeVersus {
		right = "P2"
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorBlue)

	g.feed.Render(dst, 1)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, g.winnerText(), fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
	}
}

// drawCountdown draws one green square per remaining second under the
// middle of the net.
func (g *Game) drawCountdown(dst *core.Screen) {
	rate := max(g.runtime.TickRate, 1)
	n := (g.countdown + rate - 1) / rate
	x := dst.Width()/2 - n + 1
	y := dst.Height()/2 + 2
	for i := range n {
		dst.SetColored(x+i*2, y, CountdownChar, core.ColorGreen)
	}
}

func (g *Game) winnerText() string {
	switch {
	case g.mode == ModeVersus:
		return fmt.Sprintf("PLAYER %d WINS!", g.winner)
	case g.winner == 1:
		return "YOU WIN!"
	default:
		return "CPU WINS!"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorLightGray)
	dst.DrawTextCentered(box.X, box.Right(), box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.X, box.Right(), box.Y+3, subtitle, core.ColorDefault)
}

// State returns the current game state. Score is player 1's.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Result summarizes the match so far.
func (g *Game) Result() core.MatchResult {
	return core.MatchResult{
		Score1:       g.score1,
		Score2:       g.score2,
		Winner:       g.winner,
		Rallies:      g.rallies,
		LongestRally: g.longestRally,
		Ticks:        g.tickCount,
	}
}

var _ registry.MatchReporter = (*Game)(nil)

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
	registry.Register("pong_versus", func() registry.Game {
		return NewVersus()
	})
}
