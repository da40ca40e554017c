// Package registry maps mode ids to game constructors. Game packages add
// their modes from init, and the CLI, menu and SSH server look them up here.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-tick simulation driven by the platform. Implementations
// never touch the terminal: they read an InputFrame per tick and draw into
// a Screen when asked.
type Game interface {
	// ID is the stable mode id used on the command line and in storage.
	ID() string
	Title() string

	// Reset starts a fresh match sized for cfg. It is also used for restarts.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen.
	Render(dst *core.Screen)
	State() core.GameState
}

// MatchReporter is implemented by games that play head-to-head matches.
// The platform stores the result once the game is over.
type MatchReporter interface {
	Result() core.MatchResult
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	newGame Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. The title is read from one throwaway instance.
// Registering the same id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, newGame: f}
}

// List returns every registered mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.newGame(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
