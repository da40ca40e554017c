// Package tui provides the Bubble Tea integration: the game loop, menu,
// scoreboard and SSH sessions.
// Input is mapped to core actions here so games never see key events.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the Model whose loop sent it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loops atomic.Uint64

// newLoop returns an id for a fresh tick loop. Ticks still in flight from
// a finished match carry an old id and are dropped.
func newLoop() uint64 {
	return loops.Add(1)
}

// tickCmd schedules the next tick of loop at tickRate per second.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
