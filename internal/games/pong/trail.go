package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/container/darray"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// trailRunes fade from newest to oldest.
var trailRunes = []rune{'▓', '▒', '░'}

// TrailPoint is one sampled ball position.
type TrailPoint struct {
	X, Y int
}

// Trail keeps the most recent ball positions, oldest first.
type Trail struct {
	points   *darray.Array[TrailPoint]
	limit    int
	interval int
	ticks    int
}

// NewTrail creates a trail holding up to limit positions, sampled every
// interval ticks.
func NewTrail(limit, interval int) *Trail {
	t := &Trail{
		limit:    max(limit, 1),
		interval: max(interval, 1),
	}
	t.points = t.newArray()
	return t
}

func (t *Trail) newArray() *darray.Array[TrailPoint] {
	// One spare slot: a full trail pushes before it erases.
	return darray.New[TrailPoint](
		darray.WithMaxCapacity(t.limit+1),
		darray.WithGrowHook(func(oldCap, newCap int) {
			logger.Debug("trail grew", "from", oldCap, "to", newCap)
		}),
	)
}

// Tick advances the sampling clock and records p when a sample is due.
func (t *Trail) Tick(p TrailPoint) error {
	t.ticks++
	if t.ticks%t.interval != 0 {
		return nil
	}
	return t.Record(p)
}

// Record appends p, dropping the oldest position once the trail is full.
func (t *Trail) Record(p TrailPoint) error {
	if err := t.points.Push(p); err != nil {
		return fmt.Errorf("trail record: %w", err)
	}
	if t.points.Count() > t.limit {
		if err := t.points.EraseAt(0); err != nil {
			return fmt.Errorf("trail drop oldest: %w", err)
		}
	}
	return nil
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.points.Count()
}

// Points returns a copy of the stored positions, oldest first.
func (t *Trail) Points() []TrailPoint {
	n := t.points.Count()
	out := make([]TrailPoint, 0, n)
	for i := range n {
		p, err := t.points.At(i)
		if err != nil {
			break
		}
		out = append(out, p)
	}
	return out
}

// Reset discards every position.
func (t *Trail) Reset() {
	t.points.Destroy()
	t.points = t.newArray()
	t.ticks = 0
}

// Render draws the trail, skipping cells already occupied by the court.
func (t *Trail) Render(dst *core.Screen) {
	n := t.points.Count()
	for i := range n {
		p, err := t.points.At(i)
		if err != nil {
			return
		}
		if dst.Get(p.X, p.Y) != ' ' {
			continue
		}
		age := n - 1 - i
		r := trailRunes[min(age*len(trailRunes)/max(n, 1), len(trailRunes)-1)]
		dst.SetColored(p.X, p.Y, r, core.Shade(age))
	}
}
