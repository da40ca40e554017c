// Package core provides fundamental types and utilities shared by the game
// and the platform layer: geometry, input frames, the screen buffer and
// random helpers. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an axis-aligned box in screen cells. Right and Bottom are
// exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Sweep returns the one-row box covering every column a mover on row y
// crossed between fromX and toX, both ends included.
func Sweep(fromX, toX, y float64) Rect {
	lo := math.Min(fromX, toX)
	return NewRect(int(lo), int(y), int(math.Abs(toX-fromX))+1, 1)
}

// Offset returns where y falls along the height of r, 0 at the top edge and
// 1 at the bottom edge, clamped to that range.
func (r Rect) Offset(y float64) float64 {
	return Clamp((y-float64(r.Y))/float64(max(r.H, 1)), 0, 1)
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
