package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/container/list"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Rally records how one point was won.
type Rally struct {
	Scorer int // 0 for the match-start entry, otherwise 1 or 2
	Hits   int // Paddle hits during the rally
	Score1 int // Score after the point
	Score2 int
}

// String formats the rally for the feed.
func (r Rally) String() string {
	if r.Scorer == 0 {
		return "match start"
	}
	return fmt.Sprintf("P%d +1  %d hits  %d-%d", r.Scorer, r.Hits, r.Score1, r.Score2)
}

// Feed lists recent rallies, newest first, under a fixed match-start entry.
type Feed struct {
	rallies *list.List[Rally]
	anchor  *Rally
	limit   int
}

// NewFeed creates a feed that keeps up to limit rallies besides the anchor.
func NewFeed(limit int) *Feed {
	f := &Feed{limit: max(limit, 0)}
	f.Reset()
	return f
}

// Add records a rally directly after the anchor and drops the oldest ones
// past the limit.
func (f *Feed) Add(r Rally) error {
	if err := f.rallies.InsertAfter(&r, f.anchor); err != nil {
		return fmt.Errorf("feed add: %w", err)
	}
	for f.rallies.Len() > f.limit+1 {
		if err := f.rallies.PopBack(false); err != nil {
			return fmt.Errorf("feed trim: %w", err)
		}
	}
	return nil
}

// Len returns the number of entries including the anchor.
func (f *Feed) Len() int {
	return f.rallies.Len()
}

// Entries returns the feed from the anchor down to the oldest rally.
func (f *Feed) Entries() []Rally {
	out := make([]Rally, 0, f.rallies.Len())
	for n := f.rallies.Front(); n != nil; n = n.Next() {
		out = append(out, *n.Data)
	}
	return out
}

// Reset empties the feed back to its anchor.
func (f *Feed) Reset() {
	if f.rallies != nil {
		f.rallies.Destroy(false)
	}
	f.anchor = &Rally{}
	f.rallies = list.New(f.anchor)
}

// Render draws the rallies, newest first, starting at row y.
func (f *Feed) Render(dst *core.Screen, y int) {
	// The anchor heads the list; rallies follow it.
	row := y
	for n := f.rallies.Front().Next(); n != nil; n = n.Next() {
		c := core.ColorGray
		if row == y {
			c = core.ColorLightGray
		}
		dst.DrawTextCentered(0, dst.Width(), row, n.Data.String(), c)
		row++
	}
}
