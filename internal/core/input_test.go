package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) || f.String() != "[]" {
		t.Errorf("zero frame = %v, expected empty", f)
	}

	f.Set(ActionUp)
	f.Set(ActionAltDown)
	f.Set(ActionUp)
	if !f.Has(ActionUp) || !f.Has(ActionAltDown) || f.Has(ActionDown) {
		t.Errorf("frame = %v, expected Up and AltDown", f)
	}
	if got := f.String(); got != "[Up AltDown]" {
		t.Errorf("String() = %q", got)
	}

	// Frames are values: the copy keeps its actions after Clear.
	kept := f
	f.Clear()
	if f.Has(ActionUp) || !kept.Has(ActionUp) {
		t.Error("Clear should only empty the cleared frame")
	}

	f.Set(Action(200))
	if f.Has(Action(200)) {
		t.Error("unknown actions should be ignored")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionUp:      "Up",
		ActionAltDown: "AltDown",
		ActionBack:    "Back",
		ActionPause:   "Pause",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestRuntimeConfigSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Seconds(3); got != 180 {
		t.Errorf("Seconds(3) at 60fps = %d, expected 180", got)
	}

	cfg.TickRate = 30
	if got := cfg.Seconds(0.5); got != 15 {
		t.Errorf("Seconds(0.5) at 30fps = %d, expected 15", got)
	}

	cfg.TickRate = 0
	if got := cfg.Seconds(1); got != 60 {
		t.Errorf("Seconds(1) with unset rate = %d, expected 60", got)
	}
}
