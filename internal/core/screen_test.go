package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8) {
		t.Errorf("new screen should be blank, got %q", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '●', ColorWhite)

	if cell := s.GetCell(1, 1); cell.Rune != '●' || cell.Color != ColorWhite {
		t.Errorf("GetCell(1, 1) = %+v, expected white ball", cell)
	}

	// Out-of-bounds writes are dropped, reads are blank.
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'x', ColorRed)
		if s.GetCell(p[0], p[1]) != blankCell {
			t.Errorf("GetCell(%d, %d) should be blank", p[0], p[1])
		}
	}

	s.Clear()
	if s.GetCell(1, 1) != blankCell {
		t.Error("Clear should reset runes and colors")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(0, 0, "3·2", ColorGreen)
	s.DrawTextColored(4, 0, "CPU", ColorBlue)

	// Runes, not bytes, advance the cursor; the tail is clipped.
	if got := s.Row(0); got != "3·2 CP" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(2, 0).Color != ColorGreen || s.GetCell(5, 0).Color != ColorBlue {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 int
		text   string
		want   string
	}{
		{"full row", 0, 11, "P1 +1", "   P1 +1   "},
		{"odd slack", 0, 10, "ab", "    ab     "},
		{"inside a box", 2, 8, "GO", "    GO     "},
		{"wider than span", 3, 5, "PAUSED", " PAUSED    "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(11, 1)
			s.DrawTextCentered(tc.x0, tc.x1, 0, tc.text, ColorYellow)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	paddle := NewRect(1, 2, 1, 3)
	s.DrawRect(paddle, '█', ColorRed)

	for y := range 6 {
		want := ' '
		if y >= 2 && y < 5 {
			want = '█'
		}
		if got := s.Get(1, y); got != want {
			t.Errorf("Get(1, %d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(1, 3).Color != ColorRed {
		t.Errorf("paddle color = %v, expected red", s.GetCell(1, 3).Color)
	}
	if s.Get(2, 3) != ' ' {
		t.Error("DrawRect wrote past the right edge")
	}
}

func TestScreenDrawVLine(t *testing.T) {
	tests := []struct {
		name   string
		y0, y1 int
		step   int
		want   string // column 2, top to bottom
	}{
		{"solid", 1, 5, 1, " ||||  "},
		{"dashed net", 1, 6, 2, " | | | "},
		{"zero step is solid", 0, 3, 0, "|||    "},
		{"clipped", -2, 20, 3, " |  |  "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 7)
			s.DrawVLine(2, tc.y0, tc.y1, tc.step, '|', ColorPearl)

			var col strings.Builder
			for y := range 7 {
				col.WriteRune(s.Get(2, y))
			}
			if got := col.String(); got != tc.want {
				t.Errorf("column = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(0, 0, 7, 5), '.', ColorDefault)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorLightGray)

	want := []string{
		".......",
		".┌───┐.",
		".│   │.",
		".└───┘.",
		".......",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(1, 1).Color != ColorLightGray {
		t.Error("box outline should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "12345", ColorYellow)
	s.DrawTextColored(0, 2, "abcde", ColorDefault)

	s.Resize(3, 4)
	if s.Width() != 3 || s.Height() != 4 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "123" {
		t.Errorf("Row(0) = %q, expected kept prefix", got)
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("Resize should keep colors")
	}
	if got := s.Row(3); got != "   " {
		t.Errorf("new row = %q, expected blank", got)
	}

	s.Resize(3, 4) // same size is a no-op
	if got := s.Row(2); got != "abc" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 1, "ok", ColorDefault)

	if got := s.Row(1); got != "ok " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row out of range = %q, expected blank", got)
	}
	if got := s.String(); got != "   \nok " {
		t.Errorf("String() = %q", got)
	}
}
