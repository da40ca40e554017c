package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Codes are the nearest
// ANSI 256 entries to the court palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorWhite:     fg("231"),
	core.ColorPearl:     fg("255"),
	core.ColorLightGray: fg("250"),
	core.ColorGray:      fg("244"),
	core.ColorPaleBlue:  fg("153"),
	core.ColorSkyBlue:   fg("117"),
	core.ColorLightBlue: fg("75"),
	core.ColorBlue:      fg("33"),
	core.ColorRed:       fg("196"),
	core.ColorGreen:     fg("40"),
	core.ColorYellow:    fg("220"),
	core.ColorBrown:     fg("130"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
