package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game. Names follow the classic console palette the
// court colors were picked from.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorPearl
	ColorLightGray
	ColorGray
	ColorPaleBlue
	ColorSkyBlue
	ColorLightBlue
	ColorBlue
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrown
)

// Shade returns a color for the age-th cell of a fading effect, where age 0
// is the newest. Older cells fade from white towards gray.
func Shade(age int) Color {
	switch {
	case age <= 1:
		return ColorPearl
	case age <= 4:
		return ColorLightGray
	default:
		return ColorGray
	}
}
