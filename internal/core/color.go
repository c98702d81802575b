package core

// Color is a terminal colour specification understood by lipgloss:
// an ANSI palette index ("1".."255") or a hex triplet ("#87ceeb").
// The empty Color means "terminal default".
type Color string

// Palette colours used by the HUD and sprites.
const (
	ColorDefault      Color = ""
	ColorBlack        Color = "0"
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorMagenta      Color = "5"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "245"
	ColorDarkGray     Color = "240"
	ColorBrown        Color = "130"
	ColorPaleYellow   Color = "229"
)

// IsHex reports whether c is a "#rrggbb" colour.
func (c Color) IsHex() bool {
	return len(c) == 7 && c[0] == '#'
}
