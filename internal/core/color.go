package core

// Color is a cell color. Foreground and background share the palette;
// the platform maps each value to an ANSI color.
type Color uint8

// Palette of the text-mode display.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
