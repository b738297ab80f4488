package core

// Color represents a foreground color for a screen cell.
// Frontends map these to ANSI 256-color codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorBrown
	ColorGray
	ColorDarkGray
	ColorRed
)
