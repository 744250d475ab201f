package core

// Color is a foreground colour for a screen cell.
// The platform maps each value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
