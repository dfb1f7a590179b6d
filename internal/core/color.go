package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors at render time.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorWhite
	ColorBrightWhite
	ColorRed
	ColorGray
)
