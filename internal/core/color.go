package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// ColorCount is the number of predefined colors.
	ColorCount
)

// ansiCodes maps colors past the basic sixteen to the 256-color palette.
var ansiCodes = [ColorCount]string{
	ColorOrange: "208",
	ColorGray:   "245",
}

// ANSI returns the 256-color palette index for c, or "" for the terminal's
// default foreground. The basic colors map onto palette entries 1-7 and 9-15.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault || c >= ColorCount:
		return ""
	case c <= ColorWhite:
		return itoa(int(c))
	case c <= ColorBrightWhite:
		return itoa(int(c) + 1)
	}
	return ansiCodes[c]
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
