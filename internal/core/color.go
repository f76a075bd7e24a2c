package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the runner scene, the HUD and the status screens.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightCyan
	ColorBrightWhite
)

// ansiCodes maps each color to its ANSI 256-color code.
var ansiCodes = [...]string{
	ColorDefault:     "",
	ColorBlue:        "4",
	ColorGreen:       "2",
	ColorCyan:        "6",
	ColorWhite:       "7",
	ColorGray:        "245",
	ColorBrightRed:   "9",
	ColorBrightCyan:  "14",
	ColorBrightWhite: "15",
}

// Palette returns every defined color.
func Palette() []Color {
	p := make([]Color, len(ansiCodes))
	for i := range ansiCodes {
		p[i] = Color(i)
	}
	return p
}

// ANSI returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
