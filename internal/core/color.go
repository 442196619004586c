package core

import "fmt"

// Color is a 24-bit RGB color. Two colors are equal when all three channels
// match, so Color can be compared with == and used as a map key.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns the canonical key form, e.g. "rgb(12, 200, 7)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb" for terminal truecolor styles.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Nudge returns the color with the blue channel moved by one, wrapping at 255.
func (c Color) Nudge() Color {
	c.B++
	return c
}

// Luminance returns the relative brightness in [0, 1] (Rec. 601 weights).
// Used to pick readable text on top of a swatch.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// Common colors for HUD elements.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorGray  = Color{138, 138, 138}
	ColorRed   = Color{230, 70, 70}
	ColorGreen = Color{80, 200, 120}
	ColorAmber = Color{240, 170, 40}
)
