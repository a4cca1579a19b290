package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2/theme"
	"github.com/srwiley/oksvg"
)

// ParseColor turns an SVG color string into a color for fyne canvas objects.
// Unparseable or transparent values fall back to the theme's disabled color.
func ParseColor(s string) color.Color {
	c, err := oksvg.ParseSVGColor(s)
	if err != nil || c == nil {
		return theme.DisabledColor()
	}
	return c
}

// PaletteColor returns the i-th color of an evenly spread hue wheel, as an
// SVG hex string. Consecutive indices land far apart on the wheel.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	// golden angle keeps neighbours distinct without knowing the total
	h := math.Mod(float64(i)*137.508, 360)
	return hexColor(hsvToNRGBA(h, 0.55, 0.75))
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}
