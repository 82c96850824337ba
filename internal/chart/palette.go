package chart

import "image/color"

// Palette is the fixed series color cycle: red, black, blue, green.
var Palette = []color.Color{
	color.RGBA{R: 0xff, A: 0xff},
	color.RGBA{A: 0xff},
	color.RGBA{B: 0xff, A: 0xff},
	color.RGBA{G: 0xff, A: 0xff},
}

// SeriesColor returns the palette color for trajectory index i, cycling
// through the palette.
func SeriesColor(i int) color.Color {
	return Palette[i%len(Palette)]
}
