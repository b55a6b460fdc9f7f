package main

import "image/color"

var colors = []color.NRGBA{
	{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
	{R: 0x85, G: 0x76, B: 0x25, A: 0xff}, //#857625
	{R: 0x51, G: 0x85, B: 0x4d, A: 0xff}, //#51854d
	{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff}, //#2b7fa8
	{R: 0x72, G: 0x6c, B: 0xae, A: 0xff}, //#726cae
	{R: 0x97, G: 0x5f, B: 0x91, A: 0xff}, //975f91
}

var (
	targetLineColor    = color.NRGBA{R: 0x1f, G: 0x4f, B: 0xd8, A: 0xff}
	secondaryTextColor = color.NRGBA{R: 0x3c, G: 0x3c, B: 0x43, A: 0x99}
)

// rotate picks the palette colour for the i'th element of a chart, cycling
// through the palette.
func rotate(i int) color.NRGBA {
	return colors[i%len(colors)]
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
