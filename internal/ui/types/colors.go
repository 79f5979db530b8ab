package types

import "image/color"

var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorFieldBg       = color.RGBA{20, 20, 24, 255}
	ColorGrid          = color.RGBA{40, 40, 45, 255}
	ColorSnake         = color.RGBA{204, 0, 0, 255}
	ColorFood          = color.RGBA{204, 0, 0, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 180}
	ColorError         = color.RGBA{255, 100, 100, 255}
)

// SnakeHeadColor is the body color darkened so the head stands out.
var SnakeHeadColor = Darken(ColorSnake, 0.7)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
