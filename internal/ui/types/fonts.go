package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is used for every piece of HUD text.
var Face font.Face = basicfont.Face7x13

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Round()
}

func LineHeight() int {
	return Face.Metrics().Height.Ceil()
}
