package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas draws scene strokes onto an ebiten image with anti-aliasing on.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(radius), float32(width), clr, true)
}

func (c canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
