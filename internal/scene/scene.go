// Package scene holds the render-side state of the visualizer: the waveform
// and loudness read from the latest audio buffer, and the ring of circles
// they animate. It draws through Canvas and knows nothing about the window.
package scene

import (
	"image/color"

	"github.com/iburimskiy/chord-rings/internal/audio"
	"github.com/iburimskiy/chord-rings/internal/config"
)

// BufferSource yields the most recently completed audio buffer.
type BufferSource interface {
	Latest() *audio.Buffer
}

// Canvas is a surface that can stroke anti-aliased circles and lines.
type Canvas interface {
	StrokeCircle(cx, cy, radius, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

type Scene struct {
	width, height float64

	colour   color.RGBA
	circles  *Ring
	waveform []Point
	rms      float64
}

func New(width, height float64) *Scene {
	return &Scene{
		width:   width,
		height:  height,
		colour:  StartColour,
		circles: NewRing(config.MaxCircles),
	}
}

// Update reads the latest buffer once, then advances the colour and pushes a
// circle sized by the buffer's loudness. The buffer is not touched after
// Update returns.
func (s *Scene) Update(src BufferSource) {
	buf := src.Latest()
	s.waveform = ExtractWaveform(buf, s.width, s.height, s.waveform)
	s.rms = buf.RMS()

	s.colour = NextColour(s.colour)
	s.circles.Push(Circle{Radius: CircleRadius(s.rms), Colour: s.colour})
}

// Draw strokes the circles from oldest to newest around the centre, then the
// waveform on top in the complementary hue.
func (s *Scene) Draw(c Canvas) {
	cx, cy := s.width/2, s.height/2
	for i := s.circles.Len() - 1; i >= 0; i-- {
		circle := s.circles.At(i)
		alpha, stroke := CircleStyle(i)
		clr := color.NRGBA{R: circle.Colour.R, G: circle.Colour.G, B: circle.Colour.B, A: alpha}
		c.StrokeCircle(cx, cy, circle.Radius, stroke, clr)
	}

	wc := complement(s.colour, config.WaveformAlpha)
	for i := 1; i < len(s.waveform); i++ {
		p0, p1 := s.waveform[i-1], s.waveform[i]
		c.StrokeLine(p0.X, p0.Y, p1.X, p1.Y, config.WaveformStroke, wc)
	}
}

// CircleRadius maps a loudness in [0, 1] to a radius in [50, 850].
func CircleRadius(level float64) float64 {
	return config.BaseRadius + config.RadiusPerLevel*level
}

// CircleStyle returns the alpha and stroke width of the circle at age i.
// Older circles fade out and thin down linearly over the ring capacity.
func CircleStyle(i int) (alpha uint8, stroke float64) {
	r := 1 - float64(i)/config.MaxCircles
	return uint8(255 * r), config.MinStroke + config.StrokePerRange*r
}

func (s *Scene) RMS() float64 { return s.rms }

func (s *Scene) Colour() color.RGBA { return s.colour }

func (s *Scene) Waveform() []Point { return s.waveform }

func (s *Scene) Circles() *Ring { return s.circles }
