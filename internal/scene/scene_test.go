package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/chord-rings/internal/audio"
)

type strokeCircle struct {
	cx, cy, radius, width float64
	clr                   color.NRGBA
}

type recordingCanvas struct {
	circles []strokeCircle
	lines   int
}

func (c *recordingCanvas) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	c.circles = append(c.circles, strokeCircle{cx, cy, radius, width, clr.(color.NRGBA)})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.lines++
}

func TestSceneUpdateEmptySource(t *testing.T) {
	s := New(1024, 768)
	s.Update(audio.NewHolder())

	if s.RMS() != 0 || len(s.Waveform()) != 0 {
		t.Errorf("RMS %v, %d points; want silent empty state", s.RMS(), len(s.Waveform()))
	}
	if got := s.Colour(); got != rgb(252, 3, 0) {
		t.Errorf("Colour() = %v, want one step from red", got)
	}
	if s.Circles().Len() != 1 || s.Circles().At(0).Radius != 50 {
		t.Errorf("want one circle of radius 50, got %d", s.Circles().Len())
	}

	c := &recordingCanvas{}
	s.Draw(c)
	if len(c.circles) != 1 || c.lines != 0 {
		t.Errorf("drew %d circles and %d lines, want 1 and 0", len(c.circles), c.lines)
	}
}

func TestSceneUpdateLoudness(t *testing.T) {
	h := audio.NewHolder()
	frames := make([][2]float64, 512)
	for i := range frames {
		frames[i] = [2]float64{0.5, 0.5}
	}
	h.Publish(frames, 44100)

	s := New(1024, 768)
	s.Update(h)
	if math.Abs(s.RMS()-0.5) > 1e-12 {
		t.Errorf("RMS() = %v, want 0.5", s.RMS())
	}
	if got := s.Circles().At(0).Radius; math.Abs(got-450) > 1e-9 {
		t.Errorf("radius = %v, want 450", got)
	}
	if len(s.Waveform()) != 512 {
		t.Errorf("waveform has %d points, want 512", len(s.Waveform()))
	}

	c := &recordingCanvas{}
	s.Draw(c)
	if c.lines != 511 {
		t.Errorf("drew %d waveform segments, want 511", c.lines)
	}
}

func TestSceneDrawOrder(t *testing.T) {
	s := New(1024, 768)
	h := audio.NewHolder()
	for i := 0; i < 3; i++ {
		s.Update(h)
	}

	c := &recordingCanvas{}
	s.Draw(c)
	if len(c.circles) != 3 {
		t.Fatalf("drew %d circles, want 3", len(c.circles))
	}
	want := []struct {
		alpha uint8
		width float64
		r     uint8
	}{
		{242, 96, 252}, // oldest first
		{248, 98.5, 249},
		{255, 101, 246}, // newest last, on top
	}
	for i, w := range want {
		got := c.circles[i]
		if got.clr.A != w.alpha || math.Abs(got.width-w.width) > 1e-9 || got.clr.R != w.r {
			t.Errorf("circle %d: alpha %d width %v red %d, want %d %v %d", i, got.clr.A, got.width, got.clr.R, w.alpha, w.width, w.r)
		}
		if got.cx != 512 || got.cy != 384 {
			t.Errorf("circle %d centred at (%v, %v), want (512, 384)", i, got.cx, got.cy)
		}
	}
}

func TestSceneRingBound(t *testing.T) {
	s := New(1024, 768)
	h := audio.NewHolder()
	for i := 0; i < 100; i++ {
		s.Update(h)
	}
	if s.Circles().Len() != 40 {
		t.Errorf("ring holds %d circles, want 40", s.Circles().Len())
	}
	c := &recordingCanvas{}
	s.Draw(c)
	if a := c.circles[0].clr.A; a != 6 {
		t.Errorf("oldest alpha = %d", a)
	}
}

func TestCircleStyle(t *testing.T) {
	tests := []struct {
		age    int
		alpha  uint8
		stroke float64
	}{
		{0, 255, 101},
		{20, 127, 51},
		{39, 6, 3.5},
	}
	for _, tt := range tests {
		alpha, stroke := CircleStyle(tt.age)
		if alpha != tt.alpha || math.Abs(stroke-tt.stroke) > 1e-9 {
			t.Errorf("CircleStyle(%d) = (%d, %v), want (%d, %v)", tt.age, alpha, stroke, tt.alpha, tt.stroke)
		}
	}
}

func TestCircleRadius(t *testing.T) {
	if got := CircleRadius(0); got != 50 {
		t.Errorf("CircleRadius(0) = %v, want 50", got)
	}
	if got := CircleRadius(1); got != 850 {
		t.Errorf("CircleRadius(1) = %v, want 850", got)
	}
}
