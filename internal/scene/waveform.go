package scene

import "github.com/iburimskiy/chord-rings/internal/audio"

type Point struct {
	X, Y float64
}

// ExtractWaveform maps the left channel of buf onto a width×height area and
// appends the points to dst[:0]. Frame i lands at x = i/frames*width and a
// sample in [-1, 1] lands at y in [0, height]. An empty buffer gives no points.
func ExtractWaveform(buf *audio.Buffer, width, height float64, dst []Point) []Point {
	dst = dst[:0]
	frames := buf.NumFrames()
	for i := 0; i < frames; i++ {
		s := buf.Sample(i, 0)
		dst = append(dst, Point{
			X: float64(i) / float64(frames) * width,
			Y: (s + 1) / 2 * height,
		})
	}
	return dst
}
