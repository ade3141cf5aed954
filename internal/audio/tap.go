package audio

import (
	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and publishes every chunk it streams to a Holder
// so the renderer can draw from the most recently played audio.
type Tap struct {
	Source     beep.Streamer
	sampleRate beep.SampleRate
	out        *Holder
}

func NewTap(src beep.Streamer, sampleRate beep.SampleRate, out *Holder) *Tap {
	return &Tap{
		Source:     src,
		sampleRate: sampleRate,
		out:        out,
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.out.Publish(samples[:n], t.sampleRate)
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }
