package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Buffer is one block of stereo frames as produced by a single audio callback.
// A published Buffer is never written to again.
type Buffer struct {
	Frames     [][2]float64
	SampleRate beep.SampleRate
}

func (b *Buffer) NumFrames() int { return len(b.Frames) }

func (b *Buffer) NumChannels() int { return 2 }

// Sample returns the sample of the given channel (0 = left, 1 = right) at frame i.
func (b *Buffer) Sample(i, channel int) float64 {
	return b.Frames[i][channel]
}

// RMS returns the root-mean-square amplitude over every sample of every channel.
// An empty buffer has an RMS of 0.
func (b *Buffer) RMS() float64 {
	if len(b.Frames) == 0 {
		return 0
	}
	var sumSquares float64
	for _, f := range b.Frames {
		sumSquares += f[0]*f[0] + f[1]*f[1]
	}
	return math.Sqrt(sumSquares / float64(len(b.Frames)*b.NumChannels()))
}

// Clone returns a copy of b that shares no frames with it.
func (b *Buffer) Clone() *Buffer {
	frames := make([][2]float64, len(b.Frames))
	copy(frames, b.Frames)
	return &Buffer{Frames: frames, SampleRate: b.SampleRate}
}
