package audio

import (
	"sync/atomic"

	"github.com/faiface/beep"
)

var emptyBuffer = &Buffer{}

// Holder keeps the most recently published Buffer. The audio callback
// publishes, the render loop reads. Publishing copies the frames into a fresh
// Buffer and swaps a pointer, so a reader only ever sees a complete buffer and
// neither side waits on the other.
type Holder struct {
	latest    atomic.Pointer[Buffer]
	published atomic.Uint64
}

func NewHolder() *Holder {
	return &Holder{}
}

// Publish stores a copy of frames as the latest buffer. Each publish
// allocates one buffer; the previous one is left to readers that still hold
// it and then to the collector.
func (h *Holder) Publish(frames [][2]float64, sampleRate beep.SampleRate) {
	src := Buffer{Frames: frames, SampleRate: sampleRate}
	h.latest.Store(src.Clone())
	h.published.Add(1)
}

// Latest returns the most recent buffer, or an empty one if nothing has been
// published yet. Callers must not modify it.
func (h *Holder) Latest() *Buffer {
	if b := h.latest.Load(); b != nil {
		return b
	}
	return emptyBuffer
}

// Published returns the number of buffers published so far.
func (h *Holder) Published() uint64 {
	return h.published.Load()
}
