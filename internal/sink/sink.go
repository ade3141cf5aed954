// Package sink holds what every audio output backend shares: the stream
// settings, the byte adapter for pull-style players and the teardown that
// runs when the window closes. The backends themselves live in device.
package sink

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"go.uber.org/zap"

	"github.com/iburimskiy/chord-rings/internal/config"
)

// Sink is an open audio output that pulls from a streamer until closed.
type Sink interface {
	Close() error
}

// Settings describes the output stream requested at startup.
type Settings struct {
	Channels     int
	SampleRate   int
	BufferFrames int
	BufferCount  int
}

func DefaultSettings() Settings {
	return Settings{
		Channels:     config.Channels,
		SampleRate:   config.SampleRate,
		BufferFrames: config.BufferFrames,
		BufferCount:  config.BufferCount,
	}
}

func (s Settings) Validate() error {
	if s.Channels != 2 {
		return fmt.Errorf("unsupported channel count %d: only stereo output is supported", s.Channels)
	}
	if s.SampleRate <= 0 || s.BufferFrames <= 0 || s.BufferCount <= 0 {
		return errors.New("sample rate, buffer frames and buffer count must be positive")
	}
	return nil
}

// QueueDuration is the playback time covered by all queued buffers.
func (s Settings) QueueDuration() time.Duration {
	return time.Duration(s.BufferCount*s.BufferFrames) * time.Second / time.Duration(s.SampleRate)
}

// LogOpened reports the stream a backend has just started.
func LogOpened(logger *zap.Logger, backend string, st Settings) {
	logger.Info("audio stream opened",
		zap.String("backend", backend),
		zap.Int("channels", st.Channels),
		zap.Int("sampleRate", st.SampleRate),
		zap.Int("bufferFrames", st.BufferFrames),
		zap.Int("bufferCount", st.BufferCount),
		zap.Duration("queue", st.QueueDuration()),
	)
}

// deviceSink runs a backend's stop function once. stop must not take any
// lock the backend's own teardown takes again.
type deviceSink struct {
	backend string
	stop    func() error
	logger  *zap.Logger

	once sync.Once
	err  error
}

// New returns a Sink whose Close calls stop exactly once.
func New(backend string, stop func() error, logger *zap.Logger) Sink {
	return &deviceSink{backend: backend, stop: stop, logger: logger}
}

func (s *deviceSink) Close() error {
	s.once.Do(func() {
		if err := s.stop(); err != nil {
			s.err = fmt.Errorf("close %s output: %w", s.backend, err)
			return
		}
		s.logger.Info("audio stream closed", zap.String("backend", s.backend))
	})
	return s.err
}

// blockReader adapts a beep.Streamer to an io.Reader of interleaved float32
// little-endian stereo samples. The streamer is always asked for exactly one
// block of frames at a time, whatever size the reader is drained with.
type blockReader struct {
	src     beep.Streamer
	frames  [][2]float64
	buf     []byte
	pending []byte
}

const bytesPerFrame = 2 * 4

// NewBlockReader returns a reader that pulls blockFrames frames from src per
// refill.
func NewBlockReader(src beep.Streamer, blockFrames int) io.Reader {
	return newBlockReader(src, blockFrames)
}

func newBlockReader(src beep.Streamer, blockFrames int) *blockReader {
	return &blockReader{
		src:    src,
		frames: make([][2]float64, blockFrames),
		buf:    make([]byte, 0, blockFrames*bytesPerFrame),
	}
}

func (r *blockReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) == 0 {
			if err := r.fill(); err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, err
			}
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}

func (r *blockReader) fill() error {
	k, _ := r.src.Stream(r.frames)
	if k == 0 {
		if err := r.src.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	buf := r.buf[:0]
	for _, f := range r.frames[:k] {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(f[0])))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(f[1])))
	}
	r.buf = buf
	r.pending = buf
	return nil
}
