package audio

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/chord-rings/internal/config"
)

// partials lists the carrier and pulse multipliers of each chord voice:
// root, fifth and octave, each pulsed by a slightly detuned LFO.
var partials = [...]struct{ wave, pulse float64 }{
	{wave: 1.0, pulse: 1.0},
	{wave: 1.5, pulse: 1.04},
	{wave: 2.0, pulse: 1.09},
}

// Accumulators are reduced modulo a period that every multiplier above maps
// onto whole turns: 4π for the carriers (×1.5 → 6π) and 200π for the LFOs
// (×1.04 → 208π, ×1.09 → 218π).
const (
	wavePeriod  = 4 * math.Pi
	pulsePeriod = 200 * math.Pi
)

type phase struct {
	angle  float64
	period float64
	turns  uint64
}

func (p *phase) advance(step float64) {
	p.angle += step
	for p.angle >= p.period {
		p.angle -= p.period
		p.turns++
	}
}

// total is the angle as if it had never been wrapped.
func (p *phase) total() float64 {
	return float64(p.turns)*p.period + p.angle
}

// Synth is the oscillator bank: three sine partials, each with its own
// amplitude LFO, mixed to mono and written identically to both channels.
// It implements beep.Streamer and never ends.
type Synth struct {
	sampleRate beep.SampleRate
	waveStep   float64
	pulseStep  float64
	wave       phase
	pulse      phase
}

func NewSynth(sampleRate beep.SampleRate) *Synth {
	sr := float64(sampleRate)
	return &Synth{
		sampleRate: sampleRate,
		waveStep:   config.BaseFrequency / sr * 2 * math.Pi,
		pulseStep:  config.PulseFrequency / sr * 2 * math.Pi,
		wave:       phase{period: wavePeriod},
		pulse:      phase{period: pulsePeriod},
	}
}

func (s *Synth) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := s.next()
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (s *Synth) Err() error { return nil }

func (s *Synth) next() float64 {
	var sum float64
	for _, p := range partials {
		sum += math.Sin(s.wave.angle*p.wave) * math.Sin(s.pulse.angle*p.pulse)
	}
	s.wave.advance(s.waveStep)
	s.pulse.advance(s.pulseStep)
	return sum * config.Headroom
}

func (s *Synth) SampleRate() beep.SampleRate { return s.sampleRate }

// WavePhase returns the accumulated carrier phase in radians. Not safe to call
// while the synth is streaming on another goroutine.
func (s *Synth) WavePhase() float64 { return s.wave.total() }

// PulsePhase returns the accumulated LFO phase in radians.
func (s *Synth) PulsePhase() float64 { return s.pulse.total() }
