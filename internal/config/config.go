package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Chord Rings - Tab: stats, Esc/Q: quit"

	// Host loop rate, ticks per second
	TicksPerSecond = 165

	// Audio stream
	Channels     = 2
	SampleRate   = 44100
	BufferFrames = 512
	BufferCount  = 4

	// Oscillator bank
	BaseFrequency  = 172.5
	PulseFrequency = 0.5
	Headroom       = 0.3

	// Circle ring
	MaxCircles     = 40
	ColourShift    = 3
	BaseRadius     = 50
	RadiusPerLevel = 800
	MinStroke      = 1
	StrokePerRange = 100

	// Waveform
	WaveformStroke = 2
	WaveformAlpha  = 200
)
