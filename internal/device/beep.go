//go:build !oto

// Package device opens the audio output backend selected at build time.
package device

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/chord-rings/internal/sink"
)

// Open initializes the beep speaker and starts playing src. The speaker pulls
// BufferFrames frames per callback. Its queue depth is fixed by beep, so
// BufferCount is only reported.
func Open(src beep.Streamer, st sink.Settings, logger *zap.Logger) (sink.Sink, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if err := speaker.Init(beep.SampleRate(st.SampleRate), st.BufferFrames); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	sink.LogOpened(logger, "beep", st)
	speaker.Play(src)
	return sink.New("beep", stopSpeaker, logger), nil
}

// stopSpeaker tears the speaker down. Clear and Close take the speaker lock
// themselves, so it must not be held here.
func stopSpeaker() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
