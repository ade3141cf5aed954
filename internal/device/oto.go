//go:build oto

// Package device opens the audio output backend selected at build time.
package device

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/faiface/beep"
	"go.uber.org/zap"

	"github.com/iburimskiy/chord-rings/internal/sink"
)

// Open creates an oto context sized for BufferCount blocks and plays src
// through it, one BufferFrames block per read.
func Open(src beep.Streamer, st sink.Settings, logger *zap.Logger) (sink.Sink, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   st.SampleRate,
		ChannelCount: st.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   st.QueueDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("create oto context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(sink.NewBlockReader(src, st.BufferFrames))
	player.Play()

	sink.LogOpened(logger, "oto", st)
	return sink.New("oto", player.Close, logger), nil
}
