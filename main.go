package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/chord-rings/internal/audio"
	"github.com/iburimskiy/chord-rings/internal/config"
	"github.com/iburimskiy/chord-rings/internal/device"
	"github.com/iburimskiy/chord-rings/internal/game"
	"github.com/iburimskiy/chord-rings/internal/sink"
)

// newLogger builds the production logger, or a no-op one if that fails so
// later calls stay safe.
func newLogger(build func(...zap.Option) (*zap.Logger, error)) *zap.Logger {
	logger, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

type dialogFunc func(text string, options ...zenity.Option) error

// reportStartupError shows err to the operator in a native dialog. A dialog
// that cannot be shown is logged, since the log is then the only report.
func reportStartupError(logger *zap.Logger, err error, show dialogFunc) {
	if derr := show(err.Error(), zenity.Title("Chord Rings"), zenity.ErrorIcon); derr != nil {
		logger.Error("show error dialog", zap.Error(derr))
	}
}

func main() {
	logger := newLogger(zap.NewProduction)
	defer logger.Sync()

	settings := sink.DefaultSettings()
	holder := audio.NewHolder()
	sampleRate := beep.SampleRate(settings.SampleRate)
	tap := audio.NewTap(audio.NewSynth(sampleRate), sampleRate, holder)

	out, err := device.Open(tap, settings, logger)
	if err != nil {
		err = fmt.Errorf("open audio device: %w", err)
		reportStartupError(logger, err, zenity.Error)
		logger.Fatal("audio setup failed", zap.Error(err))
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Error("close audio", zap.Error(err))
		}
	}()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	g := game.New(holder, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop exited", zap.Error(err))
	}
}
