package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/chord-rings/internal/audio"
	"github.com/iburimskiy/chord-rings/internal/config"
	"github.com/iburimskiy/chord-rings/internal/scene"
)

// Game is the ebiten host for the scene. Update runs the per-tick scene
// update, Draw renders it. Input other than the quit and stats keys is ignored.
type Game struct {
	scene  *scene.Scene
	source *audio.Holder
	logger *zap.Logger

	showStats bool
}

func New(source *audio.Holder, logger *zap.Logger) *Game {
	return &Game{
		scene:  scene.New(config.WindowWidth, config.WindowHeight),
		source: source,
		logger: logger,
	}
}

func (g *Game) Update() error {
	return g.tick(inpututil.IsKeyJustPressed)
}

// tick handles one frame of input, reported by justPressed, then advances the
// scene unless a quit was requested.
func (g *Game) tick(justPressed func(ebiten.Key) bool) error {
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.logger.Info("quit requested", zap.Uint64("buffersPublished", g.source.Published()))
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyTab) {
		g.showStats = !g.showStats
	}

	g.scene.Update(g.source)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scene.Draw(canvas{dst: screen})

	if g.showStats {
		ebitenutil.DebugPrintAt(screen, formatStats(ebiten.ActualTPS(), g.scene.RMS(), g.source.Published(), g.scene.Colour()), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
