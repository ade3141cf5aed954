package game

import (
	"fmt"
	"image/color"
)

// formatStats renders the overlay line shown when stats are toggled on.
func formatStats(tps, rms float64, published uint64, c color.RGBA) string {
	return fmt.Sprintf("TPS %.1f  RMS %.3f  buffers %d  colour #%02x%02x%02x", tps, rms, published, c.R, c.G, c.B)
}
