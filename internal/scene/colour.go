package scene

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/chord-rings/internal/config"
)

// StartColour is the colour of the first circle before any step is taken.
var StartColour = color.RGBA{R: 255, A: 255}

// NextColour advances c one step around the R→G→B→R hue walk. The first
// channel that is either saturated or shares a nonzero value with its
// successor hands ColourShift over to that successor. Channels are plain
// bytes, so a step can wrap past 0 or 255; starting from a saturated primary
// it never does.
func NextColour(c color.RGBA) color.RGBA {
	channels := [3]*uint8{&c.R, &c.G, &c.B}
	for i := range channels {
		curr, next := channels[i], channels[(i+1)%len(channels)]
		if (*curr != 0 && *next != 0) || *curr == 255 {
			*curr -= config.ColourShift
			*next += config.ColourShift
			break
		}
	}
	return c
}

// complement returns the opposite hue of c at the same saturation and value.
func complement(c color.RGBA, alpha uint8) color.NRGBA {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	h, s, v := cf.Hsv()
	r, g, b := colorful.Hsv(math.Mod(h+180, 360), s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
