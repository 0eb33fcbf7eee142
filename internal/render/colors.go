package render

import (
	"image/color"

	"github.com/cvltovbiboran/falling/internal/game"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Fixed UI colours.
var (
	ColorClear     = color.NRGBA{}
	ColorBlack     = color.NRGBA{0, 0, 0, 255}
	ColorWhite     = color.NRGBA{255, 255, 255, 255}
	ColorLightGray = color.NRGBA{170, 170, 170, 255}
	ColorDarkGray  = color.NRGBA{85, 85, 85, 255}
	ColorRed       = color.NRGBA{170, 0, 0, 255}
	ColorLightRed  = color.NRGBA{255, 85, 85, 255}
	ColorYellow    = color.NRGBA{255, 255, 85, 255}
	ColorMagenta   = color.NRGBA{255, 85, 255, 255}
	ColorCyan      = color.NRGBA{85, 255, 255, 255}
	ColorGreen     = color.NRGBA{85, 255, 85, 255}
	ColorShade     = color.NRGBA{0, 0, 0, 160} // panel backing
)

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGB converts a level colour to an opaque screen colour.
func RGB(c world.RGB) color.NRGBA {
	return color.NRGBA{unit(c.R), unit(c.G), unit(c.B), 255}
}

// RGBA converts a translucent level colour.
func RGBA(c world.RGBA) color.NRGBA {
	return color.NRGBA{unit(c.R), unit(c.G), unit(c.B), unit(c.A)}
}

// Contrast picks black or white text for a background.
func Contrast(bg world.RGB) color.NRGBA {
	if 0.299*bg.R+0.587*bg.G+0.114*bg.B > 0.5 {
		return ColorBlack
	}
	return ColorWhite
}

// toneColor maps a HUD message tone to its colour.
func toneColor(t game.MsgTone) color.NRGBA {
	switch t {
	case game.MsgPickup:
		return ColorGreen
	case game.MsgWarning:
		return ColorLightRed
	case game.MsgCycle:
		return ColorMagenta
	default:
		return ColorWhite
	}
}

// fade scales a colour's alpha by f in [0, 1].
func fade(c color.NRGBA, f float64) color.NRGBA {
	c.A = unit(float64(c.A) / 255 * f)
	return c
}
