package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is the solid background substituted when an asset cannot be
// fetched or decoded.
var FallbackColor = color.NRGBA{R: 30, G: 41, B: 59, A: 255}

// ParseHex converts a "#RRGGBB" string to NRGBA, returning fallback on any
// malformed input.
func ParseHex(s string, fallback color.NRGBA) color.NRGBA {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return toNRGBA(c, 255)
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: alpha,
	}
}

func fromNRGBA(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func withAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
