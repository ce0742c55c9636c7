package pixeladapter

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB adapts a linear, potentially out-of-[0,1]-gamut device RGB triple
// (as produced by [luz.Engine.CoatsToRGB]/[luz.Engine.SpectrumToRGB])
// to image/color.Color, following hdrcolor.RGB's shape: a clamped
// 16-bit-per-channel RGBA() for standard library interop, plus a float64 accessor that
// does not lose precision or clip out-of-gamut values.
type RGB struct {
	R, G, B float32
}

// RGBA implements image/color.Color, clamping to [0,1] before scaling
// to 16-bit channels. Values outside the display gamut are clipped;
// callers wanting the unclipped values should use HDRRGBA.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R) * 0xFFFF)
	g = uint32(clamp01(c.G) * 0xFFFF)
	b = uint32(clamp01(c.B) * 0xFFFF)
	a = 0xFFFF
	return
}

// HDRRGBA returns the red, green and blue channels unclipped, at
// float64 precision.
func (c RGB) HDRRGBA() (r, g, b, a float64) {
	return float64(c.R), float64(c.G), float64(c.B), 1.0
}

// Colorful converts c to a github.com/lucasb-eyer/go-colorful Color for
// callers who want to chain into that library's distance/blend/gamut
// operations.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ color.Color = RGB{}
