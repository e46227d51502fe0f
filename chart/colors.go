package chart

import (
	"image/color"
	"math"
)

// darkenStep is how much Darken takes off each colour channel.
const darkenStep = 0.2 * 255

// LerpColor interpolates every channel, alpha included, from a to b. f is
// clamped to [0, 1].
func LerpColor(a, b color.RGBA, f float64) color.RGBA {
	f = min(max(f, 0), 1)
	if math.IsNaN(f) {
		f = 0
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// Darken returns c with every colour channel reduced by a fifth of its range,
// floored at zero. Alpha is kept.
func Darken(c color.RGBA) color.RGBA {
	sub := func(v uint8) uint8 {
		return uint8(max(float64(v)-darkenStep, 0))
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
