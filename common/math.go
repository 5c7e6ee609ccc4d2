package common

import (
	"cmp"
	"image/color"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpColor blends from a to b; t is clamped to [0, 1].
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	t = Clamp(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(Lerp(float32(x), float32(y), t) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
