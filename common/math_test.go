package common

import (
	"image/color"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		v    int
		want int
	}{
		{"below", -10, 0},
		{"inside", 42, 42},
		{"above", 150, 100},
		{"edge_low", 0, 0},
		{"edge_high", 100, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, 0, 100); got != c.want {
				t.Fatalf("Clamp(%d) = %d, want %d", c.v, got, c.want)
			}
		})
	}
}

func TestLerpColor(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red := color.RGBA{R: 0xff, A: 0xff}

	if got := LerpColor(white, red, 0); got != white {
		t.Fatalf("t=0 expected white, got %v", got)
	}
	if got := LerpColor(white, red, 1); got != red {
		t.Fatalf("t=1 expected red, got %v", got)
	}
	if got := LerpColor(white, red, 2); got != red {
		t.Fatalf("t>1 must clamp, got %v", got)
	}
	mid := LerpColor(white, red, 0.5)
	if mid.R != 0xff || mid.G != 0x80 || mid.B != 0x80 {
		t.Fatalf("unexpected midpoint %v", mid)
	}
}
