package engine

import "testing"

func TestRandomBetween(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "percent", min: 1, max: 100},
		{name: "single value", min: 7, max: 7},
		{name: "swapped bounds", min: 10, max: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRandom(42)
			lo, hi := tt.min, tt.max
			if hi < lo {
				lo, hi = hi, lo
			}
			for range 1000 {
				v := r.Between(tt.min, tt.max)
				if v < lo || v > hi {
					t.Fatalf("Between(%d, %d) = %d out of range", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := range 50 {
		if x, y := a.Between(1, 100), b.Between(1, 100); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
