package component

import "github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/common"

// Health is a reusable health value clamped to [0, Max].
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health with Current initialized to max.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether any health remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Set stores v clamped to [0, Max] and returns the stored value.
func (h *Health) Set(v int) int {
	if h == nil {
		return 0
	}
	h.Current = common.Clamp(v, 0, h.Max)
	return h.Current
}

// Fraction returns Current/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// SetMax changes the maximum and clamps Current if needed.
func (h *Health) SetMax(v int) {
	if h == nil {
		return
	}
	if v <= 0 {
		v = 1
	}
	h.Max = v
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
