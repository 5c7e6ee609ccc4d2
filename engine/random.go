package engine

import (
	"math/rand/v2"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
)

// Random draws uniform integers from math/rand/v2.
type Random struct {
	rng *rand.Rand
}

var _ entity.Random = (*Random)(nil)

// NewRandom seeds a PCG source; the same seed gives the same patrols.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a uniform integer in [min, max].
func (r *Random) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.IntN(max-min+1)
}
