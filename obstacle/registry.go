// Package obstacle classifies collision partners by (category, body) pairs
// registered while a scene is being set up.
package obstacle

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when a (category, body) pair is registered twice.
	ErrDuplicate = errors.New("obstacle: already registered")

	// ErrSealed is returned by Register after Seal.
	ErrSealed = errors.New("obstacle: registry is sealed")
)

// Category names a kind of obstacle.
type Category uint8

const (
	Spikes Category = iota + 1
	Snowman
)

func (c Category) String() string {
	switch c {
	case Spikes:
		return "spikes"
	case Snowman:
		return "snowman"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// BodyID identifies a physics body inside the host world.
type BodyID uint64

// Key is the composite lookup key. The same body may be registered under
// several categories.
type Key struct {
	Category Category
	Body     BodyID
}

// Registry is written during setup and read-only once sealed.
type Registry struct {
	entries map[Key]struct{}
	sealed  bool
}

// NewRegistry returns an empty registry open for registration.
func NewRegistry() *Registry {
	return &Registry{entries: map[Key]struct{}{}}
}

// Register adds (cat, body). Registering the same pair twice, or
// registering after Seal, is a setup error.
func (r *Registry) Register(cat Category, body BodyID) error {
	if r.sealed {
		return fmt.Errorf("%w: %s-%d", ErrSealed, cat, body)
	}
	key := Key{Category: cat, Body: body}
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %s-%d", ErrDuplicate, cat, body)
	}
	r.entries[key] = struct{}{}
	return nil
}

// MustRegister is Register for setup code that cannot continue on conflict.
func (r *Registry) MustRegister(cat Category, body BodyID) {
	if err := r.Register(cat, body); err != nil {
		panic(err)
	}
}

// Classify reports whether body was registered under cat.
func (r *Registry) Classify(cat Category, body BodyID) bool {
	if r == nil {
		return false
	}
	_, ok := r.entries[Key{Category: cat, Body: body}]
	return ok
}

// Seal ends the registration phase.
func (r *Registry) Seal() { r.sealed = true }

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

func (r *Registry) Len() int { return len(r.entries) }
