// Package entity binds state machines to the player and enemy actors.
// Controllers see the host engine only through the interfaces below.
package entity

import (
	"image/color"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
)

// Sprite is a physics-backed visual handle owned by the host.
type Sprite interface {
	SetVelocityX(v float64)
	SetVelocityY(v float64)
	Position() (x, y float64)
	SetY(y float64)
	SetFlipX(flip bool)
	Play(clip string)
	Stop()
	SetTint(c color.RGBA)
	DisplayHeight() float64
	SetDisplayHeight(h float64)
	SetAlpha(a float64)
	Destroy()
}

// Input is sampled once per frame by the host.
type Input interface {
	LeftDown() bool
	RightDown() bool
	// JumpJustPressed is true only on the frame the jump key went down.
	JumpJustPressed() bool
}

// Random returns a uniform integer in [min, max].
type Random interface {
	Between(min, max int) int
}

// Tween interpolates From..To over Duration. Repeat counts extra runs; with
// Yoyo each run goes there and back.
type Tween struct {
	From, To   float32
	Duration   time.Duration
	Repeat     int
	Yoyo       bool
	Ease       ease.TweenFunc
	OnUpdate   func(v float32)
	OnComplete func()
}

// Scheduler runs fire-and-forget timers and tweens on the host clock.
type Scheduler interface {
	Delay(d time.Duration, fn func())
	Tween(t Tween)
}

// Coordinator receives cross-entity events raised by controllers.
type Coordinator interface {
	HealthChanged(value int)
	StarCollected()
	SnowmanStomped(id string)
	SwitchScene(name string)
}

// Classifier answers whether a body belongs to an obstacle category.
type Classifier interface {
	Classify(cat obstacle.Category, body obstacle.BodyID) bool
}

// Contact describes the partner of a player collision.
type Contact struct {
	Body obstacle.BodyID
	X, Y float64

	// Terrain is set for static level geometry.
	Terrain bool
	// Identity is the enemy identity attached to the partner body, if any.
	Identity string
	// Kind is the partner's type tag ("star", "health").
	Kind         string
	HealthPoints int

	// Remove destroys the partner. May be nil.
	Remove func()
}
