package engine

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/component"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
)

type bodyRole uint8

const (
	roleTerrain bodyRole = iota + 1
	rolePlayer
	roleSnowman
	roleSpikes
	rolePickup
)

// Body is a chipmunk shape plus the presentation state the controllers
// drive. Velocities are in pixels per frame; the space steps once per tick.
type Body struct {
	world *World
	id    obstacle.BodyID
	role  bodyRole

	body  *cp.Body
	shape *cp.Shape

	// static bodies are positioned by their bounding box.
	static bool
	bb     cp.BB

	width, height float64
	displayHeight float64
	alpha         float64
	tint          color.RGBA
	base          color.RGBA
	flip          bool
	anim          *component.Animation

	identity     string
	kind         string
	healthPoints int

	destroyed bool
}

var _ entity.Sprite = (*Body)(nil)

func (b *Body) ID() obstacle.BodyID { return b.id }

func (b *Body) SetVelocityX(v float64) {
	if b.static || b.destroyed {
		return
	}
	vel := b.body.Velocity()
	b.body.SetVelocity(v, vel.Y)
}

func (b *Body) SetVelocityY(v float64) {
	if b.static || b.destroyed {
		return
	}
	vel := b.body.Velocity()
	b.body.SetVelocity(vel.X, v)
}

func (b *Body) Velocity() (x, y float64) {
	if b.static {
		return 0, 0
	}
	v := b.body.Velocity()
	return v.X, v.Y
}

// Position returns the body center.
func (b *Body) Position() (x, y float64) {
	if b.static {
		return (b.bb.L + b.bb.R) / 2, (b.bb.B + b.bb.T) / 2
	}
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) SetY(y float64) {
	if b.static {
		_, cy := b.Position()
		dy := y - cy
		b.bb.B += dy
		b.bb.T += dy
		return
	}
	p := b.body.Position()
	b.body.SetPosition(cp.Vector{X: p.X, Y: y})
}

func (b *Body) SetFlipX(flip bool) { b.flip = flip }

func (b *Body) Play(clip string) { b.anim.Play(clip) }

func (b *Body) Stop() { b.anim.Stop() }

// Clip returns the current clip and whether it is still playing.
func (b *Body) Clip() (string, bool) { return b.anim.Name(), b.anim.Playing() }

func (b *Body) SetTint(c color.RGBA) { b.tint = c }

func (b *Body) DisplayHeight() float64 { return b.displayHeight }

func (b *Body) SetDisplayHeight(h float64) {
	if h < 0 {
		h = 0
	}
	b.displayHeight = h
}

func (b *Body) SetAlpha(a float64) { b.alpha = a }

// Destroy removes the body from the world after the current step.
func (b *Body) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.world.queueRemoval(b)
}

func (b *Body) Destroyed() bool { return b.destroyed }

// Color is the draw color: the role color multiplied by the tint and alpha.
func (b *Body) Color() color.RGBA {
	mul := func(x, y uint8) uint8 { return uint8(uint16(x) * uint16(y) / 0xff) }
	a := b.alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(mul(b.base.R, b.tint.R)) * a),
		G: uint8(float64(mul(b.base.G, b.tint.G)) * a),
		B: uint8(float64(mul(b.base.B, b.tint.B)) * a),
		A: uint8(float64(b.base.A) * a),
	}
}

// Rect returns the draw rectangle centered on the body.
func (b *Body) Rect() (x, y, w, h float64) {
	cx, cy := b.Position()
	w = b.width
	h = b.displayHeight
	return cx - w/2, cy - h/2 + bobOffset(b.anim.Frame()), w, h
}

func (b *Body) contact() entity.Contact {
	x, y := b.Position()
	c := entity.Contact{
		Body:         b.id,
		X:            x,
		Y:            y,
		Terrain:      b.role == roleTerrain,
		Identity:     b.identity,
		Kind:         b.kind,
		HealthPoints: b.healthPoints,
	}
	if b.role == rolePickup {
		c.Remove = b.Destroy
	}
	return c
}
