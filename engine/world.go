package engine

import (
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/component"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeTerrain
	collisionTypeSnowman
	collisionTypeSpikes
	collisionTypePickup
)

// Gravity is in pixels per frame squared.
const Gravity = 0.4

const (
	PlayerWidth   = 28
	PlayerHeight  = 40
	SnowmanWidth  = 32
	SnowmanHeight = 40
	PickupSize    = 24
)

// World owns the chipmunk space a level is built into and reports player
// contacts to a single callback.
type World struct {
	space  *cp.Space
	logger *log.Logger

	nextID obstacle.BodyID
	bodies []*Body
	player *Body

	onContact func(entity.Contact)
	removals  []*Body

	width, height float64
}

func NewWorld(logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})

	w := &World{space: space, logger: logger}
	w.setupHandlers()
	return w
}

// SetBounds adds static walls around a w x h level.
func (w *World) SetBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		w.space.AddShape(shape)
	}
}

func (w *World) Bounds() (width, height float64) { return w.width, w.height }

func (w *World) AddTerrain(r prefabs.Rect) {
	b := w.addStatic(r, roleTerrain, collisionTypeTerrain, colornames.Lightsteelblue, false)
	b.shape.SetFriction(0.8)
}

func (w *World) AddPlayer(x, y float64) entity.Sprite {
	b := w.addDynamic(x, y, PlayerWidth, PlayerHeight, rolePlayer, collisionTypePlayer, colornames.Black)
	w.player = b
	return b
}

func (w *World) AddSnowman(x, y float64, id string) (entity.Sprite, obstacle.BodyID) {
	b := w.addDynamic(x, y, SnowmanWidth, SnowmanHeight, roleSnowman, collisionTypeSnowman, colornames.Whitesmoke)
	b.identity = id
	return b, b.id
}

func (w *World) AddSpikes(r prefabs.Rect) obstacle.BodyID {
	b := w.addStatic(r, roleSpikes, collisionTypeSpikes, colornames.Slategray, false)
	return b.id
}

func (w *World) AddPickup(x, y float64, kind string, healthPoints int) {
	c := colornames.Gold
	if kind == entity.KindHealth {
		c = colornames.Crimson
	}
	r := prefabs.Rect{X: x - PickupSize/2, Y: y - PickupSize/2, Width: PickupSize, Height: PickupSize}
	b := w.addStatic(r, rolePickup, collisionTypePickup, c, true)
	b.kind = kind
	b.healthPoints = healthPoints
}

func (w *World) OnPlayerContact(fn func(entity.Contact)) {
	w.onContact = fn
}

// Step advances the simulation one frame. Bodies destroyed during the step
// are removed once it finishes.
func (w *World) Step() {
	w.flushRemovals()
	w.space.Step(1.0)
	w.flushRemovals()

	for _, b := range w.bodies {
		b.anim.Update()
	}
}

func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Player() *Body { return w.player }

func (w *World) nextBodyID() obstacle.BodyID {
	w.nextID++
	return w.nextID
}

func (w *World) addStatic(r prefabs.Rect, role bodyRole, ct cp.CollisionType, c color.RGBA, sensor bool) *Body {
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetSensor(sensor)
	shape.SetCollisionType(ct)

	b := &Body{
		world:         w,
		id:            w.nextBodyID(),
		role:          role,
		body:          w.space.StaticBody,
		shape:         shape,
		static:        true,
		bb:            bb,
		width:         r.Width,
		height:        r.Height,
		displayHeight: r.Height,
		alpha:         1,
		tint:          color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		base:          c,
		anim:          component.NewAnimation(clips),
	}
	shape.UserData = b
	w.space.AddShape(shape)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) addDynamic(x, y, width, height float64, role bodyRole, ct cp.CollisionType, c color.RGBA) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(ct)

	b := &Body{
		world:         w,
		id:            w.nextBodyID(),
		role:          role,
		body:          body,
		shape:         shape,
		width:         width,
		height:        height,
		displayHeight: height,
		alpha:         1,
		tint:          color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		base:          c,
		anim:          component.NewAnimation(clips),
	}
	shape.UserData = b

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) queueRemoval(b *Body) {
	w.removals = append(w.removals, b)
}

func (w *World) flushRemovals() {
	if len(w.removals) == 0 {
		return
	}
	removals := w.removals
	w.removals = nil

	for _, b := range removals {
		w.space.RemoveShape(b.shape)
		if !b.static {
			w.space.RemoveBody(b.body)
		}
		w.bodies = slices.DeleteFunc(w.bodies, func(o *Body) bool { return o == b })
		if b == w.player {
			w.player = nil
		}
		w.logger.Printf("PhysicsWorld: removed body %d", b.id)
	}
}

func (w *World) setupHandlers() {
	for _, other := range []cp.CollisionType{
		collisionTypeTerrain,
		collisionTypeSnowman,
		collisionTypeSpikes,
		collisionTypePickup,
	} {
		handler := w.space.NewCollisionHandler(collisionTypePlayer, other)
		handler.UserData = w
		handler.BeginFunc = beginPlayerContact
	}
}

func beginPlayerContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	world, ok := userData.(*World)
	if !ok || world == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a, _ := shapeA.UserData.(*Body)
	b, _ := shapeB.UserData.(*Body)

	partner := b
	if b != nil && b.role == rolePlayer {
		partner = a
	}
	world.report(partner)
	return true
}

// report forwards a player contact with partner to the contact callback.
func (w *World) report(partner *Body) {
	if partner == nil || partner.destroyed || w.onContact == nil {
		return
	}
	w.onContact(partner.contact())
}
