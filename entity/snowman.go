package entity

import (
	"log"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/fsm"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
)

// Snowman state names.
const (
	SnowmanIdle      = "idle"
	SnowmanMoveLeft  = "move-left"
	SnowmanMoveRight = "move-right"
	SnowmanDead      = "dead"
)

// SnowmanDeps wires a Snowman to its host.
type SnowmanDeps struct {
	Sprite    Sprite
	Scheduler Scheduler
	Random    Random
	Tuning    prefabs.SnowmanTuning
	Logger    *log.Logger
	// ID overrides the generated identity.
	ID string
}

// Snowman patrols left and right until something stomps on it.
type Snowman struct {
	id        string
	sprite    Sprite
	scheduler Scheduler
	random    Random
	tuning    prefabs.SnowmanTuning

	machine  *fsm.Machine
	moveTime float64
}

func NewSnowman(d SnowmanDeps) *Snowman {
	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}

	s := &Snowman{
		id:        id,
		sprite:    d.Sprite,
		scheduler: d.Scheduler,
		random:    d.Random,
		tuning:    d.Tuning,
	}

	s.machine = fsm.New("snowman-" + id).WithLogger(d.Logger)
	s.machine.
		AddState(SnowmanIdle, fsm.State{OnEnter: s.idleOnEnter}).
		AddState(SnowmanMoveLeft, fsm.State{
			OnEnter:  s.moveLeftOnEnter,
			OnUpdate: s.moveLeftOnUpdate,
		}).
		AddState(SnowmanMoveRight, fsm.State{
			OnEnter:  s.moveRightOnEnter,
			OnUpdate: s.moveRightOnUpdate,
		}).
		AddState(SnowmanDead, fsm.State{Terminal: true}).
		SetState(SnowmanIdle)

	return s
}

func (s *Snowman) ID() string { return s.id }

func (s *Snowman) Machine() *fsm.Machine { return s.machine }

func (s *Snowman) State() string { return s.machine.CurrentStateName() }

func (s *Snowman) IsDead() bool { return s.machine.IsCurrentState(SnowmanDead) }

func (s *Snowman) SetTuning(t prefabs.SnowmanTuning) { s.tuning = t }

func (s *Snowman) Update(dt float64) {
	s.machine.Update(dt)
}

// HandleStomped shrinks the sprite into the ground, destroys it and kills
// the snowman. Later stomps are ignored.
func (s *Snowman) HandleStomped() {
	if s.IsDead() {
		return
	}

	s.sprite.SetVelocityX(0)
	height := s.sprite.DisplayHeight()
	_, y := s.sprite.Position()

	s.scheduler.Tween(Tween{
		From:     0,
		To:       1,
		Duration: s.tuning.StompDuration,
		Ease:     ease.Linear,
		OnUpdate: func(v float32) {
			k := float64(v)
			s.sprite.SetDisplayHeight(height * (1 - k))
			s.sprite.SetY(y + height*0.5*k)
			s.sprite.SetAlpha(1 - k)
		},
		OnComplete: s.sprite.Destroy,
	})

	s.machine.SetState(SnowmanDead)
}

func (s *Snowman) idleOnEnter() {
	s.sprite.Play("snowman-idle")
	if s.random.Between(1, 100) < 50 {
		s.machine.SetState(SnowmanMoveLeft)
	} else {
		s.machine.SetState(SnowmanMoveRight)
	}
}

func (s *Snowman) moveLeftOnEnter() {
	s.moveTime = 0
	s.sprite.Play("snowman-move-left")
}

func (s *Snowman) moveLeftOnUpdate(dt float64) {
	s.patrol(dt, -s.tuning.PatrolSpeed, SnowmanMoveRight)
}

func (s *Snowman) moveRightOnEnter() {
	s.moveTime = 0
	s.sprite.Play("snowman-move-right")
}

func (s *Snowman) moveRightOnUpdate(dt float64) {
	s.patrol(dt, s.tuning.PatrolSpeed, SnowmanMoveLeft)
}

func (s *Snowman) patrol(dt, velocity float64, next string) {
	s.moveTime += dt
	s.sprite.SetVelocityX(velocity)

	if s.moveTime > float64(s.tuning.PatrolInterval.Milliseconds()) {
		s.machine.SetState(next)
	}
}
