package entity

import (
	"image/color"
	"log"

	"github.com/tanema/gween/ease"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/common"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/component"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/fsm"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
)

// Player state names.
const (
	PlayerIdle         = "idle"
	PlayerWalk         = "walk"
	PlayerJump         = "jump"
	PlayerSpikeHit     = "spike-hit"
	PlayerSnowmanHit   = "snowman-hit"
	PlayerSnowmanStomp = "snowman-stomp"
	PlayerDead         = "dead"
)

const (
	KindStar   = "star"
	KindHealth = "health"

	GameOverScene = "game-over"
)

var (
	tintNone = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	tintRed  = color.RGBA{R: 0xff, A: 0xff}
	tintBlue = color.RGBA{B: 0xff, A: 0xff}
)

// PlayerDeps wires a Player to its host.
type PlayerDeps struct {
	Sprite      Sprite
	Input       Input
	Scheduler   Scheduler
	Coordinator Coordinator
	Obstacles   Classifier
	Tuning      prefabs.PlayerTuning
	Logger      *log.Logger
}

// Player drives the penguin through its state machine and reacts to
// contacts reported by the host.
type Player struct {
	sprite    Sprite
	input     Input
	scheduler Scheduler
	coord     Coordinator
	obstacles Classifier
	tuning    prefabs.PlayerTuning

	machine *fsm.Machine
	health  *component.Health

	lastSnowmanID string
	lastSnowmanX  float64
	hasSnowman    bool

	// reacting gates collision dispatch: off until Activate, off again
	// once dying.
	reacting bool
	// dying is set when health reaches zero, before the queued dead state
	// runs. Health is frozen from then on.
	dying bool
}

// NewPlayer builds the player state machine in idle. Collisions are ignored
// until Activate.
func NewPlayer(d PlayerDeps) *Player {
	p := &Player{
		sprite:    d.Sprite,
		input:     d.Input,
		scheduler: d.Scheduler,
		coord:     d.Coordinator,
		obstacles: d.Obstacles,
		tuning:    d.Tuning,
		health:    component.NewHealth(maxHealth(d.Tuning)),
	}

	p.machine = fsm.New("player").WithLogger(d.Logger)
	p.machine.
		AddState(PlayerIdle, fsm.State{
			OnEnter:  p.idleOnEnter,
			OnUpdate: p.idleOnUpdate,
		}).
		AddState(PlayerWalk, fsm.State{
			OnEnter:  p.walkOnEnter,
			OnUpdate: p.walkOnUpdate,
			OnExit:   p.walkOnExit,
		}).
		AddState(PlayerJump, fsm.State{
			OnEnter:  p.jumpOnEnter,
			OnUpdate: p.jumpOnUpdate,
		}).
		AddState(PlayerSpikeHit, fsm.State{OnEnter: p.spikeHitOnEnter}).
		AddState(PlayerSnowmanHit, fsm.State{OnEnter: p.snowmanHitOnEnter}).
		AddState(PlayerSnowmanStomp, fsm.State{OnEnter: p.snowmanStompOnEnter}).
		AddState(PlayerDead, fsm.State{OnEnter: p.deadOnEnter, Terminal: true}).
		SetState(PlayerIdle)

	return p
}

// Activate turns on collision reactions. Call it once every obstacle has
// been registered.
func (p *Player) Activate() {
	if p.dying {
		return
	}
	p.reacting = true
}

func (p *Player) Update(dt float64) {
	p.machine.Update(dt)
}

func (p *Player) Machine() *fsm.Machine { return p.machine }

func (p *Player) Health() int { return p.health.Current }

func (p *Player) State() string { return p.machine.CurrentStateName() }

// SetTuning swaps gameplay constants, e.g. after a prefab reload.
func (p *Player) SetTuning(t prefabs.PlayerTuning) {
	p.tuning = t
	p.health.SetMax(maxHealth(t))
}

// maxHealth keeps the clamp bound inside [1, prefabs.HealthCeiling] even for
// tuning that skipped validation.
func maxHealth(t prefabs.PlayerTuning) int {
	return common.Clamp(t.MaxHealth, 1, prefabs.HealthCeiling)
}

// SetHealth is the only way health changes. It clamps, notifies the
// coordinator and kills the player at zero. Once death is decided further
// calls are ignored, even if dead has not been entered yet.
func (p *Player) SetHealth(value int) {
	if p.dying {
		return
	}
	v := p.health.Set(value)
	if p.coord != nil {
		p.coord.HealthChanged(v)
	}
	if v <= 0 {
		p.dying = true
		p.reacting = false
		p.machine.SetState(PlayerDead)
	}
}

func (p *Player) Heal(amount int) {
	p.SetHealth(p.health.Current + amount)
}

// HandleCollision reacts to a contact reported by the host physics.
func (p *Player) HandleCollision(c Contact) {
	if !p.reacting {
		return
	}

	if p.obstacles != nil {
		if p.obstacles.Classify(obstacle.Spikes, c.Body) {
			p.machine.SetState(PlayerSpikeHit)
			return
		}

		if p.obstacles.Classify(obstacle.Snowman, c.Body) {
			p.lastSnowmanID = c.Identity
			p.lastSnowmanX = c.X
			p.hasSnowman = true

			_, y := p.sprite.Position()
			if y < c.Y {
				p.machine.SetState(PlayerSnowmanStomp)
			} else {
				p.machine.SetState(PlayerSnowmanHit)
			}
			return
		}
	}

	if c.Terrain {
		if p.machine.IsCurrentState(PlayerJump) {
			p.machine.SetState(PlayerIdle)
		}
		return
	}

	switch c.Kind {
	case KindStar:
		if p.coord != nil {
			p.coord.StarCollected()
		}
		if c.Remove != nil {
			c.Remove()
		}
	case KindHealth:
		amount := c.HealthPoints
		if amount == 0 {
			amount = p.tuning.DefaultHeal
		}
		p.Heal(amount)
		if c.Remove != nil {
			c.Remove()
		}
	}
}

func (p *Player) idleOnEnter() {
	p.sprite.Play("player-idle")
}

func (p *Player) idleOnUpdate(dt float64) {
	if p.input.LeftDown() || p.input.RightDown() {
		p.machine.SetState(PlayerWalk)
	}

	if p.input.JumpJustPressed() {
		p.machine.SetState(PlayerJump)
	}
}

func (p *Player) walkOnEnter() {
	p.sprite.Play("player-walk")
}

func (p *Player) walkOnUpdate(dt float64) {
	if !p.steer() {
		p.sprite.SetVelocityX(0)
		p.machine.SetState(PlayerIdle)
	}

	if p.input.JumpJustPressed() {
		p.machine.SetState(PlayerJump)
	}
}

func (p *Player) walkOnExit() {
	p.sprite.Stop()
}

func (p *Player) jumpOnEnter() {
	p.sprite.SetVelocityY(-p.tuning.JumpImpulse)
}

func (p *Player) jumpOnUpdate(dt float64) {
	p.steer()
}

// steer applies horizontal input and reports whether any was held.
func (p *Player) steer() bool {
	switch {
	case p.input.LeftDown():
		p.sprite.SetFlipX(true)
		p.sprite.SetVelocityX(-p.tuning.WalkSpeed)
	case p.input.RightDown():
		p.sprite.SetFlipX(false)
		p.sprite.SetVelocityX(p.tuning.WalkSpeed)
	default:
		return false
	}
	return true
}

func (p *Player) spikeHitOnEnter() {
	p.sprite.SetVelocityY(-p.tuning.SpikeKnockback)
	p.flash(tintRed)

	p.machine.SetState(PlayerIdle)
	p.SetHealth(p.health.Current - p.tuning.SpikeDamage)
}

func (p *Player) snowmanHitOnEnter() {
	if p.hasSnowman {
		x, _ := p.sprite.Position()
		if x < p.lastSnowmanX {
			p.sprite.SetVelocityX(-p.tuning.SnowmanKnockback)
		} else {
			p.sprite.SetVelocityX(p.tuning.SnowmanKnockback)
		}
	} else {
		p.sprite.SetVelocityY(-p.tuning.SnowmanKnockback)
	}
	p.flash(tintBlue)

	p.machine.SetState(PlayerIdle)
	p.SetHealth(p.health.Current - p.tuning.SnowmanDamage)
}

func (p *Player) snowmanStompOnEnter() {
	p.sprite.SetVelocityY(-p.tuning.StompBounce)
	if p.coord != nil {
		p.coord.SnowmanStomped(p.lastSnowmanID)
	}
	p.machine.SetState(PlayerIdle)
}

func (p *Player) deadOnEnter() {
	p.reacting = false
	p.sprite.Play("player-death")
	p.scheduler.Delay(p.tuning.DeathDelay, func() {
		if p.coord != nil {
			p.coord.SwitchScene(GameOverScene)
		}
	})
}

// flash pulses the sprite tint from white to c and back.
func (p *Player) flash(c color.RGBA) {
	p.scheduler.Tween(Tween{
		From:     0,
		To:       100,
		Duration: p.tuning.FlashDuration,
		Repeat:   p.tuning.FlashRepeat,
		Yoyo:     true,
		Ease:     ease.InOutSine,
		OnUpdate: func(v float32) {
			p.sprite.SetTint(common.LerpColor(tintNone, c, v/100))
		},
	})
}
