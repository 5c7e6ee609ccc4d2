// Package scene wires the player, the snowmen and the obstacle registry for
// one level and routes events between them and the presentation layer.
package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
)

// Object layer names understood by Build.
const (
	ObjectPlayerSpawn = "penquin-spawn"
	ObjectSnowman     = "snowman"
	ObjectStar        = "star"
	ObjectHealth      = "health"
	ObjectSpikes      = "spikes"
)

var (
	ErrNoSpawn = errors.New("scene: level has no player spawn")
	ErrBuilt   = errors.New("scene: already built")
)

// Listener receives presentation-facing events.
type Listener interface {
	OnHealthChanged(value int)
	OnStarCollected()
	OnEnemyDefeated(id string)
	OnSceneSwitch(name string)
}

// World is the host physics world a level is built into.
type World interface {
	AddTerrain(r prefabs.Rect)
	AddPlayer(x, y float64) entity.Sprite
	// AddSnowman creates a dynamic body carrying id and returns its sprite
	// and body identity.
	AddSnowman(x, y float64, id string) (entity.Sprite, obstacle.BodyID)
	AddSpikes(r prefabs.Rect) obstacle.BodyID
	AddPickup(x, y float64, kind string, healthPoints int)
	// OnPlayerContact installs the player's collision callback.
	OnPlayerContact(fn func(entity.Contact))
}

// Host bundles the services Build needs.
type Host struct {
	World     World
	Input     entity.Input
	Scheduler entity.Scheduler
	Random    entity.Random
	Logger    *log.Logger
}

// Coordinator implements entity.Coordinator for a single level.
type Coordinator struct {
	tuning    prefabs.Tuning
	obstacles *obstacle.Registry
	player    *entity.Player
	snowmen   []*entity.Snowman
	listeners []Listener

	health int
	stars  int
	built  bool
}

var _ entity.Coordinator = (*Coordinator)(nil)

func NewCoordinator(tuning prefabs.Tuning) *Coordinator {
	return &Coordinator{
		tuning:    tuning,
		obstacles: obstacle.NewRegistry(),
		health:    tuning.Player.MaxHealth,
	}
}

func (c *Coordinator) AddListener(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// Build spawns every object of layout into host. All obstacles are
// registered first; only then is the registry sealed and the player's
// collision callback attached.
func (c *Coordinator) Build(layout prefabs.Level, host Host) error {
	if c.built {
		return ErrBuilt
	}

	logger := host.Logger
	if logger == nil {
		logger = log.Default()
	}

	for _, r := range layout.Ground {
		host.World.AddTerrain(r)
	}

	for _, obj := range layout.Objects {
		switch obj.Name {
		case ObjectPlayerSpawn:
			if c.player != nil {
				logger.Printf("Scene: ignoring extra player spawn at (%.0f, %.0f)", obj.X, obj.Y)
				continue
			}
			sprite := host.World.AddPlayer(obj.X+obj.Width*0.5, obj.Y)
			c.player = entity.NewPlayer(entity.PlayerDeps{
				Sprite:      sprite,
				Input:       host.Input,
				Scheduler:   host.Scheduler,
				Coordinator: c,
				Obstacles:   c.obstacles,
				Tuning:      c.tuning.Player,
				Logger:      host.Logger,
			})
			c.health = c.player.Health()
		case ObjectSnowman:
			id := uuid.NewString()
			sprite, body := host.World.AddSnowman(obj.X, obj.Y, id)
			if err := c.obstacles.Register(obstacle.Snowman, body); err != nil {
				return fmt.Errorf("scene: register snowman: %w", err)
			}
			c.snowmen = append(c.snowmen, entity.NewSnowman(entity.SnowmanDeps{
				Sprite:    sprite,
				Scheduler: host.Scheduler,
				Random:    host.Random,
				Tuning:    c.tuning.Snowman,
				Logger:    host.Logger,
				ID:        id,
			}))
		case ObjectStar:
			host.World.AddPickup(obj.X, obj.Y, entity.KindStar, 0)
		case ObjectHealth:
			host.World.AddPickup(obj.X, obj.Y, entity.KindHealth, obj.HealthPoints)
		case ObjectSpikes:
			body := host.World.AddSpikes(prefabs.Rect{X: obj.X, Y: obj.Y, Width: obj.Width, Height: obj.Height})
			if err := c.obstacles.Register(obstacle.Spikes, body); err != nil {
				return fmt.Errorf("scene: register spikes: %w", err)
			}
		default:
			logger.Printf("Scene: unknown object %q in level %q", obj.Name, layout.Name)
		}
	}

	if c.player == nil {
		return ErrNoSpawn
	}

	c.obstacles.Seal()
	host.World.OnPlayerContact(c.player.HandleCollision)
	c.player.Activate()
	c.built = true

	logger.Printf("Scene: built %q with %d snowmen and %d obstacles", layout.Name, len(c.snowmen), c.obstacles.Len())
	return nil
}

// Update ticks the player, then every snowman.
func (c *Coordinator) Update(dt float64) {
	if c.player != nil {
		c.player.Update(dt)
	}
	for _, s := range c.snowmen {
		s.Update(dt)
	}
}

// ApplyTuning pushes new gameplay constants to every live entity.
func (c *Coordinator) ApplyTuning(t prefabs.Tuning) {
	c.tuning = t
	if c.player != nil {
		c.player.SetTuning(t.Player)
	}
	for _, s := range c.snowmen {
		s.SetTuning(t.Snowman)
	}
}

func (c *Coordinator) HealthChanged(value int) {
	c.health = value
	for _, l := range c.listeners {
		l.OnHealthChanged(value)
	}
}

func (c *Coordinator) StarCollected() {
	c.stars++
	for _, l := range c.listeners {
		l.OnStarCollected()
	}
}

// SnowmanStomped forwards the stomp to the live snowman with that id.
// Unknown or already dead ids are ignored.
func (c *Coordinator) SnowmanStomped(id string) {
	for _, s := range c.snowmen {
		if s.ID() != id || s.IsDead() {
			continue
		}
		s.HandleStomped()
		for _, l := range c.listeners {
			l.OnEnemyDefeated(id)
		}
		return
	}
}

func (c *Coordinator) SwitchScene(name string) {
	for _, l := range c.listeners {
		l.OnSceneSwitch(name)
	}
}

func (c *Coordinator) Player() *entity.Player { return c.player }

func (c *Coordinator) Snowmen() []*entity.Snowman { return c.snowmen }

func (c *Coordinator) Obstacles() *obstacle.Registry { return c.obstacles }

func (c *Coordinator) Health() int { return c.health }

func (c *Coordinator) Stars() int { return c.stars }

// LiveSnowmen counts snowmen that have not been stomped.
func (c *Coordinator) LiveSnowmen() int {
	n := 0
	for _, s := range c.snowmen {
		if !s.IsDead() {
			n++
		}
	}
	return n
}
