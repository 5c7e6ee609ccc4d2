package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/engine"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/hud"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/scene"
)

const (
	screenWidth  = 600
	screenHeight = 600
)

type Options struct {
	Level string
	Debug bool
	Watch bool
	Seed  uint64
}

type Game struct {
	opts    Options
	tuning  prefabs.Tuning
	input   *engine.Input
	random  *engine.Random
	watcher *prefabs.Watcher

	// per-run state, rebuilt by start
	world     *engine.World
	scheduler *engine.Scheduler
	coord     *scene.Coordinator
	hud       *hud.HUD
	camera    *engine.Camera
	restart   bool
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("Game: %v, using defaults", err)
	}

	g := &Game{
		opts:   opts,
		tuning: tuning,
		input:  engine.NewInput(),
		random: engine.NewRandom(opts.Seed),
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.start(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

// start builds a fresh run of the level.
func (g *Game) start() error {
	lvl, err := prefabs.LoadLevel(g.opts.Level)
	if err != nil {
		return err
	}

	world := engine.NewWorld(log.Default())
	world.SetBounds(lvl.Width, lvl.Height)
	scheduler := engine.NewScheduler()

	coord := scene.NewCoordinator(g.tuning)
	h := hud.New(g.tuning.Player.MaxHealth)
	h.OnRestart = func() { g.restart = true }
	coord.AddListener(h)
	coord.AddListener(eventLog{})

	if err := coord.Build(lvl, scene.Host{
		World:     world,
		Input:     g.input,
		Scheduler: scheduler,
		Random:    g.random,
		Logger:    log.Default(),
	}); err != nil {
		return fmt.Errorf("build level %q: %w", lvl.Name, err)
	}

	camera := engine.NewCamera(screenWidth, screenHeight)
	camera.SetWorldBounds(lvl.Width, lvl.Height)
	if p := world.Player(); p != nil {
		camera.SnapTo(p.Position())
	}

	g.world = world
	g.scheduler = scheduler
	g.coord = coord
	g.hud = h
	g.camera = camera
	g.restart = false
	return nil
}

func (g *Game) Update() error {
	g.pollPrefabs()

	if g.restart {
		if err := g.start(); err != nil {
			log.Printf("Game: restart failed: %v", err)
			g.restart = false
		}
	}

	dt := 1000 / float64(ebiten.TPS())
	g.input.Update()

	if g.hud.GameOver() {
		if g.input.ConfirmPressed {
			g.restart = true
		}
		g.hud.Update(dt)
		return nil
	}

	g.coord.Update(dt)
	g.world.Step()
	g.scheduler.Update(dt)

	if p := g.world.Player(); p != nil {
		g.camera.Update(p.Position())
	}
	g.hud.Update(dt)
	return nil
}

// pollPrefabs applies prefab edits picked up by the watcher.
func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}

	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		switch {
		case name == prefabs.TuningFile:
			tuning, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("Game: reload %s: %v", name, err)
				continue
			}
			g.tuning = tuning
			g.coord.ApplyTuning(tuning)
			log.Printf("Game: reloaded %s", name)
		case name == g.levelFile():
			log.Printf("Game: %s changed, restarting", name)
			g.restart = true
		}
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Game: prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) levelFile() string {
	if g.opts.Level == "" {
		return prefabs.LevelFile
	}
	return g.opts.Level
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	g.world.Draw(screen, g.camera, g.opts.Debug)
	g.hud.Draw(screen)

	if g.opts.Debug {
		msg := fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS())
		if p := g.coord.Player(); p != nil {
			msg += fmt.Sprintf("\nplayer: %s (%d)", p.State(), p.Health())
		}
		msg += fmt.Sprintf("\nsnowmen: %d alive", g.coord.LiveSnowmen())
		ebitenutil.DebugPrintAt(screen, msg, 10, screenHeight-60)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

// eventLog writes gameplay events to the standard logger.
type eventLog struct{}

func (eventLog) OnHealthChanged(value int) { log.Printf("Game: health %d", value) }
func (eventLog) OnStarCollected()          { log.Printf("Game: star collected") }
func (eventLog) OnEnemyDefeated(id string) { log.Printf("Game: snowman %s defeated", id) }
func (eventLog) OnSceneSwitch(name string) { log.Printf("Game: switching to %s", name) }
