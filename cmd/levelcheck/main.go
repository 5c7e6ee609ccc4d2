// levelcheck builds a level headlessly and simulates it for a while with no
// input, reporting setup conflicts and where everything ended up.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/engine"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/scene"
)

func main() {
	levelName := flag.String("level", "", "level file in prefabs/ (default level.yaml)")
	frames := flag.Int("frames", 600, "frames to simulate")
	seed := flag.Uint64("seed", 1, "random seed")
	verbose := flag.Bool("v", false, "log engine output")
	flag.Parse()

	if err := run(os.Stdout, *levelName, *frames, *seed, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, levelName string, frames int, seed uint64, verbose bool) error {
	lvl, err := prefabs.LoadLevel(levelName)
	if err != nil {
		return err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("levelcheck: %v, using defaults", err)
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.Default()
	}

	world := engine.NewWorld(logger)
	world.SetBounds(lvl.Width, lvl.Height)
	scheduler := engine.NewScheduler()
	coord := scene.NewCoordinator(tuning)

	if err := coord.Build(lvl, scene.Host{
		World:     world,
		Input:     engine.NewInput(),
		Scheduler: scheduler,
		Random:    engine.NewRandom(seed),
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("levelcheck: %w", err)
	}

	const dt = 1000.0 / 60
	for range frames {
		coord.Update(dt)
		world.Step()
		scheduler.Update(dt)
	}

	fmt.Fprintf(out, "level %q: %d bodies, %d obstacles, %d snowmen\n",
		lvl.Name, len(world.Bodies()), coord.Obstacles().Len(), len(coord.Snowmen()))
	if p := world.Player(); p != nil {
		x, y := p.Position()
		fmt.Fprintf(out, "player: %s health=%d at (%.0f, %.0f)\n", coord.Player().State(), coord.Player().Health(), x, y)
	}
	for _, s := range coord.Snowmen() {
		fmt.Fprintf(out, "snowman %s: %s\n", s.ID(), s.State())
	}
	return nil
}
