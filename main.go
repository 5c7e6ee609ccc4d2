package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "", "level file in prefabs/ (default level.yaml)")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change")
	seed := flag.Uint64("seed", 0, "random seed for snowman patrols (0 picks one)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("game-with-tile-and-fsm")

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
