package engine

import "github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/component"

// clips lists every animation the controllers play.
var clips = map[string]component.Clip{
	"player-idle":        {Frames: 1},
	"player-walk":        {Frames: 2, FPS: 8, Loop: true},
	"player-death":       {Frames: 4, FPS: 6},
	"snowman-idle":       {Frames: 1},
	"snowman-move-left":  {Frames: 2, FPS: 5, Loop: true},
	"snowman-move-right": {Frames: 2, FPS: 5, Loop: true},
}

// bobOffset lifts odd frames by a couple of pixels so looping clips read
// as movement without sprite sheets.
func bobOffset(frame int) float64 {
	if frame%2 == 1 {
		return -2
	}
	return 0
}
