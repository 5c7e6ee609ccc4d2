package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

var (
	debugOutline = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	debugSensor  = color.RGBA{R: 0, G: 200, B: 255, A: 200}
	facingMarker = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// Draw renders every live body as a filled rectangle offset by the camera.
// With debug set it also outlines the collision shapes.
func (w *World) Draw(screen *ebiten.Image, cam *Camera, debug bool) {
	var ox, oy float64
	if cam != nil {
		ox, oy = cam.ViewTopLeft()
	}

	for _, b := range w.bodies {
		x, y, bw, bh := b.Rect()
		if bw <= 0 || bh <= 0 {
			continue
		}
		vector.FillRect(screen, float32(x-ox), float32(y-oy), float32(bw), float32(bh), b.Color(), false)
		if !b.static {
			fx := x + bw - 3
			if b.flip {
				fx = x
			}
			vector.FillRect(screen, float32(fx-ox), float32(y-oy), 3, float32(bh), facingMarker, false)
		}

		if debug {
			bb := b.shape.BB()
			c := debugOutline
			if b.shape.Sensor() {
				c = debugSensor
			}
			drawBB(screen, bb, ox, oy, c)
		}
	}
}

func drawBB(screen *ebiten.Image, bb cp.BB, ox, oy float64, c color.RGBA) {
	vector.StrokeRect(screen, float32(bb.L-ox), float32(bb.B-oy), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, c, false)
}
