package engine

import (
	"math"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/common"
)

// Camera follows a world point and keeps the view inside the level.
type Camera struct {
	PosX float64
	PosY float64

	screenW, screenH float64
	// smooth is the follow factor in (0, 1]; 1 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW, worldH float64
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
		screenW: float64(screenW),
		screenH: float64(screenH),
		smooth:  0.15,
	}
}

func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Update moves the camera toward the target. Call once per tick.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 || c.smooth >= 1 {
		c.PosX, c.PosY = targetX, targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.clampToWorld()
}

// SnapTo centers the camera without smoothing, e.g. after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.clampToWorld()
}

// ViewTopLeft returns the world-space top-left of the current view,
// snapped to whole pixels.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return math.Round(c.PosX - c.screenW/2), math.Round(c.PosY - c.screenH/2)
}

func (c *Camera) clampToWorld() {
	c.PosX = clampAxis(c.PosX, c.screenW/2, c.worldW)
	c.PosY = clampAxis(c.PosY, c.screenH/2, c.worldH)
}

func clampAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	if world-half < half {
		// world smaller than view: center on world
		return world / 2
	}
	return common.Clamp(pos, half, world-half)
}
