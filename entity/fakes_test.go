package entity

import (
	"image/color"
	"testing"
	"time"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/obstacle"
)

type fakeSprite struct {
	x, y      float64
	vx, vy    float64
	flip      bool
	clips     []string
	stopped   int
	tint      color.RGBA
	height    float64
	alpha     float64
	destroyed bool
}

func newFakeSprite(x, y float64) *fakeSprite {
	return &fakeSprite{x: x, y: y, height: 32, alpha: 1}
}

func (s *fakeSprite) SetVelocityX(v float64)       { s.vx = v }
func (s *fakeSprite) SetVelocityY(v float64)       { s.vy = v }
func (s *fakeSprite) Position() (float64, float64) { return s.x, s.y }
func (s *fakeSprite) SetY(y float64)               { s.y = y }
func (s *fakeSprite) SetFlipX(flip bool)           { s.flip = flip }
func (s *fakeSprite) Play(clip string)             { s.clips = append(s.clips, clip) }
func (s *fakeSprite) Stop()                        { s.stopped++ }
func (s *fakeSprite) SetTint(c color.RGBA)         { s.tint = c }
func (s *fakeSprite) DisplayHeight() float64       { return s.height }
func (s *fakeSprite) SetDisplayHeight(h float64)   { s.height = h }
func (s *fakeSprite) SetAlpha(a float64)           { s.alpha = a }
func (s *fakeSprite) Destroy()                     { s.destroyed = true }

func (s *fakeSprite) lastClip() string {
	if len(s.clips) == 0 {
		return ""
	}
	return s.clips[len(s.clips)-1]
}

type fakeInput struct {
	left, right, jump bool
}

func (i *fakeInput) LeftDown() bool        { return i.left }
func (i *fakeInput) RightDown() bool       { return i.right }
func (i *fakeInput) JumpJustPressed() bool { return i.jump }

type fixedRandom int

func (r fixedRandom) Between(min, max int) int { return int(r) }

type delayed struct {
	d  time.Duration
	fn func()
}

// fakeScheduler records work instead of running it; flush runs it all.
type fakeScheduler struct {
	delays []delayed
	tweens []Tween
}

func (s *fakeScheduler) Delay(d time.Duration, fn func()) {
	s.delays = append(s.delays, delayed{d: d, fn: fn})
}

func (s *fakeScheduler) Tween(t Tween) {
	s.tweens = append(s.tweens, t)
}

func (s *fakeScheduler) flush() {
	for _, t := range s.tweens {
		if t.OnUpdate != nil {
			t.OnUpdate(t.To)
		}
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
	for _, d := range s.delays {
		d.fn()
	}
	s.tweens = nil
	s.delays = nil
}

type fakeCoordinator struct {
	health  []int
	stars   int
	stomped []string
	scenes  []string
}

func (c *fakeCoordinator) HealthChanged(v int)      { c.health = append(c.health, v) }
func (c *fakeCoordinator) StarCollected()           { c.stars++ }
func (c *fakeCoordinator) SnowmanStomped(id string) { c.stomped = append(c.stomped, id) }
func (c *fakeCoordinator) SwitchScene(name string)  { c.scenes = append(c.scenes, name) }

func newSealedRegistry(t testing.TB, keys ...obstacle.Key) *obstacle.Registry {
	r := obstacle.NewRegistry()
	for _, k := range keys {
		if err := r.Register(k.Category, k.Body); err != nil {
			t.Fatalf("register %v: %v", k, err)
		}
	}
	r.Seal()
	return r
}
