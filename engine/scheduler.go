// Package engine adapts ebiten, chipmunk and gween to the host interfaces
// the entity controllers expect.
package engine

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
)

// Scheduler runs delays and tweens on the game clock. Times are in
// milliseconds, the same unit entity controllers receive as dt.
type Scheduler struct {
	delays []*delayJob
	tweens []*tweenJob
}

type delayJob struct {
	remaining float64
	fn        func()
}

type tweenJob struct {
	spec entity.Tween
	tw   *gween.Tween
	// legs is the number of one-way runs left, including the current one.
	legs    int
	forward bool
}

var _ entity.Scheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Delay(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.delays = append(s.delays, &delayJob{remaining: float64(d.Milliseconds()), fn: fn})
}

func (s *Scheduler) Tween(t entity.Tween) {
	if t.Ease == nil {
		t.Ease = ease.Linear
	}

	if t.Duration <= 0 {
		if t.OnUpdate != nil {
			t.OnUpdate(t.To)
		}
		if t.OnComplete != nil {
			t.OnComplete()
		}
		return
	}

	runs := t.Repeat + 1
	if runs < 1 {
		runs = 1
	}
	legs := runs
	if t.Yoyo {
		legs *= 2
	}

	s.tweens = append(s.tweens, &tweenJob{
		spec:    t,
		tw:      gween.New(t.From, t.To, float32(t.Duration.Milliseconds()), t.Ease),
		legs:    legs,
		forward: true,
	})
}

// Update advances every job by dt milliseconds. Jobs scheduled from inside
// a callback start on the next Update.
func (s *Scheduler) Update(dt float64) {
	delays := s.delays
	s.delays = nil
	var keptDelays []*delayJob
	for _, d := range delays {
		d.remaining -= dt
		if d.remaining <= 0 {
			d.fn()
			continue
		}
		keptDelays = append(keptDelays, d)
	}
	s.delays = append(keptDelays, s.delays...)

	tweens := s.tweens
	s.tweens = nil
	var keptTweens []*tweenJob
	for _, j := range tweens {
		if j.advance(dt) {
			keptTweens = append(keptTweens, j)
		}
	}
	s.tweens = append(keptTweens, s.tweens...)
}

// Pending returns the number of delays and tweens still running.
func (s *Scheduler) Pending() int {
	return len(s.delays) + len(s.tweens)
}

// Clear drops every job without running callbacks.
func (s *Scheduler) Clear() {
	s.delays = nil
	s.tweens = nil
}

// advance steps the tween and reports whether it is still running.
func (j *tweenJob) advance(dt float64) bool {
	v, done := j.tw.Update(float32(dt))
	if j.spec.OnUpdate != nil {
		j.spec.OnUpdate(v)
	}
	if !done {
		return true
	}

	j.legs--
	if j.legs <= 0 {
		if j.spec.OnComplete != nil {
			j.spec.OnComplete()
		}
		return false
	}

	if j.spec.Yoyo {
		j.forward = !j.forward
	}
	from, to := j.spec.From, j.spec.To
	if !j.forward {
		from, to = to, from
	}
	j.tw = gween.New(from, to, float32(j.spec.Duration.Milliseconds()), j.spec.Ease)
	return true
}
