package engine

import (
	"testing"
	"time"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
)

func TestSchedulerDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Delay(100*time.Millisecond, func() { fired++ })

	s.Update(60)
	if fired != 0 {
		t.Fatalf("fired early")
	}
	s.Update(40)
	if fired != 1 {
		t.Fatalf("expected delay to fire at 100ms, fired=%d", fired)
	}
	s.Update(1000)
	if fired != 1 || s.Pending() != 0 {
		t.Fatalf("delay must fire once, fired=%d pending=%d", fired, s.Pending())
	}
}

func TestSchedulerDelayScheduledFromCallback(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Delay(10*time.Millisecond, func() {
		order = append(order, "first")
		s.Delay(0, func() { order = append(order, "second") })
	})

	s.Update(10)
	if len(order) != 1 {
		t.Fatalf("nested delay must wait for the next update, got %v", order)
	}
	s.Update(1)
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("expected nested delay to run, got %v", order)
	}
}

func TestSchedulerTween(t *testing.T) {
	s := NewScheduler()
	var values []float32
	done := false
	s.Tween(entity.Tween{
		From:       0,
		To:         10,
		Duration:   100 * time.Millisecond,
		OnUpdate:   func(v float32) { values = append(values, v) },
		OnComplete: func() { done = true },
	})

	s.Update(50)
	if done {
		t.Fatalf("completed early")
	}
	if got := values[len(values)-1]; got != 5 {
		t.Fatalf("expected linear midpoint 5, got %v", got)
	}

	s.Update(50)
	if !done {
		t.Fatalf("expected completion")
	}
	if got := values[len(values)-1]; got != 10 {
		t.Fatalf("expected final value 10, got %v", got)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending jobs, got %d", s.Pending())
	}
}

func TestSchedulerTweenYoyoRepeat(t *testing.T) {
	tests := []struct {
		name     string
		repeat   int
		yoyo     bool
		wantLegs int
		wantLast float32
	}{
		{name: "single", repeat: 0, yoyo: false, wantLegs: 1, wantLast: 1},
		{name: "yoyo", repeat: 0, yoyo: true, wantLegs: 2, wantLast: 0},
		{name: "yoyo twice repeated", repeat: 2, yoyo: true, wantLegs: 6, wantLast: 0},
		{name: "repeat without yoyo", repeat: 1, yoyo: false, wantLegs: 2, wantLast: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler()
			var last float32
			done := false
			s.Tween(entity.Tween{
				From:       0,
				To:         1,
				Duration:   100 * time.Millisecond,
				Repeat:     tt.repeat,
				Yoyo:       tt.yoyo,
				OnUpdate:   func(v float32) { last = v },
				OnComplete: func() { done = true },
			})

			for i := 0; i < tt.wantLegs-1; i++ {
				s.Update(100)
				if done {
					t.Fatalf("completed after %d legs, want %d", i+1, tt.wantLegs)
				}
			}
			s.Update(100)
			if !done {
				t.Fatalf("expected completion after %d legs", tt.wantLegs)
			}
			if last != tt.wantLast {
				t.Fatalf("expected final value %v, got %v", tt.wantLast, last)
			}
		})
	}
}

func TestSchedulerZeroDurationTween(t *testing.T) {
	s := NewScheduler()
	var got float32
	done := false
	s.Tween(entity.Tween{From: 3, To: 7, OnUpdate: func(v float32) { got = v }, OnComplete: func() { done = true }})

	if !done || got != 7 {
		t.Fatalf("expected immediate completion at 7, got done=%v value=%v", done, got)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected nothing pending")
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Delay(time.Millisecond, func() { fired = true })
	s.Tween(entity.Tween{To: 1, Duration: time.Millisecond, OnComplete: func() { fired = true }})

	s.Clear()
	s.Update(10)
	if fired || s.Pending() != 0 {
		t.Fatalf("cleared jobs ran: fired=%v pending=%d", fired, s.Pending())
	}
}
