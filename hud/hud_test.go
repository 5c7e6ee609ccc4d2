package hud

import (
	"math"
	"testing"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
)

func TestHealthBarTweens(t *testing.T) {
	h := New(100)

	h.OnHealthChanged(90)
	if h.ShownHealth() != 100 {
		t.Fatalf("bar must not jump, shows %v", h.ShownHealth())
	}

	h.Update(100)
	mid := h.ShownHealth()
	if mid >= 100 || mid <= 90 {
		t.Fatalf("expected a value between 90 and 100 halfway, got %v", mid)
	}

	h.Update(100)
	if h.ShownHealth() != 90 {
		t.Fatalf("expected 90 after 200ms, got %v", h.ShownHealth())
	}
	if math.Abs(float64(h.BarFraction())-0.9) > 1e-6 {
		t.Fatalf("expected 90%% bar, got %v", h.BarFraction())
	}
}

func TestHealthBarRetargets(t *testing.T) {
	h := New(100)

	h.OnHealthChanged(50)
	h.Update(100)
	from := h.ShownHealth()

	h.OnHealthChanged(100)
	h.Update(1)
	if d := h.ShownHealth() - from; d < 0 || d > 1 {
		t.Fatalf("retarget must continue from the shown value %v, got %v", from, h.ShownHealth())
	}
	h.Update(500)
	if h.ShownHealth() != 100 {
		t.Fatalf("expected 100, got %v", h.ShownHealth())
	}
}

func TestBarFractionClamps(t *testing.T) {
	h := New(100)
	h.OnHealthChanged(-20)
	h.Update(1000)
	if h.BarFraction() != 0 {
		t.Fatalf("expected empty bar, got %v", h.BarFraction())
	}
}

func TestCounters(t *testing.T) {
	h := New(100)

	h.OnStarCollected()
	h.OnStarCollected()
	h.OnEnemyDefeated("a")

	if got := h.StarsLabel(); got != "Stars: 2" {
		t.Fatalf("unexpected stars label %q", got)
	}
	if got := h.EnemiesLabel(); got != "Snowmen: 1" {
		t.Fatalf("unexpected enemies label %q", got)
	}
}

func TestGameOverSwitch(t *testing.T) {
	h := New(100)

	h.OnSceneSwitch("menu")
	if h.GameOver() {
		t.Fatalf("only the game-over scene ends the game")
	}
	h.OnSceneSwitch(entity.GameOverScene)
	if !h.GameOver() {
		t.Fatalf("expected game over")
	}
}
