package engine

import (
	"bytes"
	"log"
	"testing"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/prefabs"
)

func newTestWorld() *World {
	return NewWorld(log.New(&bytes.Buffer{}, "", 0))
}

func TestWorldPlayerLandsOnTerrain(t *testing.T) {
	w := newTestWorld()
	w.AddTerrain(prefabs.Rect{X: 0, Y: 100, Width: 400, Height: 40})
	w.AddPlayer(200, 20)

	var contacts []entity.Contact
	w.OnPlayerContact(func(c entity.Contact) { contacts = append(contacts, c) })

	for range 120 {
		w.Step()
		if len(contacts) > 0 {
			break
		}
	}

	if len(contacts) == 0 {
		t.Fatalf("expected the falling player to touch the ground")
	}
	if !contacts[0].Terrain {
		t.Fatalf("expected a terrain contact, got %+v", contacts[0])
	}
	_, y := w.Player().Position()
	if y > 100 {
		t.Fatalf("player fell through the ground, y=%v", y)
	}
}

func TestWorldPickupIsRemovedAfterStep(t *testing.T) {
	w := newTestWorld()
	w.AddPlayer(50, 50)
	w.AddPickup(50, 50, entity.KindHealth, 15)

	var got entity.Contact
	w.OnPlayerContact(func(c entity.Contact) {
		got = c
		if c.Remove != nil {
			c.Remove()
		}
	})

	w.Step()

	if got.Kind != entity.KindHealth || got.HealthPoints != 15 {
		t.Fatalf("expected health pickup contact, got %+v", got)
	}
	if len(w.Bodies()) != 1 {
		t.Fatalf("expected the pickup removed, %d bodies left", len(w.Bodies()))
	}

	got = entity.Contact{}
	w.Step()
	if got.Kind != "" {
		t.Fatalf("removed pickup reported again: %+v", got)
	}
}

func TestWorldReportCarriesIdentity(t *testing.T) {
	w := newTestWorld()
	w.AddPlayer(0, 0)
	sprite, id := w.AddSnowman(120, 80, "snowy")
	spikes := w.AddSpikes(prefabs.Rect{X: 10, Y: 20, Width: 30, Height: 10})

	var contacts []entity.Contact
	w.OnPlayerContact(func(c entity.Contact) { contacts = append(contacts, c) })

	snowman := sprite.(*Body)
	w.report(snowman)
	for _, b := range w.Bodies() {
		if b.ID() == spikes {
			w.report(b)
		}
	}

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if c := contacts[0]; c.Body != id || c.Identity != "snowy" || c.X != 120 || c.Y != 80 || c.Remove != nil {
		t.Fatalf("unexpected snowman contact %+v", c)
	}
	if c := contacts[1]; c.Body != spikes || c.X != 25 || c.Y != 25 || c.Terrain {
		t.Fatalf("unexpected spikes contact %+v", c)
	}
	if id == spikes {
		t.Fatalf("bodies must get distinct ids")
	}
}

func TestWorldDestroyedBodyIsSilent(t *testing.T) {
	w := newTestWorld()
	w.AddPlayer(0, 0)
	sprite, _ := w.AddSnowman(100, 0, "snowy")

	calls := 0
	w.OnPlayerContact(func(entity.Contact) { calls++ })

	sprite.Destroy()
	sprite.Destroy()
	w.report(sprite.(*Body))
	if calls != 0 {
		t.Fatalf("destroyed body reported a contact")
	}

	w.Step()
	if len(w.Bodies()) != 1 {
		t.Fatalf("expected only the player left, got %d bodies", len(w.Bodies()))
	}
}

func TestBodyVelocityAndPresentation(t *testing.T) {
	w := newTestWorld()
	b := w.AddPlayer(10, 10).(*Body)

	b.SetVelocityX(5)
	b.SetVelocityY(-12)
	if vx, vy := b.Velocity(); vx != 5 || vy != -12 {
		t.Fatalf("expected velocity (5, -12), got (%v, %v)", vx, vy)
	}
	b.SetVelocityX(-3)
	if vx, vy := b.Velocity(); vx != -3 || vy != -12 {
		t.Fatalf("setting x must keep y, got (%v, %v)", vx, vy)
	}

	b.Play("player-walk")
	b.Stop()
	if clip, playing := b.Clip(); clip != "player-walk" || playing {
		t.Fatalf("expected stopped walk clip, got %q playing=%v", clip, playing)
	}

	b.SetDisplayHeight(-4)
	if b.DisplayHeight() != 0 {
		t.Fatalf("display height must not go negative")
	}

	b.SetAlpha(0)
	if c := b.Color(); c.A != 0 {
		t.Fatalf("expected transparent color, got %v", c)
	}
}

func TestStaticBodySetY(t *testing.T) {
	w := newTestWorld()
	w.AddPickup(50, 50, entity.KindStar, 0)
	b := w.Bodies()[0]

	b.SetY(70)
	if x, y := b.Position(); x != 50 || y != 70 {
		t.Fatalf("expected (50, 70), got (%v, %v)", x, y)
	}
	b.SetVelocityX(10)
	if vx, vy := b.Velocity(); vx != 0 || vy != 0 {
		t.Fatalf("static bodies do not move, got (%v, %v)", vx, vy)
	}
}
