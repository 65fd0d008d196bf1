package game

import (
	"testing"

	"bilsim/internal/sim"
)

func TestSceneCullsAndTracksPickups(t *testing.T) {
	w := sim.NewWorld()
	s := NewScene(w)

	// Around the village pickups: two pickups, no border walls.
	view := RectF{X0: -110, Y0: -110, X1: -90, Y1: -70}
	s.Build(w, view, 0)
	if got := s.Pickups.Count(); got != 2 {
		t.Fatalf("expected 2 pickup sprites, got=%d", got)
	}
	if s.World.Vertices() != 12 {
		// Car body plus nose quad.
		t.Fatalf("expected only the car quads, got=%d vertices", s.World.Vertices())
	}

	w.Car().SetPosition(-100, -100)
	w.Advance(0.1, sim.Input{})
	s.Build(w, view, 0)
	if got := s.Pickups.Count(); got != 1 {
		t.Fatalf("collected pickup still drawn, sprites=%d", got)
	}
}

func TestSceneGateFlash(t *testing.T) {
	w := sim.NewWorld()
	s := NewScene(w)
	var opened sim.Handle = -1
	w.Subscribe(sim.EventGateOpened, func(e sim.Event) {
		opened = e.Handle
		s.FlashGate(e.Handle)
	})

	w.Car().SetPosition(-100, -100)
	w.Advance(0.1, sim.Input{})
	w.Car().SetPosition(-100, -80)
	w.Advance(0.1, sim.Input{})
	if opened < 0 {
		t.Fatal("expected the village gate to open")
	}
	if _, ok := s.flash[opened]; !ok {
		t.Fatal("expected a flash on the opened gate")
	}
	s.Update(GateFlashDuration + 0.01)
	if len(s.flash) != 0 {
		t.Fatal("flash did not expire")
	}

	w.Reset()
	s.Rebuild(w)
	if !s.gates[opened] {
		t.Fatal("gate handle lost after rebuild")
	}
}

func TestHUDFinishBanner(t *testing.T) {
	l := sim.DefaultLayout()
	l.Portal = sim.PortalSpec{X: 0, Z: 0, HalfWidth: 5, HalfLength: 5}
	w, err := sim.NewWorldFromLayout(l)
	if err != nil {
		t.Fatal(err)
	}
	g := sim.NewGame(w)

	var m Mesh
	BuildHUD(&m, g, 800, 600, 0)
	playing := m.Vertices()
	// Six pickup pips (fill + frame) and three gate lamps.
	if want := 6*(6+24) + 3*6; playing != want {
		t.Fatalf("hud vertices=%d want=%d", playing, want)
	}

	g.Update(1.0/30, sim.Input{})
	if g.State != sim.StateFinished {
		t.Fatal("expected the run to finish on the portal")
	}
	BuildHUD(&m, g, 800, 600, 0)
	if m.Vertices() <= playing {
		t.Fatal("expected a finish banner")
	}
}
