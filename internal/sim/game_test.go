package sim

import (
	"math"
	"testing"
)

func TestGameUpdateMovesCar(t *testing.T) {
	g := NewGame(NewWorld())
	steps := 0
	for rep := 0; rep < 5; rep++ {
		steps += g.Update(0.1, Input{Accelerate: true})
	}
	if steps < 29 || steps > 30 {
		t.Fatalf("expected about 30 fixed steps in 0.5s, got=%d", steps)
	}
	if _, z := g.World.Car().Position(); z <= 0 {
		t.Fatalf("expected car to move forward, z=%f", z)
	}
	if g.State != StatePlaying || g.RunTime <= 0 {
		t.Fatalf("state=%v run time=%f", g.State, g.RunTime)
	}
}

func TestGameCapsFrameTime(t *testing.T) {
	g := NewGame(NewWorld())
	if n := g.Update(10, Input{}); n < 14 || n > 15 {
		t.Fatalf("expected frame capped at %v s, ran %d steps", MaxFrameTime, n)
	}
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if n := g.Update(dt, Input{}); n != 0 {
			t.Fatalf("dt=%v ran %d steps", dt, n)
		}
	}
}

func TestGameFinishAndRetry(t *testing.T) {
	g := NewGame(mustWorld(t, testLayout()))
	for i := 0; i < 600 && g.State == StatePlaying; i++ {
		g.Update(1.0/30, Input{Accelerate: true})
	}
	if g.State != StateFinished {
		t.Fatal("expected the run to finish at the portal")
	}
	best := g.BestTime
	if best <= 0 || best != g.RunTime {
		t.Fatalf("best=%f run=%f", best, g.RunTime)
	}

	g.Update(1, Input{Accelerate: true})
	if g.RunTime != best {
		t.Fatal("run clock kept running after finish")
	}

	g.Reset()
	if g.State != StatePlaying || g.RunTime != 0 || g.Attempts != 2 {
		t.Fatalf("after reset: state=%v run=%f attempts=%d", g.State, g.RunTime, g.Attempts)
	}
	if g.BestTime != best {
		t.Fatal("best time lost on reset")
	}

	// Resetting the world directly counts as a new attempt too.
	g.World.Reset()
	if g.Attempts != 3 {
		t.Fatalf("attempts=%d", g.Attempts)
	}
}
