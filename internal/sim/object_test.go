package sim

import (
	"math"
	"testing"
)

func TestPickupAppliesOnce(t *testing.T) {
	c := NewCar(DefaultTuning(), Pose{})
	p := NewPickup(SpeedBoost, 0, 0)

	if !p.OnCarOverlap(c) {
		t.Fatal("expected first overlap to collect the pickup")
	}
	if p.Active() {
		t.Fatal("expected pickup inactive after collection")
	}

	c.Advance(0.5, Input{})
	remaining, tuning := c.BoostRemaining(), c.Tuning()
	if p.OnCarOverlap(c) {
		t.Fatal("expected inactive pickup to ignore overlaps")
	}
	if c.BoostRemaining() != remaining || c.Tuning() != tuning {
		t.Fatal("inactive pickup re-applied its modifier")
	}

	p.Deactivate()
	if p.Active() {
		t.Fatal("Deactivate should be idempotent")
	}
}

func TestPickupKind(t *testing.T) {
	p := NewPickup(SizeChange, 1, 2)
	if k, ok := p.PickupKind(); !ok || k != SizeChange {
		t.Fatalf("PickupKind=(%v,%v)", k, ok)
	}
	o := NewObstacle(0, 0, 1, 1)
	if _, ok := o.PickupKind(); ok {
		t.Fatal("obstacle reported a pickup kind")
	}
	if p.Kind() != KindPickup || o.Kind() != KindObstacle {
		t.Fatal("unexpected object kinds")
	}
	b := p.Bounds()
	if cx, cz := b.Center(); cx != 1 || cz != 2 || b.MaxX-b.MinX != 2*PickupRadius {
		t.Fatalf("pickup bounds=%+v", b)
	}
}

func TestObstaclePushesCarOut(t *testing.T) {
	c := NewCar(DefaultTuning(), Pose{X: -1.5})
	c.SetSpeed(12)
	wall := NewObstacle(0, 0, 1, 10)

	if !wall.OnCarOverlap(c) {
		t.Fatal("expected obstacle to respond to a penetrating car")
	}
	if x, _ := c.Position(); x != -2 {
		t.Fatalf("expected car pushed to x=-2, got=%f", x)
	}
	if c.Speed() != 12 {
		t.Fatalf("car moving along the face lost speed, got=%f", c.Speed())
	}
	if _, _, depth := c.Bounds().Penetration(wall.Bounds()); depth != 0 {
		t.Fatalf("still penetrating by %f", depth)
	}

	// Resting against the face is not a hit.
	c.SetSpeed(3)
	if wall.OnCarOverlap(c) {
		t.Fatal("touching car should not be corrected")
	}
	if c.Speed() != 3 {
		t.Fatalf("touching car lost speed, got=%f", c.Speed())
	}
}

func TestObstacleKeepsSpeedAlongFace(t *testing.T) {
	cases := []struct {
		name    string
		x, z    float64
		heading float64
		want    float64
	}{
		{"head on x", -1.5, 0, math.Pi / 2, 0},
		{"head on z", 0, -11.5, 0, 0},
		{"diagonal x", -1.5, 0, math.Pi / 4, 12 * math.Cos(math.Pi/4)},
		{"parallel z", 0, -11.5, math.Pi / 2, 12},
	}
	for _, tc := range cases {
		c := NewCar(DefaultTuning(), Pose{X: tc.x, Z: tc.z, Heading: tc.heading})
		c.SetSpeed(12)
		wall := NewObstacle(0, 0, 1, 10)
		if !wall.OnCarOverlap(c) {
			t.Fatalf("%s: expected a correction", tc.name)
		}
		if math.Abs(c.Speed()-tc.want) > 1e-9 {
			t.Errorf("%s: speed=%f want=%f", tc.name, c.Speed(), tc.want)
		}
	}
}

func TestInactiveObstacleIsIgnored(t *testing.T) {
	c := NewCar(DefaultTuning(), Pose{})
	o := NewObstacle(0, 0, 5, 5).WithLabel("gate")
	o.Deactivate()
	if o.OnCarOverlap(c) {
		t.Fatal("inactive obstacle responded")
	}
	if o.Label() != "gate" {
		t.Fatalf("label=%q", o.Label())
	}
}
