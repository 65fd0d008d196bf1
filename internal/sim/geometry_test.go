package sim

import "testing"

func TestIntersectsIsInclusive(t *testing.T) {
	a := BoxAt(0, 0, 1, 1)
	cases := []struct {
		name string
		b    AABB
		want bool
	}{
		{"same", BoxAt(0, 0, 1, 1), true},
		{"inside", BoxAt(0.2, -0.2, 0.1, 0.1), true},
		{"touching x edge", BoxAt(2, 0, 1, 1), true},
		{"touching corner", BoxAt(2, 2, 1, 1), true},
		{"apart on x", BoxAt(2.01, 0, 1, 1), false},
		{"apart on z", BoxAt(0, -3, 1, 1), false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects=%v want=%v", tc.name, got, tc.want)
		}
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s: reversed Intersects=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestPenetrationPicksShallowAxis(t *testing.T) {
	wall := BoxAt(0, 0, 1, 10)
	cases := []struct {
		name       string
		b          AABB
		dx, dz, dp float64
	}{
		{"from the left", BoxAt(-1.5, 0, 1, 2), -0.5, 0, 0.5},
		{"from the right", BoxAt(1.25, 0, 1, 2), 0.75, 0, 0.75},
		{"from below", BoxAt(0, -11.5, 1, 2), 0, -0.5, 0.5},
		{"touching", BoxAt(2, 0, 1, 2), 0, 0, 0},
		{"apart", BoxAt(5, 0, 1, 2), 0, 0, 0},
	}
	for _, tc := range cases {
		dx, dz, depth := tc.b.Penetration(wall)
		if dx != tc.dx || dz != tc.dz || depth != tc.dp {
			t.Errorf("%s: got=(%v,%v,%v) want=(%v,%v,%v)", tc.name, dx, dz, depth, tc.dx, tc.dz, tc.dp)
		}
		if depth > 0 && tc.b.Translate(dx, dz).Intersects(wall) {
			if _, _, d := tc.b.Translate(dx, dz).Penetration(wall); d != 0 {
				t.Errorf("%s: still penetrating by %v after push", tc.name, d)
			}
		}
	}
}

func TestPenetrationTieResolvesOnX(t *testing.T) {
	dx, dz, depth := BoxAt(1, 1, 1, 1).Penetration(BoxAt(0, 0, 1, 1))
	if dz != 0 || dx != 1 || depth != 1 {
		t.Fatalf("expected push along +x, got=(%v,%v,%v)", dx, dz, depth)
	}
}
