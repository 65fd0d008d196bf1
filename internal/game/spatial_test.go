package game

import (
	"slices"
	"testing"

	"bilsim/internal/sim"
)

func TestQuadTreeMatchesLinearScan(t *testing.T) {
	w := sim.NewWorld()
	objs := w.Objects()
	root := BuildObjectIndex(objs)

	views := []RectF{
		{X0: -20, Y0: -20, X1: 20, Y1: 20},
		{X0: -130, Y0: -140, X1: -90, Y1: -70},
		{X0: -40, Y0: 80, X1: 60, Y1: 120},
		{X0: 150, Y0: 150, X1: 260, Y1: 260},
		{X0: -300, Y0: -300, X1: 300, Y1: 300},
	}
	for _, v := range views {
		var got []sim.Handle
		root.Query(v, &got)
		slices.Sort(got)

		var want []sim.Handle
		for i := range objs {
			if RectFromAABB(objs[i].Bounds()).Intersects(v) {
				want = append(want, sim.Handle(i))
			}
		}
		if !slices.Equal(got, want) {
			t.Errorf("view %+v: got=%v want=%v", v, got, want)
		}
	}
}

func TestQuadTreeSubdivides(t *testing.T) {
	var objs []sim.Object
	for i := 0; i < 64; i++ {
		x := float64(i%8)*10 - 35
		z := float64(i/8)*10 - 35
		objs = append(objs, sim.NewObstacle(x, z, 1, 1))
	}
	root := BuildObjectIndex(objs)
	if root.child[0] == nil {
		t.Fatal("expected the root to subdivide")
	}
	var got []sim.Handle
	root.Query(RectF{X0: -36, Y0: -36, X1: -34, Y1: -34}, &got)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected only handle 0, got=%v", got)
	}
}

func TestEmptyIndex(t *testing.T) {
	root := BuildObjectIndex(nil)
	var got []sim.Handle
	root.Query(RectF{X0: -1, Y0: -1, X1: 1, Y1: 1}, &got)
	if len(got) != 0 {
		t.Fatalf("got=%v", got)
	}
}
