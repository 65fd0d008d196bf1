package game

import "bilsim/internal/sim"

// RectF is an axis-aligned rectangle on the ground plane. Y holds world Z.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func RectFromAABB(b sim.AABB) RectF {
	return RectF{X0: b.MinX, Y0: b.MinZ, X1: b.MaxX, Y1: b.MaxZ}
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Union grows r to cover o.
func (r RectF) Union(o RectF) RectF {
	return RectF{X0: min(r.X0, o.X0), Y0: min(r.Y0, o.Y0), X1: max(r.X1, o.X1), Y1: max(r.Y1, o.Y1)}
}

type quadItem struct {
	handle sim.Handle
	bounds RectF
}

// QuadNode is a simple quadtree for view culling of static world objects.
// Objects never move, so it is built once per layout.
type QuadNode struct {
	bounds RectF
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds RectF, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

// BuildObjectIndex indexes every object of the world by handle.
func BuildObjectIndex(objs []sim.Object) *QuadNode {
	if len(objs) == 0 {
		return NewQuadNode(RectF{}, 0)
	}
	all := RectFromAABB(objs[0].Bounds())
	for i := 1; i < len(objs); i++ {
		all = all.Union(RectFromAABB(objs[i].Bounds()))
	}
	root := NewQuadNode(all, 0)
	for i := range objs {
		root.Insert(sim.Handle(i), RectFromAABB(objs[i].Bounds()))
	}
	return root
}

func (n *QuadNode) Bounds() RectF { return n.bounds }

func (n *QuadNode) Insert(h sim.Handle, bounds RectF) {
	if n.child[0] != nil {
		if c := n.childThatContains(bounds); c != nil {
			c.Insert(h, bounds)
			return
		}
	}

	n.items = append(n.items, quadItem{handle: h, bounds: bounds})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.bounds); c != nil {
				c.Insert(it.handle, it.bounds)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

// Query appends the handles whose bounds overlap r. Edge contact does not count.
func (n *QuadNode) Query(r RectF, out *[]sim.Handle) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if it.bounds.Intersects(r) {
			*out = append(*out, it.handle)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		if n.child[i] != nil {
			n.child[i].Query(r, out)
		}
	}
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	mx := (n.bounds.X0 + n.bounds.X1) * 0.5
	my := (n.bounds.Y0 + n.bounds.Y1) * 0.5
	n.child[0] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: n.bounds.Y0, X1: mx, Y1: my}, n.depth+1)
	n.child[1] = NewQuadNode(RectF{X0: mx, Y0: n.bounds.Y0, X1: n.bounds.X1, Y1: my}, n.depth+1)
	n.child[2] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: my, X1: mx, Y1: n.bounds.Y1}, n.depth+1)
	n.child[3] = NewQuadNode(RectF{X0: mx, Y0: my, X1: n.bounds.X1, Y1: n.bounds.Y1}, n.depth+1)
}

func (n *QuadNode) childThatContains(b RectF) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.Contains(b) {
			return c
		}
	}
	return nil
}
