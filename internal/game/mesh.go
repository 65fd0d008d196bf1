package game

import "math"

// Mesh is a streamed triangle list, FloatsPerVertex floats per vertex.
type Mesh struct {
	verts []float32
}

func (m *Mesh) Reset() { m.verts = m.verts[:0] }

// Vertices returns the number of vertices, capped at MaxRectVerts.
func (m *Mesh) Vertices() int {
	return min(len(m.verts)/FloatsPerVertex, MaxRectVerts)
}

func (m *Mesh) Data() []float32 { return m.verts }

func (m *Mesh) vertex(x, z float64, r, g, b, a float32) {
	m.verts = append(m.verts, float32(x), float32(z), r, g, b, a)
}

// Rect adds an axis-aligned filled rectangle as two triangles.
func (m *Mesh) Rect(r RectF, c RGB, alpha float32) {
	cr, cg, cb, ca := c.F32(alpha)
	m.vertex(r.X0, r.Y0, cr, cg, cb, ca)
	m.vertex(r.X1, r.Y0, cr, cg, cb, ca)
	m.vertex(r.X1, r.Y1, cr, cg, cb, ca)
	m.vertex(r.X0, r.Y0, cr, cg, cb, ca)
	m.vertex(r.X1, r.Y1, cr, cg, cb, ca)
	m.vertex(r.X0, r.Y1, cr, cg, cb, ca)
}

// Frame adds a rectangle outline of the given thickness, drawn inside r.
func (m *Mesh) Frame(r RectF, thickness float64, c RGB, alpha float32) {
	t := min(thickness, (r.X1-r.X0)*0.5, (r.Y1-r.Y0)*0.5)
	m.Rect(RectF{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + t}, c, alpha)
	m.Rect(RectF{X0: r.X0, Y0: r.Y1 - t, X1: r.X1, Y1: r.Y1}, c, alpha)
	m.Rect(RectF{X0: r.X0, Y0: r.Y0 + t, X1: r.X0 + t, Y1: r.Y1 - t}, c, alpha)
	m.Rect(RectF{X0: r.X1 - t, Y0: r.Y0 + t, X1: r.X1, Y1: r.Y1 - t}, c, alpha)
}

// Quad adds a rectangle centred on (cx, cz) rotated by heading, using the
// car convention: heading 0 faces +Z, halfL runs along the heading.
func (m *Mesh) Quad(cx, cz, halfW, halfL, heading float64, c RGB, alpha float32) {
	fx, fz := math.Sin(heading), math.Cos(heading) // forward
	rx, rz := fz, -fx                              // right

	corner := func(sf, sr float64) (float64, float64) {
		return cx + fx*halfL*sf + rx*halfW*sr, cz + fz*halfL*sf + rz*halfW*sr
	}
	x0, z0 := corner(-1, -1)
	x1, z1 := corner(-1, 1)
	x2, z2 := corner(1, 1)
	x3, z3 := corner(1, -1)

	cr, cg, cb, ca := c.F32(alpha)
	m.vertex(x0, z0, cr, cg, cb, ca)
	m.vertex(x1, z1, cr, cg, cb, ca)
	m.vertex(x2, z2, cr, cg, cb, ca)
	m.vertex(x0, z0, cr, cg, cb, ca)
	m.vertex(x2, z2, cr, cg, cb, ca)
	m.vertex(x3, z3, cr, cg, cb, ca)
}

// Sprites is a point sprite buffer, FloatsPerSprite floats per sprite.
type Sprites struct {
	buf []float32
}

func (s *Sprites) Reset() { s.buf = s.buf[:0] }

func (s *Sprites) Count() int {
	return min(len(s.buf)/FloatsPerSprite, MaxSpriteRender)
}

func (s *Sprites) Data() []float32 { return s.buf }

func (s *Sprites) Add(x, z, size float64, c RGB, alpha float32, rotation float64) {
	r, g, b, a := c.F32(alpha)
	s.buf = append(s.buf, float32(x), float32(z), float32(size), r, g, b, a, float32(rotation))
}
