package game

import (
	"math"
	"strings"

	"bilsim/internal/sim"
)

// Scene turns world state into render buffers. It only reads the world.
type Scene struct {
	index   *QuadNode
	gates   map[sim.Handle]bool
	visible []sim.Handle
	flash   map[sim.Handle]float64 // gate handle -> remaining flash time

	World   Mesh
	Pickups Sprites
	Glow    Sprites
	Effects Sprites // alpha-blended particles, filled by the session
}

func NewScene(w *sim.World) *Scene {
	s := &Scene{flash: make(map[sim.Handle]float64)}
	s.Rebuild(w)
	return s
}

// Rebuild re-indexes the world's objects. Call it after every reset.
func (s *Scene) Rebuild(w *sim.World) {
	s.index = BuildObjectIndex(w.Objects())
	s.gates = make(map[sim.Handle]bool)
	for _, g := range w.Gates() {
		s.gates[g.Handle] = true
	}
	clear(s.flash)
}

// FlashGate highlights a gate that has just opened.
func (s *Scene) FlashGate(h sim.Handle) {
	s.flash[h] = GateFlashDuration
}

// Update ages the gate flashes.
func (s *Scene) Update(dt float64) {
	for h, t := range s.flash {
		t -= dt
		if t <= 0 {
			delete(s.flash, h)
			continue
		}
		s.flash[h] = t
	}
}

// Extent covers every object of the current layout.
func (s *Scene) Extent() RectF { return s.index.Bounds() }

// Visible returns the handles inside view after the last Build.
func (s *Scene) Visible() []sim.Handle { return s.visible }

// Build fills the world buffers for everything inside view. now drives the
// pickup spin and portal pulse.
func (s *Scene) Build(w *sim.World, view RectF, now float64) {
	s.World.Reset()
	s.Pickups.Reset()
	s.Glow.Reset()
	s.Effects.Reset()

	s.buildPortal(w, view, now)

	s.visible = s.visible[:0]
	s.index.Query(view, &s.visible)
	for _, h := range s.visible {
		o, ok := w.Object(h)
		if !ok {
			continue
		}
		switch o.Kind() {
		case sim.KindObstacle:
			s.buildObstacle(h, &o)
		case sim.KindPickup:
			if !o.Active() {
				continue
			}
			kind, _ := o.PickupKind()
			x, z := o.Bounds().Center()
			c := PickupColor(kind)
			s.Pickups.Add(x, z, PickupSpriteSize, c, 1, now*2+float64(h))
			s.Glow.Add(x, z, PickupSpriteSize*3, c.Mul(140), 1, 0)
		}
	}

	s.buildCar(w.Car())
}

func (s *Scene) buildObstacle(h sim.Handle, o *sim.Object) {
	r := RectFromAABB(o.Bounds())
	if s.gates[h] {
		if o.Active() {
			s.World.Rect(r, Palette.GateClosed, 1)
			return
		}
		alpha := float32(0.35)
		if t, ok := s.flash[h]; ok {
			alpha += float32(t / GateFlashDuration * 0.65)
		}
		s.World.Frame(r, 0.5, Palette.GateOpen, alpha)
		return
	}
	if strings.HasPrefix(o.Label(), "border") {
		s.World.Rect(r, Palette.Border, 1)
		return
	}
	s.World.Rect(r, Palette.Wall, 1)
}

func (s *Scene) buildPortal(w *sim.World, view RectF, now float64) {
	r := RectFromAABB(w.Portal())
	if !r.Intersects(view) {
		return
	}
	x, z := w.PortalCenter()
	if w.PortalTriggered() {
		s.World.Rect(r, Palette.PortalLit, 0.9)
		s.Glow.Add(x, z, PortalGlowSize*1.5, Palette.PortalLit.Mul(200), 1, 0)
		return
	}
	pulse := 0.5 + 0.5*math.Sin(now*3)
	s.World.Rect(r, Palette.Portal, float32(0.55+0.3*pulse))
	s.World.Frame(r, 0.6, Palette.PortalLit, 0.8)
	s.Glow.Add(x, z, PortalGlowSize*(0.85+0.15*pulse), Palette.Portal.Mul(160), 1, 0)
}

func (s *Scene) buildCar(c *sim.Car) {
	x, z := c.Position()
	h := c.Heading()
	base := c.BaseTuning()
	halfW := base.HalfWidth * c.VisualScale()
	halfL := base.HalfLength * c.VisualScale()
	s.World.Quad(x, z, halfW, halfL, h, Palette.Car, 1)

	// Nose marker so heading reads at any zoom.
	nx := x + math.Sin(h)*halfL*0.7
	nz := z + math.Cos(h)*halfL*0.7
	s.World.Quad(nx, nz, halfW*0.6, halfL*0.2, h, Palette.CarNose, 1)

	if c.BoostRemaining() > 0 {
		s.Glow.Add(x, z, halfL*4, Palette.Boost.Mul(110), 1, 0)
	}
}
