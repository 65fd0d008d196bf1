package sim

import (
	"math"
	"slices"
)

type gate struct {
	name   string
	handle Handle
	rule   Rule
}

// GateState is a snapshot of one gate for queries and rendering.
type GateState struct {
	Name   string
	Handle Handle
	Rule   Rule
	Open   bool
}

// World owns the car, every interactable object, the gates and the portal.
// It is advanced by a single goroutine; queries never fail.
type World struct {
	layout Layout
	car    *Car

	objects []Object
	pickups []Handle // pickup id -> object handle
	gates   []gate
	portal  AABB

	triggered bool
	tick      uint64

	bus *EventBus
}

// NewWorld builds the default map.
func NewWorld() *World {
	return newWorld(DefaultLayout())
}

func NewWorldFromLayout(l Layout) (*World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return newWorld(l), nil
}

func newWorld(l Layout) *World {
	w := &World{
		layout: l,
		car:    NewCar(l.Car, l.Start),
		bus:    NewEventBus(),
	}
	w.rebuild()
	return w
}

// Reset restores the layout's initial state. Subscribers are kept.
func (w *World) Reset() {
	w.rebuild()
	x, z := w.car.Position()
	w.bus.Emit(Event{Type: EventWorldReset, X: x, Z: z})
}

func (w *World) rebuild() {
	l := w.layout
	w.objects = w.objects[:0]
	w.pickups = w.pickups[:0]
	w.gates = w.gates[:0]

	for _, p := range l.Pickups {
		w.pickups = append(w.pickups, Handle(len(w.objects)))
		w.objects = append(w.objects, NewPickup(p.Kind, p.X, p.Z))
	}
	for _, o := range l.Obstacles {
		w.objects = append(w.objects, o.object())
	}
	for _, g := range l.Gates {
		w.gates = append(w.gates, gate{name: g.Name, handle: Handle(len(w.objects)), rule: g.Rule})
		w.objects = append(w.objects, g.Obstacle.object())
	}
	w.portal = l.Portal.Bounds()
	w.triggered = false
	w.tick = 0
	w.car.Reset()
}

// Advance runs one tick: car motion, object overlaps in insertion order, gate
// rules, then the portal check. An invalid dt skips the whole tick. Reaching
// the portal stops the car where it is.
func (w *World) Advance(dt float64, in Input) {
	if !validDT(dt) {
		return
	}
	w.tick++

	if !w.triggered {
		w.advanceCar(dt, in)
	}
	w.resolveOverlaps()
	w.updateGates()

	if !w.triggered && w.car.Bounds().Intersects(w.portal) {
		w.triggered = true
		w.car.SetSpeed(0)
		x, z := w.car.Position()
		w.bus.Emit(Event{Type: EventPortalTriggered, X: x, Z: z})
	}
}

func (w *World) advanceCar(dt float64, in Input) {
	boost, size := w.car.BoostRemaining(), w.car.SizeRemaining()
	w.car.Advance(dt, in)

	x, z := w.car.Position()
	if boost > 0 && w.car.BoostRemaining() == 0 {
		w.bus.Emit(Event{Type: EventModifierExpired, X: x, Z: z, Kind: SpeedBoost})
	}
	if size > 0 && w.car.SizeRemaining() == 0 {
		w.bus.Emit(Event{Type: EventModifierExpired, X: x, Z: z, Kind: SizeChange})
	}
}

// resolveOverlaps tests each object against the car's bounds as they stand
// after every earlier correction in the same pass.
func (w *World) resolveOverlaps() {
	for i := range w.objects {
		o := &w.objects[i]
		if !o.Active() || !w.car.Bounds().Intersects(o.Bounds()) {
			continue
		}
		before := math.Abs(w.car.Speed())
		if !o.OnCarOverlap(w.car) {
			continue
		}

		cx, cz := o.Bounds().Center()
		switch o.Kind() {
		case KindPickup:
			kind, _ := o.PickupKind()
			// Pickups occupy the first handles, so the handle is the id.
			w.bus.Emit(Event{
				Type:   EventPickupCollected,
				X:      cx,
				Z:      cz,
				Handle: Handle(i),
				Pickup: PickupID(i),
				Kind:   kind,
			})
		case KindObstacle:
			x, z := w.car.Position()
			w.bus.Emit(Event{
				Type:   EventObstacleHit,
				X:      x,
				Z:      z,
				Handle: Handle(i),
				Speed:  before - math.Abs(w.car.Speed()),
			})
		}
	}
}

func (w *World) updateGates() {
	for _, g := range w.gates {
		o := &w.objects[g.handle]
		if !o.Active() || !g.rule.Satisfied(w) {
			continue
		}
		o.Deactivate()
		cx, cz := o.Bounds().Center()
		w.bus.Emit(Event{Type: EventGateOpened, X: cx, Z: cz, Handle: g.handle, Name: g.name})
	}
}

func (w *World) Car() *Car         { return w.car }
func (w *World) Layout() Layout    { return w.layout }
func (w *World) Events() *EventBus { return w.bus }
func (w *World) Tick() uint64      { return w.tick }
func (w *World) Portal() AABB      { return w.portal }

// PortalTriggered is terminal until the next reset.
func (w *World) PortalTriggered() bool { return w.triggered }

func (w *World) PortalCenter() (float64, float64) {
	return w.portal.Center()
}

func (w *World) Subscribe(t EventType, fn EventHandler) {
	w.bus.Subscribe(t, fn)
}

// Objects returns a copy of every object in handle order.
func (w *World) Objects() []Object {
	out := make([]Object, len(w.objects))
	copy(out, w.objects)
	return out
}

func (w *World) ObjectCount() int { return len(w.objects) }

// Object returns a copy of the object behind h.
func (w *World) Object(h Handle) (Object, bool) {
	if h < 0 || int(h) >= len(w.objects) {
		return Object{}, false
	}
	return w.objects[h], true
}

// Pickup maps a pickup id to its object handle.
func (w *World) Pickup(id PickupID) (Handle, bool) {
	if id < 0 || int(id) >= len(w.pickups) {
		return 0, false
	}
	return w.pickups[id], true
}

func (w *World) PickupCollected(id PickupID) bool {
	h, ok := w.Pickup(id)
	return ok && !w.objects[h].Active()
}

func (w *World) TotalPickups() int { return len(w.pickups) }

func (w *World) CollectedPickups() int {
	n := 0
	for _, h := range w.pickups {
		if !w.objects[h].Active() {
			n++
		}
	}
	return n
}

func (w *World) AllPickupsCollected() bool {
	return len(w.pickups) > 0 && w.CollectedPickups() == len(w.pickups)
}

// Gates returns a snapshot of every gate; rules are copied.
func (w *World) Gates() []GateState {
	out := make([]GateState, len(w.gates))
	for i, g := range w.gates {
		out[i] = GateState{
			Name:   g.name,
			Handle: g.handle,
			Rule:   Rule{Kind: g.rule.Kind, Pickups: slices.Clone(g.rule.Pickups), Threshold: g.rule.Threshold},
			Open:   !w.objects[g.handle].Active(),
		}
	}
	return out
}

// GateOpen reports false for unknown names.
func (w *World) GateOpen(name string) bool {
	for _, g := range w.gates {
		if g.name == name {
			return !w.objects[g.handle].Active()
		}
	}
	return false
}
