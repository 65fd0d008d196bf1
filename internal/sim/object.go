package sim

import (
	"fmt"
	"math"
)

type ObjectKind int

const (
	KindPickup ObjectKind = iota
	KindObstacle
)

func (k ObjectKind) String() string {
	switch k {
	case KindPickup:
		return "pickup"
	case KindObstacle:
		return "obstacle"
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

type PickupKind int

const (
	SpeedBoost PickupKind = iota
	SizeChange
)

func (k PickupKind) String() string {
	switch k {
	case SpeedBoost:
		return "speed_boost"
	case SizeChange:
		return "size_change"
	}
	return fmt.Sprintf("PickupKind(%d)", int(k))
}

func (k PickupKind) MarshalText() ([]byte, error) {
	switch k {
	case SpeedBoost, SizeChange:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown pickup kind %d", int(k))
}

func (k *PickupKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "speed_boost":
		*k = SpeedBoost
	case "size_change":
		*k = SizeChange
	default:
		return fmt.Errorf("unknown pickup kind %q", string(b))
	}
	return nil
}

// Handle identifies an object by its position in the world's object list.
// Handles are rebuilt on every reset and stay valid until the next one.
type Handle int

// Object is a static interactable: a one-shot pickup or a blocking obstacle.
// The variant data lives inline; behaviour dispatches on kind.
type Object struct {
	kind   ObjectKind
	pickup PickupKind
	bounds AABB
	active bool
	label  string
}

func NewPickup(kind PickupKind, x, z float64) Object {
	return Object{
		kind:   KindPickup,
		pickup: kind,
		bounds: BoxAt(x, z, PickupRadius, PickupRadius),
		active: true,
	}
}

func NewObstacle(x, z, halfW, halfL float64) Object {
	return Object{
		kind:   KindObstacle,
		bounds: BoxAt(x, z, halfW, halfL),
		active: true,
	}
}

// WithLabel names the object for debugging and rendering.
func (o Object) WithLabel(label string) Object {
	o.label = label
	return o
}

func (o *Object) Kind() ObjectKind { return o.kind }
func (o *Object) Bounds() AABB     { return o.bounds }
func (o *Object) Active() bool     { return o.active }
func (o *Object) Label() string    { return o.label }

// PickupKind reports the pickup type; ok is false for obstacles.
func (o *Object) PickupKind() (kind PickupKind, ok bool) {
	return o.pickup, o.kind == KindPickup
}

// Deactivate is idempotent. Inactive objects stay in the world but no longer
// respond to overlaps.
func (o *Object) Deactivate() {
	o.active = false
}

// OnCarOverlap applies the object's response to a car touching it and reports
// whether anything changed. Obstacles push the car out along the shallower
// axis and drop the speed component that points into them.
func (o *Object) OnCarOverlap(c *Car) bool {
	if !o.active {
		return false
	}
	switch o.kind {
	case KindPickup:
		c.ApplyModifier(o.pickup)
		o.active = false
		return true
	case KindObstacle:
		dx, dz, depth := c.Bounds().Penetration(o.bounds)
		if depth <= 0 {
			return false
		}
		x, z := c.Position()
		c.SetPosition(x+dx, z+dz)
		// Keep the speed component along the face.
		along := math.Abs(math.Sin(c.Heading()))
		if dz == 0 {
			along = math.Abs(math.Cos(c.Heading()))
		}
		c.SetSpeed(c.Speed() * along)
		return true
	}
	return false
}
