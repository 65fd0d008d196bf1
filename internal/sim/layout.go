package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidLayout wraps every layout validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

type PickupSpec struct {
	Kind PickupKind `json:"kind"`
	X    float64    `json:"x"`
	Z    float64    `json:"z"`
}

type ObstacleSpec struct {
	Label      string  `json:"label,omitempty"`
	X          float64 `json:"x"`
	Z          float64 `json:"z"`
	HalfWidth  float64 `json:"half_width"`
	HalfLength float64 `json:"half_length"`
}

// GateSpec ties one blocking obstacle to the rule that opens it.
type GateSpec struct {
	Name     string       `json:"name"`
	Obstacle ObstacleSpec `json:"obstacle"`
	Rule     Rule         `json:"rule"`
}

type PortalSpec struct {
	X          float64 `json:"x"`
	Z          float64 `json:"z"`
	HalfWidth  float64 `json:"half_width"`
	HalfLength float64 `json:"half_length"`
}

func (p PortalSpec) Bounds() AABB {
	return BoxAt(p.X, p.Z, p.HalfWidth, p.HalfLength)
}

// Layout is the static description a world is rebuilt from on every reset.
// Objects are inserted as pickups, then obstacles, then gate obstacles.
type Layout struct {
	Car       Tuning         `json:"car"`
	Start     Pose           `json:"start"`
	Pickups   []PickupSpec   `json:"pickups"`
	Obstacles []ObstacleSpec `json:"obstacles"`
	Gates     []GateSpec     `json:"gates"`
	Portal    PortalSpec     `json:"portal"`
}

func (l Layout) Validate() error {
	t := l.Car
	for name, v := range map[string]float64{
		"max_speed":          t.MaxSpeed,
		"acceleration":       t.Acceleration,
		"brake_deceleration": t.BrakeDeceleration,
		"turn_rate":          t.TurnRate,
		"half_width":         t.HalfWidth,
		"half_length":        t.HalfLength,
	} {
		if !finite(v) || v <= 0 {
			return fmt.Errorf("%w: car %s must be positive, got %v", ErrInvalidLayout, name, v)
		}
	}
	if !finite(t.Friction) || t.Friction < 0 {
		return fmt.Errorf("%w: car friction must be non-negative, got %v", ErrInvalidLayout, t.Friction)
	}
	if !finite(l.Start.X) || !finite(l.Start.Z) || !finite(l.Start.Heading) {
		return fmt.Errorf("%w: start pose is not finite", ErrInvalidLayout)
	}

	for i, p := range l.Pickups {
		if !finite(p.X) || !finite(p.Z) {
			return fmt.Errorf("%w: pickup %d position is not finite", ErrInvalidLayout, i)
		}
		if p.Kind != SpeedBoost && p.Kind != SizeChange {
			return fmt.Errorf("%w: pickup %d has unknown kind %d", ErrInvalidLayout, i, int(p.Kind))
		}
	}
	for i, o := range l.Obstacles {
		if err := o.validate(); err != nil {
			return fmt.Errorf("%w: obstacle %d: %v", ErrInvalidLayout, i, err)
		}
	}

	names := make(map[string]bool, len(l.Gates))
	for i, g := range l.Gates {
		if g.Name == "" {
			return fmt.Errorf("%w: gate %d has no name", ErrInvalidLayout, i)
		}
		if names[g.Name] {
			return fmt.Errorf("%w: duplicate gate name %q", ErrInvalidLayout, g.Name)
		}
		names[g.Name] = true
		if err := g.Obstacle.validate(); err != nil {
			return fmt.Errorf("%w: gate %q: %v", ErrInvalidLayout, g.Name, err)
		}
		if err := g.Rule.Validate(len(l.Pickups)); err != nil {
			return fmt.Errorf("%w: gate %q: %v", ErrInvalidLayout, g.Name, err)
		}
	}

	p := l.Portal
	if !finite(p.X) || !finite(p.Z) || !finite(p.HalfWidth) || !finite(p.HalfLength) ||
		p.HalfWidth <= 0 || p.HalfLength <= 0 {
		return fmt.Errorf("%w: portal needs a finite position and positive size", ErrInvalidLayout)
	}
	return nil
}

func (o ObstacleSpec) validate() error {
	if !finite(o.X) || !finite(o.Z) {
		return errors.New("position is not finite")
	}
	if !finite(o.HalfWidth) || !finite(o.HalfLength) || o.HalfWidth <= 0 || o.HalfLength <= 0 {
		return fmt.Errorf("half extents must be positive, got %v x %v", o.HalfWidth, o.HalfLength)
	}
	return nil
}

func (o ObstacleSpec) object() Object {
	return NewObstacle(o.X, o.Z, o.HalfWidth, o.HalfLength).WithLabel(o.Label)
}

// DecodeLayout reads a JSON layout. Missing car tuning fields keep their defaults.
func DecodeLayout(r io.Reader) (Layout, error) {
	l := Layout{Car: DefaultTuning()}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decoding layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// DefaultLayout is the village/castle/smelter map: two pickups per gate, a
// walled 400x400 plane and a portal in the north-west corner.
func DefaultLayout() Layout {
	const (
		b = WorldHalfExtent
		t = BorderThickness
	)
	return Layout{
		Car:   DefaultTuning(),
		Start: Pose{},
		Pickups: []PickupSpec{
			{Kind: SpeedBoost, X: -100, Z: -100}, // village
			{Kind: SizeChange, X: -100, Z: -80},
			{Kind: SpeedBoost, X: 0, Z: 90}, // castle
			{Kind: SizeChange, X: -10, Z: 90},
			{Kind: SpeedBoost, X: 90, Z: -100}, // smelter
			{Kind: SizeChange, X: 90, Z: -110},
		},
		Obstacles: []ObstacleSpec{
			{Label: "border-north", X: 0, Z: b, HalfWidth: b, HalfLength: t},
			{Label: "border-south", X: 0, Z: -b, HalfWidth: b, HalfLength: t},
			{Label: "border-west", X: -b, Z: 0, HalfWidth: t, HalfLength: b},
			{Label: "border-east", X: b, Z: 0, HalfWidth: t, HalfLength: b},

			{Label: "village-fence-south", X: -120, Z: -158, HalfWidth: 0.5, HalfLength: 25.5},
			{Label: "village-fence-north", X: -120, Z: -92, HalfWidth: 0.5, HalfLength: 25.5},
			{Label: "village-fence-west", X: -160, Z: -185, HalfWidth: 40, HalfLength: 0.5},
			{Label: "village-fence-east", X: -160, Z: -65, HalfWidth: 40, HalfLength: 0.5},

			{Label: "castle-wall-north", X: 27, Z: 100, HalfWidth: 22, HalfLength: 1},
			{Label: "castle-wall-south", X: -20, Z: 100, HalfWidth: 15, HalfLength: 1},
			{Label: "castle-wall-west", X: 50, Z: 150, HalfWidth: 1, HalfLength: 50.5},
			{Label: "castle-wall-east", X: -35, Z: 150, HalfWidth: 1, HalfLength: 50.5},
		},
		Gates: []GateSpec{
			{
				Name:     "village",
				Obstacle: ObstacleSpec{Label: "gate-village", X: -120, Z: -125, HalfWidth: DefaultGateHalfThin, HalfLength: DefaultGateHalfLong},
				Rule:     AllOf(0, 1),
			},
			{
				Name:     "castle",
				Obstacle: ObstacleSpec{Label: "gate-castle", X: 0, Z: 100, HalfWidth: DefaultGateHalfLong, HalfLength: DefaultGateHalfThin},
				Rule:     AllOf(2, 3),
			},
			{
				Name:     "smelter",
				Obstacle: ObstacleSpec{Label: "gate-smelter", X: 110, Z: -120, HalfWidth: DefaultGateHalfThin, HalfLength: DefaultGateHalfLong},
				Rule:     AllOf(4, 5),
			},
		},
		Portal: PortalSpec{X: PortalX, Z: PortalZ, HalfWidth: PortalHalfSize, HalfLength: PortalHalfSize},
	}
}
