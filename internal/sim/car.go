package sim

import "math"

// Tuning holds the car's adjustable constants.
type Tuning struct {
	MaxSpeed          float64 `json:"max_speed"`
	Acceleration      float64 `json:"acceleration"`
	BrakeDeceleration float64 `json:"brake_deceleration"`
	Friction          float64 `json:"friction"`
	TurnRate          float64 `json:"turn_rate"`
	HalfWidth         float64 `json:"half_width"`
	HalfLength        float64 `json:"half_length"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:          CarMaxSpeed,
		Acceleration:      CarAcceleration,
		BrakeDeceleration: CarBrakeDeceleration,
		Friction:          CarFriction,
		TurnRate:          CarTurnRate,
		HalfWidth:         CarHalfWidth,
		HalfLength:        CarHalfLength,
	}
}

// Pose is a position on the ground plane plus a heading in radians.
// Heading 0 faces +Z; positive headings turn toward +X.
type Pose struct {
	X       float64 `json:"x"`
	Z       float64 `json:"z"`
	Heading float64 `json:"heading"`
}

// Car is the simplified arcade vehicle: damped scalar speed plus a heading that
// only turns while moving. Heading is never wrapped.
type Car struct {
	base  Tuning
	cur   Tuning
	start Pose

	x, z    float64
	heading float64
	speed   float64

	visualScale float64
	boostTimer  float64
	sizeTimer   float64
}

func NewCar(t Tuning, start Pose) *Car {
	c := &Car{base: t, start: start}
	c.Reset()
	return c
}

// Reset restores the start pose and cancels every modifier.
func (c *Car) Reset() {
	c.x = c.start.X
	c.z = c.start.Z
	c.heading = c.start.Heading
	c.speed = 0
	c.cur = c.base
	c.visualScale = 1
	c.boostTimer = 0
	c.sizeTimer = 0
}

// Advance integrates one tick. Non-finite, non-positive or oversized dt is ignored.
func (c *Car) Advance(dt float64, in Input) {
	if !validDT(dt) {
		return
	}

	c.tickModifiers(dt)

	switch {
	case in.Accelerate || in.Brake:
		if in.Accelerate {
			c.speed += c.cur.Acceleration * dt
		}
		if in.Brake {
			c.speed -= c.cur.BrakeDeceleration * dt
		}
	default:
		c.speed = approach(c.speed, 0, c.cur.Friction*dt)
	}
	c.speed = clampF(c.speed, -ReverseSpeedFactor*c.cur.MaxSpeed, c.cur.MaxSpeed)

	if math.Abs(c.speed) > SteerDeadband {
		c.heading += in.Steer() * c.cur.TurnRate * dt
	}

	c.x += math.Sin(c.heading) * c.speed * dt
	c.z += math.Cos(c.heading) * c.speed * dt
}

func (c *Car) tickModifiers(dt float64) {
	if c.boostTimer > 0 {
		c.boostTimer -= dt
		if c.boostTimer <= 0 {
			c.boostTimer = 0
			c.cur.MaxSpeed = c.base.MaxSpeed
			c.cur.Acceleration = c.base.Acceleration
		}
	}
	if c.sizeTimer > 0 {
		c.sizeTimer -= dt
		if c.sizeTimer <= 0 {
			c.sizeTimer = 0
			c.cur.HalfWidth = c.base.HalfWidth
			c.cur.HalfLength = c.base.HalfLength
			c.visualScale = 1
		}
	}
}

// ApplyModifier starts (or restarts) the timed effect of a pickup kind.
// Magnitudes are always derived from the base tuning, so effects never stack.
func (c *Car) ApplyModifier(kind PickupKind) {
	switch kind {
	case SpeedBoost:
		c.cur.MaxSpeed = c.base.MaxSpeed * SpeedBoostMultiplier
		c.cur.Acceleration = c.base.Acceleration * SpeedBoostMultiplier
		c.boostTimer = SpeedBoostDuration
	case SizeChange:
		c.cur.HalfWidth = c.base.HalfWidth * SizeChangeMultiplier
		c.cur.HalfLength = c.base.HalfLength * SizeChangeMultiplier
		c.visualScale = SizeChangeMultiplier
		c.sizeTimer = SizeChangeDuration
	}
}

func (c *Car) SetPosition(x, z float64) {
	if !finite(x) || !finite(z) {
		return
	}
	c.x, c.z = x, z
}

func (c *Car) SetHeading(h float64) {
	if finite(h) {
		c.heading = h
	}
}

// SetSpeed overrides the speed, still honouring the forward/reverse limits.
func (c *Car) SetSpeed(s float64) {
	if !finite(s) {
		return
	}
	c.speed = clampF(s, -ReverseSpeedFactor*c.cur.MaxSpeed, c.cur.MaxSpeed)
}

func (c *Car) Position() (float64, float64) { return c.x, c.z }
func (c *Car) Heading() float64             { return c.heading }
func (c *Car) Speed() float64               { return c.speed }
func (c *Car) Tuning() Tuning               { return c.cur }
func (c *Car) BaseTuning() Tuning           { return c.base }
func (c *Car) StartPose() Pose              { return c.start }
func (c *Car) VisualScale() float64         { return c.visualScale }
func (c *Car) BoostRemaining() float64      { return c.boostTimer }
func (c *Car) SizeRemaining() float64       { return c.sizeTimer }

// Bounds is the axis-aligned footprint; it ignores heading.
func (c *Car) Bounds() AABB {
	return BoxAt(c.x, c.z, c.cur.HalfWidth, c.cur.HalfLength)
}
