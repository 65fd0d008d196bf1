package sim

// Car defaults (world units per second, radians per second).
const (
	CarMaxSpeed          = 30.0
	CarAcceleration      = 15.0
	CarBrakeDeceleration = 25.0
	CarFriction          = 5.0
	CarTurnRate          = 2.5
	CarHalfWidth         = 1.0
	CarHalfLength        = 2.0
)

// Motion model limits.
const (
	ReverseSpeedFactor = 0.5 // reverse limit as a fraction of max speed
	SteerDeadband      = 0.1 // no turning below this speed
	MaxTickDT          = 1.0 // larger deltas are rejected as malformed
)

// Pickup modifiers. Reapplying overwrites the timer, never compounds.
const (
	PickupRadius         = 0.8
	SpeedBoostMultiplier = 1.5
	SpeedBoostDuration   = 5.0
	SizeChangeMultiplier = 1.5
	SizeChangeDuration   = 5.0
)

// Default map: a 400x400 plane centred on the origin.
const (
	WorldHalfExtent     = 200.0
	BorderThickness     = 1.0
	PortalX             = -150.0
	PortalZ             = 120.0
	PortalHalfSize      = 6.0
	DefaultGateHalfLong = 8.0
	DefaultGateHalfThin = 3.0
)

// Fixed simulation step driven by Game.
const (
	StepDT       = 1.0 / 60.0
	MaxFrameTime = 0.25
)
