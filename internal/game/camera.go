package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera looks down on the ground plane: +X to the right, +Z down the screen,
// so a positive heading change turns the car to its own left.
type Camera struct {
	X, Z float64 // world-space centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeZ float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

func NewCamera(x, z, zoom float64) Camera {
	return Camera{X: x, Z: z, Zoom: clampF(zoom, MinZoom, MaxZoom)}
}

// Follow eases the camera toward a point slightly ahead of the car.
func (c *Camera) Follow(x, z, heading, speed, dt float64) {
	tx := x + math.Sin(heading)*speed*CameraLookAhead
	tz := z + math.Cos(heading)*speed*CameraLookAhead
	c.X = expApproach(c.X, tx, CameraFollowRate, dt)
	c.Z = expApproach(c.Z, tz, CameraFollowRate, dt)
}

// ZoomBy scales the zoom by exp(rate*dt) and clamps it.
func (c *Camera) ZoomBy(rate, dt float64) {
	c.Zoom = clampF(c.Zoom*math.Exp(rate*dt), MinZoom, MaxZoom)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and picks new random offsets.
func (c *Camera) UpdateShake(dt float64, rng *Rand) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeZ = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rng.RangeF(-mag, mag)
	c.ShakeZ = rng.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Z + c.ShakeZ
}

// ViewRect is the visible world rectangle for a framebuffer, shake included.
func (c *Camera) ViewRect(fbW, fbH int) RectF {
	x, z := c.EffectivePos()
	halfW := float64(fbW) / (2 * c.Zoom)
	halfH := float64(fbH) / (2 * c.Zoom)
	return RectF{X0: x - halfW, Y0: z - halfH, X1: x + halfW, Y1: z + halfH}
}

// ViewProj maps world (x, z) onto clip space.
func (c *Camera) ViewProj(fbW, fbH int) mgl32.Mat4 {
	v := c.ViewRect(fbW, fbH)
	return mgl32.Ortho2D(float32(v.X0), float32(v.X1), float32(v.Y1), float32(v.Y0))
}

// ScreenProj maps framebuffer pixels (origin top-left) onto clip space for the HUD.
func ScreenProj(fbW, fbH int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(fbW), float32(fbH), 0)
}
