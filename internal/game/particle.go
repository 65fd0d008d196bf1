package game

import "math"

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota // chips knocked off an obstacle
	ParticleGlow                       // additive sparkle
	ParticleRing                       // expanding ring sprite, no drag
)

type Particle struct {
	X, Z   float64
	VX, VZ float64
	Size   float64
	Spin   float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is a fixed-capacity pool of short-lived effects. When full,
// new particles overwrite old ones in a ring.
type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnPickupBurst scatters a ring of sparkles from a collected pickup.
func (ps *ParticleSystem) SpawnPickupBurst(x, z float64, col RGB, r *Rand) {
	for i := 0; i < 24; i++ {
		ang := float64(i)/24*math.Pi*2 + r.RangeF(-0.1, 0.1)
		spd := r.RangeF(6, 16)
		ps.Add(Particle{
			X: x, Z: z,
			VX: math.Sin(ang) * spd, VZ: math.Cos(ang) * spd,
			Size: r.RangeF(0.6, 1.2), MaxLife: r.RangeF(0.35, 0.7),
			Col: col, Kind: ParticleGlow,
		})
	}
	ps.Add(Particle{X: x, Z: z, Size: PickupSpriteSize, MaxLife: 0.4, Col: col, Kind: ParticleRing})
}

// SpawnImpact throws debris back along the car's travel. intensity is in [0,1].
func (ps *ParticleSystem) SpawnImpact(x, z, heading, intensity float64, col RGB, r *Rand) {
	if intensity <= 0 {
		return
	}
	intensity = clampF(intensity, 0, 1)
	back := heading + math.Pi
	for range int(4 + 20*intensity) {
		ang := back + r.RangeF(-1.1, 1.1)
		spd := r.RangeF(4, 22) * intensity
		ps.Add(Particle{
			X: x + r.RangeF(-0.5, 0.5), Z: z + r.RangeF(-0.5, 0.5),
			VX: math.Sin(ang) * spd, VZ: math.Cos(ang) * spd,
			Size: r.RangeF(0.3, 0.7), Spin: r.RangeF(-8, 8),
			MaxLife: r.RangeF(0.3, 0.8),
			Col: col.Add(r.Range(-14, 14), r.Range(-14, 14), r.Range(-14, 14)), Kind: ParticleDebris,
		})
	}
}

// SpawnPortalFlare fires staggered rings and a spray of sparkles.
func (ps *ParticleSystem) SpawnPortalFlare(x, z float64, r *Rand) {
	for i := 0; i < 3; i++ {
		ps.Add(Particle{
			X: x, Z: z, Size: PortalGlowSize * 0.5,
			Life: -0.15 * float64(i), MaxLife: 0.6,
			Col: Palette.PortalLit, Kind: ParticleRing,
		})
	}
	for rep := 0; rep < 60; rep++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(8, 30)
		ps.Add(Particle{
			X: x, Z: z,
			VX: math.Sin(ang) * spd, VZ: math.Cos(ang) * spd,
			Size: r.RangeF(0.8, 1.6), MaxLife: r.RangeF(0.5, 1.1),
			Col: lerpRGB(Palette.Portal, Palette.PortalLit, r.Float64()), Kind: ParticleGlow,
		})
	}
}

func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		if p.Life < 0 {
			i++
			continue
		}
		if p.Kind != ParticleRing {
			p.VX *= drag
			p.VZ *= drag
		}
		p.X += p.VX * dt
		p.Z += p.VZ * dt
		i++
	}
}

// RenderInto splits live particles into additive (glow) and alpha-blended
// (norm) sprite buffers.
func (ps *ParticleSystem) RenderInto(glow, norm *Sprites) {
	for i := range ps.P {
		p := &ps.P[i]
		if p.Life < 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)
		switch p.Kind {
		case ParticleDebris:
			a := 1.0
			if t > 0.6 {
				a = (1 - t) / 0.4
			}
			norm.Add(p.X, p.Z, p.Size, p.Col, float32(a), p.Spin*p.Life)
		case ParticleGlow:
			glow.Add(p.X, p.Z, p.Size*(1+t), p.Col.Mul(uint8(255*(1-t))), 1, 0)
		case ParticleRing:
			glow.Add(p.X, p.Z, p.Size*(1+3*t), p.Col.Mul(uint8(200*(1-t))), 1, 0)
		}
	}
}
