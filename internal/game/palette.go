package game

import "bilsim/internal/sim"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addU8(c.R, dr), G: addU8(c.G, dg), B: addU8(c.B, db)}
}

func addU8(v uint8, d int) uint8 {
	return uint8(min(max(int(v)+d, 0), 255))
}

// F32 returns the colour as normalized floats with the given alpha.
func (c RGB) F32(alpha float32) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, alpha
}

var Palette = struct {
	Ground     RGB
	Border     RGB
	Wall       RGB
	GateClosed RGB
	GateOpen   RGB
	Boost      RGB
	Size       RGB
	Portal     RGB
	PortalLit  RGB
	Car        RGB
	CarNose    RGB
	HUDBack    RGB
	HUDEmpty   RGB
	Finish     RGB
	Debris     RGB
}{
	Ground:     RGB{R: 140, G: 136, B: 91},
	Border:     RGB{R: 40, G: 40, B: 44},
	Wall:       RGB{R: 153, G: 144, B: 133},
	GateClosed: RGB{R: 190, G: 70, B: 45},
	GateOpen:   RGB{R: 90, G: 120, B: 65},
	Boost:      RGB{R: 255, G: 200, B: 90},
	Size:       RGB{R: 120, G: 170, B: 255},
	Portal:     RGB{R: 150, G: 90, B: 220},
	PortalLit:  RGB{R: 255, G: 255, B: 255},
	Car:        RGB{R: 214, G: 60, B: 52},
	CarNose:    RGB{R: 255, G: 210, B: 110},
	HUDBack:    RGB{R: 20, G: 20, B: 24},
	HUDEmpty:   RGB{R: 86, G: 89, B: 88},
	Finish:     RGB{R: 255, G: 210, B: 110},
	Debris:     RGB{R: 120, G: 112, B: 100},
}

// PickupColor is the sprite and HUD colour of a pickup kind.
func PickupColor(k sim.PickupKind) RGB {
	if k == sim.SizeChange {
		return Palette.Size
	}
	return Palette.Boost
}
