package game

import (
	"math"

	"bilsim/internal/sim"
)

// BuildHUD fills m with screen-space HUD geometry (pixels, origin top-left):
// one pip per pickup, one lamp per gate, modifier timer bars and a finish
// banner. The HUD has no text; colours carry the meaning.
func BuildHUD(m *Mesh, g *sim.Game, fbW, fbH int, now float64) {
	m.Reset()
	w := g.World

	// Pickup pips, top-left.
	x := HUDMargin
	y := HUDMargin
	for id := 0; id < w.TotalPickups(); id++ {
		h, _ := w.Pickup(sim.PickupID(id))
		o, _ := w.Object(h)
		kind, _ := o.PickupKind()
		r := RectF{X0: x, Y0: y, X1: x + HUDPipSize, Y1: y + HUDPipSize}
		if w.PickupCollected(sim.PickupID(id)) {
			m.Rect(r, PickupColor(kind), 1)
		} else {
			m.Rect(r, Palette.HUDEmpty, 0.8)
			m.Frame(r, 2, PickupColor(kind), 0.9)
		}
		x += HUDPipSize + HUDPipGap
	}

	// Gate lamps, second row.
	x = HUDMargin
	y += HUDPipSize + HUDPipGap
	for _, gs := range w.Gates() {
		r := RectF{X0: x, Y0: y, X1: x + HUDPipSize, Y1: y + HUDPipSize}
		c := Palette.GateClosed
		if gs.Open {
			c = Palette.GateOpen
		}
		m.Rect(r, c, 1)
		x += HUDPipSize + HUDPipGap
	}

	// Modifier timers, top-right.
	car := w.Car()
	bx := float64(fbW) - HUDMargin - HUDBarWidth
	by := HUDMargin
	timerBar(m, bx, by, car.BoostRemaining()/sim.SpeedBoostDuration, Palette.Boost)
	timerBar(m, bx, by+HUDBarH*2, car.SizeRemaining()/sim.SizeChangeDuration, Palette.Size)

	if g.State == sim.StateFinished {
		finishBanner(m, g, fbW, fbH, now)
	}
}

func timerBar(m *Mesh, x, y, frac float64, c RGB) {
	if frac <= 0 {
		return
	}
	frac = clampF(frac, 0, 1)
	m.Rect(RectF{X0: x, Y0: y, X1: x + HUDBarWidth, Y1: y + HUDBarH}, Palette.HUDBack, 0.6)
	m.Rect(RectF{X0: x, Y0: y, X1: x + HUDBarWidth*frac, Y1: y + HUDBarH}, c, 1)
}

// finishBanner draws a pulsing band across the screen. Its inner bar compares
// this run against the best run: full width means this run set the record.
func finishBanner(m *Mesh, g *sim.Game, fbW, fbH int, now float64) {
	w, h := float64(fbW), float64(fbH)
	band := RectF{X0: 0, Y0: h*0.5 - 40, X1: w, Y1: h*0.5 + 40}
	m.Rect(band, Palette.HUDBack, 0.75)

	pulse := 0.75 + 0.25*math.Sin(now*4)
	m.Frame(band, 4, Palette.Finish, float32(pulse))

	frac := 1.0
	if g.RunTime > 0 && g.BestTime > 0 {
		frac = clampF(g.BestTime/g.RunTime, 0, 1)
	}
	inner := RectF{X0: w * 0.2, Y0: h*0.5 - 6, X1: w*0.2 + w*0.6*frac, Y1: h*0.5 + 6}
	m.Rect(inner, lerpRGB(Palette.HUDEmpty, Palette.Finish, frac), 1)
}
