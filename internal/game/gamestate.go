package game

import (
	"bilsim/internal/logger"
	"bilsim/internal/sim"
)

// Session binds a running game to the front-end systems that react to it.
// All reactions are driven by world events; nothing here feeds back into
// the simulation.
type Session struct {
	Game  *sim.Game
	Cam   Camera
	Scene *Scene
	FX    *ParticleSystem

	// Overview draws the whole map instead of following the car.
	Overview bool

	log   *logger.Logger
	sound func(kind SoundKind, gain float64)
	rng   *Rand
}

// NewSession builds the world from cfg and subscribes the front end to it.
// sound may be nil for a silent session.
func NewSession(cfg Config, log *logger.Logger, sound func(SoundKind, float64)) (*Session, error) {
	w, err := sim.NewWorldFromLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	if sound == nil {
		sound = func(SoundKind, float64) {}
	}
	x, z := w.Car().Position()
	s := &Session{
		Game:  sim.NewGame(w),
		Cam:   NewCamera(x, z, cfg.Zoom),
		Scene: NewScene(w),
		FX:    NewParticleSystem(MaxParticles),
		log:   log,
		sound: sound,
		rng:   NewRand(cfg.Seed),
	}
	s.subscribe(w)
	return s, nil
}

func (s *Session) subscribe(w *sim.World) {
	w.Subscribe(sim.EventPickupCollected, func(e sim.Event) {
		s.log.Printf("pickup %d (%s) collected at (%.1f, %.1f), %d/%d",
			e.Pickup, e.Kind, e.X, e.Z, w.CollectedPickups(), w.TotalPickups())
		s.FX.SpawnPickupBurst(e.X, e.Z, PickupColor(e.Kind), s.rng)
		if e.Kind == sim.SizeChange {
			s.sound(SoundGrow, 1)
		} else {
			s.sound(SoundBoost, 1)
		}
	})
	w.Subscribe(sim.EventGateOpened, func(e sim.Event) {
		s.log.Printf("gate %q opened", e.Name)
		s.Scene.FlashGate(e.Handle)
		s.sound(SoundGateOpen, 1)
	})
	w.Subscribe(sim.EventPortalTriggered, func(e sim.Event) {
		// Game's own subscriber runs first, so the times are final here.
		s.log.Printf("portal reached in %.2fs (best %.2fs, attempt %d)",
			s.Game.RunTime, s.Game.BestTime, s.Game.Attempts)
		x, z := w.PortalCenter()
		s.FX.SpawnPortalFlare(x, z, s.rng)
		s.sound(SoundPortal, 1)
	})
	w.Subscribe(sim.EventObstacleHit, func(e sim.Event) {
		if e.Speed < HitShakeMinSpeed {
			return
		}
		s.Cam.AddShake(e.Speed*HitShakeScale, HitShakeDuration)
		s.FX.SpawnImpact(e.X, e.Z, w.Car().Heading(), e.Speed/sim.CarMaxSpeed, Palette.Debris, s.rng)
		s.sound(SoundHit, e.Speed/sim.CarMaxSpeed)
	})
	w.Subscribe(sim.EventModifierExpired, func(sim.Event) {
		s.sound(SoundExpire, 0.7)
	})
	w.Subscribe(sim.EventWorldReset, func(e sim.Event) {
		s.log.Printf("reset, attempt %d", s.Game.Attempts)
		s.Scene.Rebuild(w)
		s.FX.Clear()
		s.Cam.X, s.Cam.Z = e.X, e.Z
		s.Cam.ShakeTimer = 0
		s.sound(SoundReset, 1)
	})
}

// Update advances the simulation by one frame and ages the visual effects.
func (s *Session) Update(frameDT float64, in sim.Input) {
	s.Game.Update(frameDT, in)
	s.Scene.Update(frameDT)
	s.FX.Update(frameDT)

	car := s.Game.World.Car()
	x, z := car.Position()
	s.Cam.Follow(x, z, car.Heading(), car.Speed(), frameDT)
	s.Cam.UpdateShake(frameDT, s.rng)
}

// BuildScene fills the scene buffers for view, particles included.
func (s *Session) BuildScene(view RectF, now float64) {
	s.Scene.Build(s.Game.World, view, now)
	s.FX.RenderInto(&s.Scene.Glow, &s.Scene.Effects)
}
