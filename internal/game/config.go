package game

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"bilsim/internal/sim"
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "bilsim"
	DefaultZoom  = 4.0 // screen pixels per world unit
	MinZoom      = 1.0
	MaxZoom      = 12.0
	ZoomRate     = 1.4 // exponential zoom speed while E/Q is held

	OverviewMargin = 24 // pixels around the map in overview
)

// Camera follow and shake.
const (
	CameraFollowRate = 6.0  // 1/s, exponential catch-up toward the car
	CameraLookAhead  = 0.35 // seconds of travel the camera leads the car by
	HitShakeMinSpeed = 4.0  // impacts slower than this do not shake or sound
	HitShakeScale    = 0.05 // world units of shake per unit of impact speed
	HitShakeDuration = 0.25
	MaxFrameDelta    = 0.1
)

// Spatial index over static objects.
const (
	QuadCapacity = 8
	QuadMaxDepth = 6
)

// Render buffer limits.
const (
	MaxRectVerts      = 6 * 4096
	MaxSpriteRender   = 2048
	FloatsPerVertex   = 6 // x, z, r, g, b, a
	FloatsPerSprite   = 8 // x, z, size, r, g, b, a, rotation
	PickupSpriteSize  = 2.4
	PortalGlowSize    = 22.0
	GateFlashDuration = 0.6
	MaxParticles      = 1024
)

const particleDrag = 3.0 // 1/s

// HUD layout in screen pixels.
const (
	HUDMargin   = 16.0
	HUDPipSize  = 14.0
	HUDPipGap   = 6.0
	HUDBarWidth = 120.0
	HUDBarH     = 6.0
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Seed      uint64
	Layout    sim.Layout
	Zoom      float64
	Mute      bool
	SFXVolume float64
}

func DefaultConfig() Config {
	return Config{
		Seed:      uint64(time.Now().UnixNano()),
		Layout:    sim.DefaultLayout(),
		Zoom:      DefaultZoom,
		SFXVolume: DefaultSFXVolume,
	}
}

// LoadConfig reads BILSIM_* variables on top of DefaultConfig.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if s := getenv("BILSIM_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BILSIM_SEED: %w", err)
		}
		cfg.Seed = v
	}

	if s := getenv("BILSIM_ZOOM"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BILSIM_ZOOM: %w", err)
		}
		if math.IsNaN(v) || v < MinZoom || v > MaxZoom {
			return Config{}, fmt.Errorf("BILSIM_ZOOM: %v outside [%v,%v]", v, MinZoom, MaxZoom)
		}
		cfg.Zoom = v
	}

	if s := getenv("BILSIM_MUTE"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("BILSIM_MUTE: %w", err)
		}
		cfg.Mute = v
	}

	if s := getenv("BILSIM_SFX_VOLUME"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BILSIM_SFX_VOLUME: %w", err)
		}
		if math.IsNaN(v) {
			return Config{}, fmt.Errorf("BILSIM_SFX_VOLUME: %v is not a number", v)
		}
		cfg.SFXVolume = clampF(v, 0, 1)
	}

	if path := getenv("BILSIM_LAYOUT"); path != "" {
		l, err := loadLayout(path)
		if err != nil {
			return Config{}, fmt.Errorf("BILSIM_LAYOUT: %w", err)
		}
		cfg.Layout = l
	}
	return cfg, nil
}

func loadLayout(path string) (sim.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.Layout{}, err
	}
	defer f.Close()
	return sim.DecodeLayout(f)
}
