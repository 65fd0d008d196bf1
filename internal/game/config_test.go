package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bilsim/internal/sim"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(envMap(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Zoom != DefaultZoom || cfg.Mute || cfg.SFXVolume != DefaultSFXVolume {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Layout.Gates) != len(sim.DefaultLayout().Gates) {
		t.Fatal("expected the default layout")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(envMap(map[string]string{
		"BILSIM_SEED":       "42",
		"BILSIM_ZOOM":       "6.5",
		"BILSIM_MUTE":       "true",
		"BILSIM_SFX_VOLUME": "3",
	}))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Seed != 42 || cfg.Zoom != 6.5 || !cfg.Mute || cfg.SFXVolume != 1 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"seed":   {"BILSIM_SEED": "-1"},
		"zoom":   {"BILSIM_ZOOM": "far"},
		"range":  {"BILSIM_ZOOM": "100"},
		"nan":    {"BILSIM_ZOOM": "NaN"},
		"inf":    {"BILSIM_ZOOM": "+Inf"},
		"nanvol": {"BILSIM_SFX_VOLUME": "NaN"},
		"mute":   {"BILSIM_MUTE": "sometimes"},
		"volume": {"BILSIM_SFX_VOLUME": "loud"},
		"layout": {"BILSIM_LAYOUT": filepath.Join(t.TempDir(), "missing.json")},
	}
	for name, env := range cases {
		if _, err := loadConfig(envMap(env)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadConfigLayoutFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	doc := `{"pickups": [{"kind": "speed_boost", "x": 0, "z": 10}],
		"gates": [{"name": "g", "obstacle": {"x": 0, "z": 20, "half_width": 4, "half_length": 1}, "rule": {"kind": "all_collected"}}],
		"portal": {"x": 0, "z": 40, "half_width": 5, "half_length": 5}}`
	if err := os.WriteFile(good, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(envMap(map[string]string{"BILSIM_LAYOUT": good}))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Layout.Pickups) != 1 || cfg.Layout.Gates[0].Name != "g" {
		t.Fatalf("layout not loaded: %+v", cfg.Layout)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"portal": {"x": 0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = loadConfig(envMap(map[string]string{"BILSIM_LAYOUT": bad}))
	if !errors.Is(err, sim.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got=%v", err)
	}
}
