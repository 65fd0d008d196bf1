package sim

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}
	if len(l.Pickups) != 6 || len(l.Gates) != 3 {
		t.Fatalf("expected 6 pickups and 3 gates, got=%d/%d", len(l.Pickups), len(l.Gates))
	}
	if l.Portal.X != PortalX || l.Portal.Z != PortalZ {
		t.Fatalf("portal at (%f,%f)", l.Portal.X, l.Portal.Z)
	}
}

func TestLayoutValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"zero max speed", func(l *Layout) { l.Car.MaxSpeed = 0 }},
		{"negative friction", func(l *Layout) { l.Car.Friction = -1 }},
		{"nan start", func(l *Layout) { l.Start.X = math.NaN() }},
		{"flat obstacle", func(l *Layout) { l.Obstacles[0].HalfLength = 0 }},
		{"unnamed gate", func(l *Layout) { l.Gates[0].Name = "" }},
		{"duplicate gate", func(l *Layout) { l.Gates[1].Name = l.Gates[0].Name }},
		{"dangling rule", func(l *Layout) { l.Gates[0].Rule = AllOf(0, 9) }},
		{"unknown pickup kind", func(l *Layout) { l.Pickups[0].Kind = PickupKind(7) }},
		{"empty portal", func(l *Layout) { l.Portal.HalfWidth = 0 }},
	}
	for _, tc := range cases {
		l := DefaultLayout()
		tc.mutate(&l)
		err := l.Validate()
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("%s: expected ErrInvalidLayout, got=%v", tc.name, err)
		}
		if _, err := NewWorldFromLayout(l); err == nil {
			t.Errorf("%s: world built from invalid layout", tc.name)
		}
	}
}

const smallLayout = `{
	"car": {"max_speed": 40},
	"start": {"x": 1, "z": 2, "heading": 0},
	"pickups": [
		{"kind": "speed_boost", "x": 0, "z": 10},
		{"kind": "size_change", "x": 0, "z": 20}
	],
	"obstacles": [
		{"label": "wall", "x": 0, "z": 50, "half_width": 10, "half_length": 1}
	],
	"gates": [
		{
			"name": "north",
			"obstacle": {"x": 0, "z": 30, "half_width": 8, "half_length": 3},
			"rule": {"kind": "at_least", "threshold": 1}
		}
	],
	"portal": {"x": 0, "z": 40, "half_width": 5, "half_length": 5}
}`

func TestDecodeLayout(t *testing.T) {
	l, err := DecodeLayout(strings.NewReader(smallLayout))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Car.MaxSpeed != 40 || l.Car.Acceleration != CarAcceleration {
		t.Fatalf("expected max speed override over defaults, got=%+v", l.Car)
	}
	if l.Pickups[1].Kind != SizeChange {
		t.Fatalf("pickup kind=%v", l.Pickups[1].Kind)
	}
	if l.Gates[0].Rule.Kind != RuleAtLeast || l.Gates[0].Rule.Threshold != 1 {
		t.Fatalf("rule=%+v", l.Gates[0].Rule)
	}
	if l.Obstacles[0].Label != "wall" {
		t.Fatalf("label=%q", l.Obstacles[0].Label)
	}
}

func TestDecodeLayoutErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"syntax", `{"car": `, false},
		{"unknown field", `{"cars": {}}`, false},
		{"unknown pickup kind", `{"pickups": [{"kind": "nitro"}]}`, false},
		{"no portal", `{"pickups": []}`, true},
	}
	for _, tc := range cases {
		_, err := DecodeLayout(strings.NewReader(tc.doc))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if errors.Is(err, ErrInvalidLayout) != tc.invalid {
			t.Errorf("%s: unexpected error class: %v", tc.name, err)
		}
	}
}
