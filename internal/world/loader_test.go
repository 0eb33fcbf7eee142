package world

import (
	"errors"
	"math"
	"testing"

	"github.com/cvltovbiboran/falling/assets"
)

func loadTunnel(t *testing.T) *Level {
	t.Helper()
	data, err := assets.Levels.ReadFile("levels/tunnel.yaml")
	if err != nil {
		t.Fatalf("read tunnel: %v", err)
	}
	level, err := LoadLevel(data)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	return level
}

func TestTunnelLevel(t *testing.T) {
	level := loadTunnel(t)
	if level.Floors != 300 || level.StarPoints != 11 {
		t.Fatalf("floors=%d star=%d", level.Floors, level.StarPoints)
	}
	if got := len(level.HazardLevels()); got != 60 {
		t.Errorf("hazard levels = %d, want 60", got)
	}
	if got := len(level.RingSlots()); got != 22 {
		t.Errorf("ring slots = %d, want 22", got)
	}
	if len(level.Story) != 5 {
		t.Errorf("story slides = %d, want 5", len(level.Story))
	}

	for _, c := range []uint8{0, 2, 4, 6, 8} {
		if _, err := level.Checkpoint(c); err != nil {
			t.Errorf("Checkpoint(%d): %v", c, err)
		}
	}
	if _, err := level.Checkpoint(3); !errors.Is(err, ErrUnknownCheckpoint) {
		t.Errorf("Checkpoint(3) err = %v, want ErrUnknownCheckpoint", err)
	}

	cp, _ := level.Checkpoint(6)
	if cp.VisibleEvery != 7 || !cp.Respawn {
		t.Errorf("checkpoint 6 = %+v", cp)
	}
	cp, _ = level.Checkpoint(8)
	if !cp.Final {
		t.Error("checkpoint 8 should be final")
	}
}

func TestSpinAndAnimation(t *testing.T) {
	level := loadTunnel(t)
	if !level.Animated(0) || level.Animated(1) || !level.Animated(4) || level.Animated(6) {
		t.Error("unexpected animated cycles")
	}
	if !level.Lines(2) || !level.Lines(6) || level.Lines(4) {
		t.Error("unexpected line cycles")
	}
	if level.SpinFor(2) != 0 || level.SpinFor(4) != -1 || level.SpinFor(5) != -1 {
		t.Errorf("spin = %v %v %v", level.SpinFor(2), level.SpinFor(4), level.SpinFor(5))
	}
	if RingDirection(0) != -1 || RingDirection(1) != 1 {
		t.Error("ring direction parity")
	}
}

func TestRingSlotsOnRadius(t *testing.T) {
	level := loadTunnel(t)
	for i, s := range level.RingSlots() {
		r := math.Hypot(s.X, s.Z)
		if math.Abs(r-level.TunnelRadius) > 1e-9 {
			t.Errorf("slot %d radius %v", i, r)
		}
	}
	if level.StarPartner(9) != 2 {
		t.Errorf("StarPartner(9) = %d, want 2", level.StarPartner(9))
	}
}

func TestLoadLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"garbage", "floors: [1"},
		{"no floors", "floors: 0\nfloor_spacing: 1\ntunnel_radius: 1\nstar_points: 1\n"},
		{"duplicate checkpoint", "floors: 1\nfloor_spacing: 1\ntunnel_radius: 1\nstar_points: 1\ncheckpoints:\n  - cycle: 2\n  - cycle: 2\n"},
		{"negative stride", "floors: 1\nfloor_spacing: 1\ntunnel_radius: 1\nstar_points: 1\ncheckpoints:\n  - cycle: 2\n    visible_every: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLevel([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHazardTemplates(t *testing.T) {
	if Template(HazardBrake).VelocityDelta != 40 || Template(HazardSpeed).VelocityDelta != -40 {
		t.Error("velocity deltas")
	}
	if Template(HazardHealth).HealthDelta != 20 || Template(HazardHealth).VelocityDelta != 0 {
		t.Error("health delta")
	}
	if HazardEnvironment.Pickup() || !HazardBrake.Pickup() {
		t.Error("pickup classification")
	}
	if HazardKind(99).String() != "unknown" || HazardSpeed.String() != "speed" {
		t.Error("names")
	}
}
