// Package config holds the tunables of the game and their YAML loader.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Physics struct {
	Gravity float64 `yaml:"gravity"`
	// MaxTravel bounds how far a body may move in one substep so sensors
	// are not tunnelled through at terminal speed.
	MaxTravel float64 `yaml:"max_travel"`
	CellSize  int     `yaml:"cell_size"`
}

type Falling struct {
	Level          string  `yaml:"level"`
	SpawnHeight    float64 `yaml:"spawn_height"`
	Ceiling        float64 `yaml:"ceiling"`
	ActorRadius    float64 `yaml:"actor_radius"`
	TeleportRadius float64 `yaml:"teleport_radius"`
	StartHealth    float64 `yaml:"start_health"`
	HealthStep     float64 `yaml:"health_step"`
	DrainThreshold float64 `yaml:"drain_threshold"`
	DrainDivisor   float64 `yaml:"drain_divisor"`
	ScreamCooldown float64 `yaml:"scream_cooldown"`
	MoveSpeed      float64 `yaml:"move_speed"`
	MoveMargin     float64 `yaml:"move_margin"`
	BrakeStep      float64 `yaml:"brake_step"`
	ViewDepth      float64 `yaml:"view_depth"`
	// VelocityResetBelow is the cycle from which a teleport keeps the fall speed.
	VelocityResetBelow uint8 `yaml:"final_cycle_velocity_reset"`
}

type Indoctrination struct {
	ShowStep  float64 `yaml:"show_step"`
	ClearStep float64 `yaml:"clear_step"`
	Chance    float64 `yaml:"chance"`
}

type Bloodfield struct {
	Step float64 `yaml:"step"`
}

type Cutscene struct {
	SlideSeconds float64 `yaml:"slide_seconds"`
}

type Menu struct {
	StarRadius  float64 `yaml:"star_radius"`
	StarSpin    float64 `yaml:"star_spin"`
	RandomLines int     `yaml:"random_lines"`
	LineExtent  float64 `yaml:"line_extent"`
}

type Audio struct {
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

// Config is the full set of tunables.
type Config struct {
	Window         Window         `yaml:"window"`
	Physics        Physics        `yaml:"physics"`
	Falling        Falling        `yaml:"falling"`
	Indoctrination Indoctrination `yaml:"indoctrination"`
	Bloodfield     Bloodfield     `yaml:"bloodfield"`
	Cutscene       Cutscene       `yaml:"cutscene"`
	Menu           Menu           `yaml:"menu"`
	Audio          Audio          `yaml:"audio"`
}

// Default returns the built-in tunables.
func Default() Config {
	return Config{
		Window:  Window{Width: 1280, Height: 720, Title: "CVLT OV BIBORAN", TPS: 60},
		Physics: Physics{Gravity: -9.81, MaxTravel: 0.5, CellSize: 4},
		Falling: Falling{
			Level:              "levels/tunnel.yaml",
			SpawnHeight:        3050,
			Ceiling:            3000,
			ActorRadius:        0.5,
			TeleportRadius:     8.5,
			StartHealth:        100,
			HealthStep:         0.05,
			DrainThreshold:     100,
			DrainDivisor:       3,
			ScreamCooldown:     2,
			MoveSpeed:          0.3,
			MoveMargin:         1,
			BrakeStep:          1,
			ViewDepth:          250,
			VelocityResetBelow: 6,
		},
		Indoctrination: Indoctrination{ShowStep: 0.041, ClearStep: 0.2, Chance: 0.2},
		Bloodfield:     Bloodfield{Step: 0.05},
		Cutscene:       Cutscene{SlideSeconds: 5},
		Menu:           Menu{StarRadius: 3.5, StarSpin: 0.1, RandomLines: 60, LineExtent: 10},
		Audio:          Audio{SampleRate: 44100, MusicVolume: 0.8, SFXVolume: 1.0},
	}
}

// Load overlays YAML data onto the defaults and validates the result.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads base, then overlays the file at path on top of it.
// An empty path returns base unchanged.
func LoadFile(base []byte, path string) (Config, error) {
	cfg, err := Load(base)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunables the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("window.tps", float64(c.Window.TPS))
	positive("physics.max_travel", c.Physics.MaxTravel)
	positive("physics.cell_size", float64(c.Physics.CellSize))
	positive("falling.health_step", c.Falling.HealthStep)
	positive("falling.drain_threshold", c.Falling.DrainThreshold)
	positive("falling.drain_divisor", c.Falling.DrainDivisor)
	positive("falling.actor_radius", c.Falling.ActorRadius)
	positive("falling.teleport_radius", c.Falling.TeleportRadius)
	positive("falling.start_health", c.Falling.StartHealth)
	positive("falling.view_depth", c.Falling.ViewDepth)
	positive("indoctrination.show_step", c.Indoctrination.ShowStep)
	positive("indoctrination.clear_step", c.Indoctrination.ClearStep)
	positive("bloodfield.step", c.Bloodfield.Step)
	positive("cutscene.slide_seconds", c.Cutscene.SlideSeconds)
	positive("audio.sample_rate", float64(c.Audio.SampleRate))
	if c.Indoctrination.Chance < 0 || c.Indoctrination.Chance > 1 {
		errs = append(errs, fmt.Errorf("indoctrination.chance must be within [0, 1], got %v", c.Indoctrination.Chance))
	}
	if c.Falling.Ceiling >= c.Falling.SpawnHeight {
		errs = append(errs, fmt.Errorf("falling.ceiling (%v) must be below spawn_height (%v)", c.Falling.Ceiling, c.Falling.SpawnHeight))
	}
	return errors.Join(errs...)
}
