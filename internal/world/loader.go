package world

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownCheckpoint is returned when a cycle has no checkpoint entry.
var ErrUnknownCheckpoint = errors.New("unknown checkpoint")

// Checkpoint describes how the tunnel is reconfigured when the cycle
// counter reaches Cycle.
type Checkpoint struct {
	Cycle      uint8  `yaml:"cycle"`
	Background RGB    `yaml:"background"`
	Music      string `yaml:"music"`   // empty keeps the current track
	Respawn    bool   `yaml:"respawn"` // despawn and reseed pickups
	// HideEnvironment hides every Environment cube.
	HideEnvironment bool `yaml:"hide_environment"`
	// VisibleEvery shows every n-th hazard in spawn order, 0 leaves visibility alone.
	VisibleEvery int `yaml:"visible_every"`
	// Spin forces every floor to turn in this direction, 0 keeps parity.
	Spin  float64 `yaml:"spin"`
	Final bool    `yaml:"final"`
}

// Slide is one still of the cutscene.
type Slide struct {
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// Level is the YAML definition of the falling tunnel.
type Level struct {
	Name            string       `yaml:"name"`
	Floors          int          `yaml:"floors"`
	FloorSpacing    float64      `yaml:"floor_spacing"`
	StarPoints      int          `yaml:"star_points"`
	StarStep        int          `yaml:"star_step"`
	TunnelRadius    float64      `yaml:"tunnel_radius"`
	HazardEvery     int          `yaml:"hazard_every"`
	AnimatedCycles  []uint8      `yaml:"animated_cycles"`
	LineCycles      []uint8      `yaml:"line_cycles"`
	LineScale       float64      `yaml:"line_scale"`
	Checkpoints     []Checkpoint `yaml:"checkpoints"`
	Story           []Slide      `yaml:"story"`
	checkpointIndex map[uint8]int
}

// LoadLevel parses a Level from YAML bytes.
func LoadLevel(data []byte) (*Level, error) {
	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if level.Floors <= 0 {
		return nil, fmt.Errorf("level %q: floors must be positive, got %d", level.Name, level.Floors)
	}
	if level.FloorSpacing <= 0 || level.TunnelRadius <= 0 {
		return nil, fmt.Errorf("level %q: floor spacing and tunnel radius must be positive", level.Name)
	}
	if level.StarPoints <= 0 {
		return nil, fmt.Errorf("level %q: star points must be positive, got %d", level.Name, level.StarPoints)
	}
	if level.HazardEvery <= 0 {
		level.HazardEvery = 1
	}
	if level.LineScale == 0 {
		level.LineScale = 1
	}

	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].Cycle < level.Checkpoints[j].Cycle
	})
	level.checkpointIndex = make(map[uint8]int, len(level.Checkpoints))
	for i, cp := range level.Checkpoints {
		if _, dup := level.checkpointIndex[cp.Cycle]; dup {
			return nil, fmt.Errorf("level %q: duplicate checkpoint for cycle %d", level.Name, cp.Cycle)
		}
		if cp.VisibleEvery < 0 {
			return nil, fmt.Errorf("level %q: checkpoint %d: negative visible_every", level.Name, cp.Cycle)
		}
		level.checkpointIndex[cp.Cycle] = i
	}
	return &level, nil
}

// Checkpoint returns the checkpoint entry for a cycle.
func (l *Level) Checkpoint(cycle uint8) (Checkpoint, error) {
	i, ok := l.checkpointIndex[cycle]
	if !ok {
		return Checkpoint{}, fmt.Errorf("cycle %d: %w", cycle, ErrUnknownCheckpoint)
	}
	return l.Checkpoints[i], nil
}

// Animated reports whether floors spin during the given cycle.
func (l *Level) Animated(cycle uint8) bool { return contains(l.AnimatedCycles, cycle) }

// Lines reports whether star lines are drawn during the given cycle.
func (l *Level) Lines(cycle uint8) bool { return contains(l.LineCycles, cycle) }

// SpinFor returns the forced spin of the last checkpoint at or below cycle.
func (l *Level) SpinFor(cycle uint8) float64 {
	spin := 0.0
	for _, cp := range l.Checkpoints {
		if cp.Cycle > cycle {
			break
		}
		spin = cp.Spin
	}
	return spin
}

// HazardLevels returns the ring indices a pickup batch is spawned on.
func (l *Level) HazardLevels() []int {
	levels := make([]int, 0, l.Floors/l.HazardEvery+1)
	for j := 0; j < l.Floors; j += l.HazardEvery {
		levels = append(levels, j)
	}
	return levels
}

func contains(list []uint8, v uint8) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
