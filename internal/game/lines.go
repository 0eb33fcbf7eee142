package game

import (
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Line is a coloured 3D segment drawn over the scene.
type Line struct {
	From, To physics.Vec3
	Color    world.RGBA
	TTL      float64 // seconds left; zero lives for the current frame only
}

// DebugLines is the transient line list both the menu and the tunnel draw into.
type DebugLines struct {
	Lines []Line
}

func NewDebugLines() *DebugLines { return &DebugLines{} }

// Add queues a line for ttl seconds.
func (d *DebugLines) Add(from, to physics.Vec3, color world.RGBA, ttl float64) {
	d.Lines = append(d.Lines, Line{From: from, To: to, Color: color, TTL: ttl})
}

// Update ages the lines and removes expired ones.
func (d *DebugLines) Update(dt float64) {
	kept := d.Lines[:0]
	for _, l := range d.Lines {
		l.TTL -= dt
		if l.TTL > 0 {
			kept = append(kept, l)
		}
	}
	d.Lines = kept
}

func (d *DebugLines) Clear() { d.Lines = d.Lines[:0] }
