package game

import (
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Position is a world-space location. Environment cubes store their
// position relative to the unrotated floor ring they belong to.
type Position struct {
	X, Y, Z float64
}

func (p Position) Vec() physics.Vec3 { return physics.Vec3{X: p.X, Y: p.Y, Z: p.Z} }

// Actor is the falling player.
type Actor struct {
	Health float64
	// Velocity is the smoothed vertical velocity, negative while falling.
	Velocity float64
	// ScreamLastPlay is the session time of the last scream, valid once
	// HasScreamed is set.
	ScreamLastPlay float64
	HasScreamed    bool
}

// Hazard is a tunnel cube.
type Hazard struct {
	Kind    world.HazardKind
	Seq     int // spawn order within the session
	Ring    int
	Visible bool
}

// Tumble is the self rotation of an Environment cube, in radians.
type Tumble struct {
	X, Y float64
}

// Floor is one decorative ring.
type Floor struct {
	Level     int
	Direction float64 // -1 or +1
	Angle     float64
}

// Teleport marks the sensor at the bottom of the tunnel.
type Teleport struct {
	Radius float64
}

// Body links an entity to its physics body.
type Body struct {
	ID physics.BodyID
}
