// Package physics is a small sensor-oriented collision world: gravity on
// dynamic bodies, exact sphere and box overlap tests, and a stream of
// begin-contact events tagged with collision layers.
package physics

// Layer is a collision layer bit. Layers are mutually exclusive flags.
type Layer uint8

const (
	LayerWorld Layer = 1 << iota
	LayerPlayer
	LayerTeleport
)

func (l Layer) String() string {
	switch l {
	case LayerWorld:
		return "world"
	case LayerPlayer:
		return "player"
	case LayerTeleport:
		return "teleport"
	case 0:
		return "none"
	}
	return "mixed"
}

// Layers pairs the layers a body belongs to with the layers it detects.
type Layers struct {
	Group Layer
	Mask  Layer
}

// NewLayers builds a Layers value from one group and any number of masks.
func NewLayers(group Layer, masks ...Layer) Layers {
	l := Layers{Group: group}
	for _, m := range masks {
		l.Mask |= m
	}
	return l
}

// InGroup reports whether the body belongs to layer.
func (l Layers) InGroup(layer Layer) bool { return l.Group&layer != 0 }

// Interacts reports whether two bodies detect each other. Both sides must
// see the other's group.
func (l Layers) Interacts(other Layers) bool {
	return l.Group&other.Mask != 0 && other.Group&l.Mask != 0
}

// only reports whether l belongs to want and not to exclude.
func (l Layers) only(want, exclude Layer) bool {
	return l.InGroup(want) && !l.InGroup(exclude)
}

// classify finds the index of the side tagged target-only when the other
// side is tagged Player-only. The test is commutative.
func classify(target Layer, a, b Layers) (int, bool) {
	switch {
	case a.only(LayerPlayer, target) && b.only(target, LayerPlayer):
		return 1, true
	case b.only(LayerPlayer, target) && a.only(target, LayerPlayer):
		return 0, true
	}
	return -1, false
}

// IsPlayerWorld reports whether one side is Player-only and the other World-only.
func IsPlayerWorld(a, b Layers) bool {
	_, ok := classify(LayerWorld, a, b)
	return ok
}

// IsPlayerTeleport reports whether one side is Player-only and the other Teleport-only.
func IsPlayerTeleport(a, b Layers) bool {
	_, ok := classify(LayerTeleport, a, b)
	return ok
}

// CollisionEvent is emitted once when two interacting bodies start to overlap.
// The order of the two sides is unspecified.
type CollisionEvent struct {
	Bodies [2]BodyID
	Layers [2]Layers
}

// PlayerWorld returns the non-player side of a player/world event.
func (e CollisionEvent) PlayerWorld() (BodyID, bool) {
	return e.other(LayerWorld)
}

// PlayerTeleport returns the non-player side of a player/teleport event.
func (e CollisionEvent) PlayerTeleport() (BodyID, bool) {
	return e.other(LayerTeleport)
}

func (e CollisionEvent) other(target Layer) (BodyID, bool) {
	i, ok := classify(target, e.Layers[0], e.Layers[1])
	if !ok {
		return 0, false
	}
	return e.Bodies[i], true
}
