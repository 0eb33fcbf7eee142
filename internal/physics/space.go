package physics

import (
	"fmt"
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

// BodyID identifies a body within one Space. IDs are never reused.
type BodyID uint32

// BodyKind selects how a body takes part in the simulation.
type BodyKind uint8

const (
	Dynamic BodyKind = iota // moved by gravity and velocity
	Static                  // never moves on its own
	Sensor                  // like Static, reports overlaps only
)

// ShapeKind is the collision volume of a body.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeCuboid
)

// Body is a collision volume tracked by a Space.
type Body struct {
	ID     BodyID
	Kind   BodyKind
	Shape  ShapeKind
	Layers Layers
	Pos    Vec3
	Vel    Vec3
	Radius float64 // spheres
	Half   Vec3    // cuboids

	shape resolv.IShape
}

// extent returns the half size of the body's axis-aligned bounds.
func (b *Body) extent() Vec3 {
	if b.Shape == ShapeSphere {
		return Vec3{b.Radius, b.Radius, b.Radius}
	}
	return b.Half
}

// Overlaps runs the exact 3D test between two bodies.
func (b *Body) Overlaps(o *Body) bool {
	switch {
	case b.Shape == ShapeSphere && o.Shape == ShapeSphere:
		r := b.Radius + o.Radius
		d := b.Pos.Sub(o.Pos)
		return d.Dot(d) <= r*r
	case b.Shape == ShapeSphere:
		return sphereBox(b.Pos, b.Radius, o.Pos, o.Half)
	case o.Shape == ShapeSphere:
		return sphereBox(o.Pos, o.Radius, b.Pos, b.Half)
	}
	d := b.Pos.Sub(o.Pos)
	return math.Abs(d.X) <= b.Half.X+o.Half.X &&
		math.Abs(d.Y) <= b.Half.Y+o.Half.Y &&
		math.Abs(d.Z) <= b.Half.Z+o.Half.Z
}

func sphereBox(c Vec3, r float64, center, half Vec3) bool {
	closest := Vec3{
		clamp(c.X, center.X-half.X, center.X+half.X),
		clamp(c.Y, center.Y-half.Y, center.Y+half.Y),
		clamp(c.Z, center.Z-half.Z, center.Z+half.Z),
	}
	d := c.Sub(closest)
	return d.Dot(d) <= r*r
}

// Bounds is the region of the world covered by the broadphase grid.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Settings configures a Space.
type Settings struct {
	Gravity   float64 // vertical acceleration, negative is down
	MaxTravel float64 // largest distance a body moves per substep
	CellSize  int
	Bounds    Bounds
}

type pair [2]BodyID

func makePair(a, b BodyID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

var layerTags = map[Layer]resolv.Tags{
	LayerWorld:    resolv.NewTag("world"),
	LayerPlayer:   resolv.NewTag("player"),
	LayerTeleport: resolv.NewTag("teleport"),
}

func tagsOf(l Layer) resolv.Tags {
	var tags resolv.Tags
	for layer, tag := range layerTags {
		if l&layer != 0 {
			tags |= tag
		}
	}
	return tags
}

// Space owns every body of a session. The broadphase is a resolv grid over
// the vertical X/Y slice; exact tests run in 3D.
type Space struct {
	settings Settings
	grid     *resolv.Space
	bodies   map[BodyID]*Body
	byShape  map[resolv.IShape]*Body
	contacts map[pair]struct{}
	nextID   BodyID
}

// NewSpace creates an empty space.
func NewSpace(s Settings) (*Space, error) {
	if s.MaxTravel <= 0 || s.CellSize <= 0 {
		return nil, fmt.Errorf("physics: max travel and cell size must be positive")
	}
	w := int(math.Ceil(s.Bounds.MaxX - s.Bounds.MinX))
	h := int(math.Ceil(s.Bounds.MaxY - s.Bounds.MinY))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("physics: empty bounds %+v", s.Bounds)
	}
	return &Space{
		settings: s,
		grid:     resolv.NewSpace(w, h, s.CellSize, s.CellSize),
		bodies:   make(map[BodyID]*Body),
		byShape:  make(map[resolv.IShape]*Body),
		contacts: make(map[pair]struct{}),
	}, nil
}

// AddSphere adds a spherical body and returns its id.
func (s *Space) AddSphere(kind BodyKind, layers Layers, pos Vec3, radius float64) BodyID {
	return s.add(&Body{Kind: kind, Shape: ShapeSphere, Layers: layers, Pos: pos, Radius: radius})
}

// AddCuboid adds an axis-aligned box body and returns its id.
func (s *Space) AddCuboid(kind BodyKind, layers Layers, pos, half Vec3) BodyID {
	return s.add(&Body{Kind: kind, Shape: ShapeCuboid, Layers: layers, Pos: pos, Half: half})
}

func (s *Space) add(b *Body) BodyID {
	s.nextID++
	b.ID = s.nextID
	ext := b.extent()
	x, y := s.toGrid(b.Pos)
	b.shape = resolv.NewRectangleTopLeft(x-ext.X, y-ext.Y, ext.X*2, ext.Y*2)
	b.shape.Tags().Set(tagsOf(b.Layers.Group))
	s.grid.Add(b.shape)
	s.bodies[b.ID] = b
	s.byShape[b.shape] = b
	return b.ID
}

// Remove deletes a body. Removing an unknown id is a no-op.
func (s *Space) Remove(id BodyID) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	s.grid.Remove(b.shape)
	delete(s.byShape, b.shape)
	delete(s.bodies, id)
	for p := range s.contacts {
		if p[0] == id || p[1] == id {
			delete(s.contacts, p)
		}
	}
}

// Body returns the body for id, or nil.
func (s *Space) Body(id BodyID) *Body {
	return s.bodies[id]
}

// Len returns the number of bodies.
func (s *Space) Len() int { return len(s.bodies) }

// SetPosition teleports a body.
func (s *Space) SetPosition(id BodyID, pos Vec3) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	b.Pos = pos
	s.sync(b)
}

func (s *Space) toGrid(p Vec3) (float64, float64) {
	// resolv's Y grows downwards; flip so higher bodies sit in lower rows.
	return p.X - s.settings.Bounds.MinX, s.settings.Bounds.MaxY - p.Y
}

func (s *Space) sync(b *Body) {
	x, y := s.toGrid(b.Pos)
	b.shape.SetPosition(x, y)
}

// dynamics returns dynamic bodies in id order.
func (s *Space) dynamics() []*Body {
	var out []*Body
	for _, b := range s.bodies {
		if b.Kind == Dynamic {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Step integrates dynamic bodies over dt and returns the pairs that began
// overlapping. Motion is split into substeps no longer than MaxTravel so a
// fast body cannot skip a thin sensor.
func (s *Space) Step(dt float64) []CollisionEvent {
	var events []CollisionEvent
	touching := make(map[pair]struct{})
	for _, b := range s.dynamics() {
		b.Vel.Y += s.settings.Gravity * dt
		travel := b.Vel.Scale(dt).Len()
		steps := int(math.Ceil(travel / s.settings.MaxTravel))
		if steps < 1 {
			steps = 1
		}
		delta := b.Vel.Scale(dt / float64(steps))
		for i := 0; i < steps; i++ {
			b.Pos = b.Pos.Add(delta)
			s.sync(b)
			events = s.detect(b, touching, events)
		}
	}
	for p := range s.contacts {
		if _, ok := touching[p]; ok {
			continue
		}
		// Pairs between non-dynamic bodies are not re-tested and stay as they are.
		a, b := s.bodies[p[0]], s.bodies[p[1]]
		if a != nil && b != nil && a.Kind != Dynamic && b.Kind != Dynamic {
			continue
		}
		delete(s.contacts, p)
	}
	return events
}

// detect uses the resolv grid only to gather candidates near b. The exact
// test decides contact, so a body fully inside a larger one still counts.
func (s *Space) detect(b *Body, touching map[pair]struct{}, events []CollisionEvent) []CollisionEvent {
	mask := tagsOf(b.Layers.Mask)
	if mask == 0 {
		return events
	}
	b.shape.SelectTouchingCells(0).FilterShapes().ByTags(mask).ForEach(func(shape resolv.IShape) bool {
		other, ok := s.byShape[shape]
		if !ok || other.ID == b.ID || !b.Layers.Interacts(other.Layers) || !b.Overlaps(other) {
			return true
		}
		p := makePair(b.ID, other.ID)
		touching[p] = struct{}{}
		if _, seen := s.contacts[p]; seen {
			return true
		}
		s.contacts[p] = struct{}{}
		events = append(events, CollisionEvent{
			Bodies: [2]BodyID{b.ID, other.ID},
			Layers: [2]Layers{b.Layers, other.Layers},
		})
		return true
	})
	return events
}
