package game

import (
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// CubeView is a cube ready to be drawn.
type CubeView struct {
	Pos        physics.Vec3
	Size       float64
	Color      world.RGBA
	RotX, RotY float64
	Kind       world.HazardKind
}

// FloorView is a ring ready to be drawn.
type FloorView struct {
	Y, Angle float64
	Color    world.RGBA
}

// FallingView is a read-only snapshot of the tunnel near the actor.
type FallingView struct {
	Actor          physics.Vec3
	Health         float64
	Speed          float64 // fall speed, positive going down
	Cycle          uint8
	Elapsed        float64
	Teleport       physics.Vec3
	TeleportRadius float64
	TunnelRadius   float64
	Floors         []FloorView
	Cubes          []CubeView
}

// View collects visible geometry within the view depth below the actor.
func (s *Session) View() FallingView {
	actor, body := s.mustActor()
	top, bottom := s.viewRange()
	tp := s.positions.Get(s.teleport)

	v := FallingView{
		Actor:          body.Pos,
		Health:         actor.Health,
		Speed:          -body.Vel.Y,
		Cycle:          s.Cycle.Number,
		Elapsed:        s.elapsed,
		Teleport:       tp.Vec(),
		TeleportRadius: s.cfg.TeleportRadius,
		TunnelRadius:   s.level.TunnelRadius,
	}
	inView := func(y float64) bool { return y >= bottom && y <= top }

	fq := s.floorFilter.Query()
	for fq.Next() {
		p, f := fq.Get()
		if inView(p.Y) {
			v.Floors = append(v.Floors, FloorView{Y: p.Y, Angle: f.Angle, Color: world.RingColor(f.Level)})
		}
	}

	eq := s.envFilter.Query()
	for eq.Next() {
		p, h, t := eq.Get()
		if !h.Visible || !inView(p.Y) {
			continue
		}
		_, floor := s.floorMap.Get(s.floors[h.Ring])
		pos := p.Vec().RotateY(floor.Angle)
		pos.Y = p.Y
		v.Cubes = append(v.Cubes, CubeView{
			Pos:   pos,
			Size:  world.Template(h.Kind).Size,
			Color: world.RingColor(h.Ring),
			RotX:  t.X,
			RotY:  t.Y + floor.Angle,
			Kind:  h.Kind,
		})
	}

	pq := s.pickupFilter.Query()
	for pq.Next() {
		p, h, _ := pq.Get()
		if !h.Visible || !inView(p.Y) {
			continue
		}
		tpl := world.Template(h.Kind)
		v.Cubes = append(v.Cubes, CubeView{Pos: p.Vec(), Size: tpl.Size, Color: tpl.Color, Kind: h.Kind})
	}
	return v
}

// Stats are the counters shown by the inspector.
type Stats struct {
	Entities int
	Bodies   int
	Pickups  int
	Visible  int
}

func (s *Session) Stats() Stats {
	st := Stats{Bodies: s.Space.Len()}
	q := s.allFilter.Query()
	for q.Next() {
		st.Entities++
	}
	hq := s.hazardFilter.Query()
	for hq.Next() {
		_, h := hq.Get()
		if h.Visible {
			st.Visible++
		}
		if h.Kind.Pickup() {
			st.Pickups++
		}
	}
	return st
}

// FallingScreen runs a Session while the FallingGame state is active.
type FallingScreen struct {
	Session *Session
}

func (f *FallingScreen) Enter(ctx *Context) error {
	s, err := NewSession(ctx)
	if err != nil {
		return err
	}
	f.Session = s
	ctx.Score = Score{}
	ctx.ClearColor = world.RGB{}
	return nil
}

func (f *FallingScreen) Update(ctx *Context, dt float64) error {
	if f.Session == nil {
		return nil
	}
	f.Session.Update(ctx, dt)
	return nil
}

func (f *FallingScreen) Exit(ctx *Context) {
	if f.Session != nil {
		f.Session.Close()
		f.Session = nil
	}
	ctx.Audio.Stop()
	ctx.Audio.SetPlaybackRate(1)
	ctx.Indoctrination.Reset()
	ctx.Lines.Clear()
	ctx.Messages.Clear()
	ctx.ClearColor = world.RGB{}
}
