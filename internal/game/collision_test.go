package game

import (
	"testing"

	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

func hazardEvent(s *Session, id physics.BodyID, swap bool) physics.CollisionEvent {
	actor := physics.NewLayers(physics.LayerPlayer, physics.LayerWorld, physics.LayerTeleport)
	hazard := physics.NewLayers(physics.LayerWorld, physics.LayerPlayer)
	ev := physics.CollisionEvent{
		Bodies: [2]physics.BodyID{s.actorBody, id},
		Layers: [2]physics.Layers{actor, hazard},
	}
	if swap {
		ev.Bodies[0], ev.Bodies[1] = ev.Bodies[1], ev.Bodies[0]
		ev.Layers[0], ev.Layers[1] = ev.Layers[1], ev.Layers[0]
	}
	return ev
}

func teleportEvent(s *Session) physics.CollisionEvent {
	return physics.CollisionEvent{
		Bodies: [2]physics.BodyID{s.teleportBody, s.actorBody},
		Layers: [2]physics.Layers{
			physics.NewLayers(physics.LayerTeleport, physics.LayerPlayer),
			physics.NewLayers(physics.LayerPlayer, physics.LayerWorld, physics.LayerTeleport),
		},
	}
}

func TestPickupEffects(t *testing.T) {
	tests := []struct {
		kind           world.HazardKind
		dVelocity      float64
		dHealth        float64
		swapEventOrder bool
	}{
		{world.HazardBrake, 40, 0, false},
		{world.HazardHealth, 0, 20, true},
		{world.HazardSpeed, -40, 0, false},
		{world.HazardSpeed, -40, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, ctx, audio := newTestSession(t)
			s.actors.Get(s.actor).Velocity = -120
			before := s.Actor()
			id := s.addPickup(tt.kind, Position{Y: 500}, 50)

			s.respond(ctx, []physics.CollisionEvent{hazardEvent(s, id, tt.swapEventOrder)})

			after := s.Actor()
			if !near(after.Velocity-before.Velocity, tt.dVelocity) {
				t.Errorf("velocity delta = %v, want %v", after.Velocity-before.Velocity, tt.dVelocity)
			}
			if !near(after.Health-before.Health, tt.dHealth) {
				t.Errorf("health delta = %v, want %v", after.Health-before.Health, tt.dHealth)
			}
			if got := s.ActorBody().Vel.Y; !near(got, after.Velocity) {
				t.Errorf("body vy = %v, want the velocity accumulator %v", got, after.Velocity)
			}
			if s.Space.Body(id) != nil {
				t.Error("pickup body still in space")
			}
			if audio.count(ClipBoxHit) != 1 || audio.lastRate() != 1 {
				t.Errorf("box-hit=%d rate=%v", audio.count(ClipBoxHit), audio.lastRate())
			}
		})
	}
}

func TestDuplicatePickupEventsApplyOnce(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	id := s.addPickup(world.HazardHealth, Position{Y: 700}, 70)
	other := s.addPickup(world.HazardBrake, Position{Y: 710}, 71)
	start := s.Actor()

	s.respond(ctx, []physics.CollisionEvent{
		hazardEvent(s, id, false),
		hazardEvent(s, id, true),
		hazardEvent(s, other, false),
		hazardEvent(s, 9999, false),
	})

	a := s.Actor()
	if !near(a.Health-start.Health, 20) {
		t.Errorf("health delta = %v, want 20", a.Health-start.Health)
	}
	if !near(a.Velocity-start.Velocity, 40) {
		t.Errorf("velocity delta = %v, want 40", a.Velocity-start.Velocity)
	}
	if audio.count(ClipBoxHit) != 2 {
		t.Errorf("box-hit played %d times, want 2", audio.count(ClipBoxHit))
	}

	// A later frame naming the consumed body changes nothing.
	s.respond(ctx, []physics.CollisionEvent{hazardEvent(s, id, false)})
	if s.Actor().Health != a.Health {
		t.Error("consumed hazard applied twice")
	}
}

func TestTeleportAdvancesCycle(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	body := s.ActorBody()
	for i := 1; i <= 7; i++ {
		body.Vel.Y = -55
		s.respond(ctx, []physics.CollisionEvent{teleportEvent(s)})
		if int(s.Cycle.Number) != i {
			t.Fatalf("cycle = %d after %d teleports", s.Cycle.Number, i)
		}
		if body.Pos.Y != 3000 || s.positions.Get(s.actor).Y != 3000 {
			t.Errorf("actor y = %v, want ceiling", body.Pos.Y)
		}
		wantVy := 0.0
		if i >= 6 {
			wantVy = -55
		}
		if body.Vel.Y != wantVy {
			t.Errorf("cycle %d: vy = %v, want %v", i, body.Vel.Y, wantVy)
		}
	}
}

func TestTeleportFromFiveKeepsVelocity(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	s.Cycle.Number = 5
	s.Cycle.TakeChanged()
	body := s.ActorBody()
	body.Vel.Y = -180

	s.respond(ctx, []physics.CollisionEvent{teleportEvent(s)})
	if s.Cycle.Number != 6 || body.Pos.Y != 3000 || body.Vel.Y != -180 {
		t.Fatalf("cycle=%d y=%v vy=%v", s.Cycle.Number, body.Pos.Y, body.Vel.Y)
	}

	s.dispatchCycle(ctx)
	st := s.Stats()
	total := countHazards(s)
	want := (total + 6) / 7
	if st.Visible != want {
		t.Errorf("visible = %d, want every 7th of %d = %d", st.Visible, total, want)
	}

	// Edge triggered: a second dispatch at the same cycle leaves visibility alone.
	s.showAll()
	s.dispatchCycle(ctx)
	if s.Stats().Visible != total {
		t.Error("cycle 6 pattern applied twice")
	}
}

func countHazards(s *Session) int {
	n := 0
	q := s.hazardFilter.Query()
	for q.Next() {
		n++
	}
	return n
}

func (s *Session) showAll() {
	q := s.hazardFilter.Query()
	for q.Next() {
		_, h := q.Get()
		h.Visible = true
	}
}

func TestOffAxisFallReachesTeleport(t *testing.T) {
	for _, x := range []float64{0, 3, 5, 7} {
		s, ctx, _ := newTestSession(t)
		s.despawnPickups()
		s.Space.SetPosition(s.actorBody, physics.Vec3{X: x, Y: 40})
		body := s.ActorBody()
		body.Vel.Y = -60

		for i := 0; i < 120 && s.Cycle.Number == 0; i++ {
			s.Update(ctx, 1.0/60)
		}
		if s.Cycle.Number != 1 {
			t.Errorf("x=%v: cycle = %d, actor y = %v; want cycle 1", x, s.Cycle.Number, body.Pos.Y)
			continue
		}
		if body.Pos.Y != 3000 {
			t.Errorf("x=%v: actor y = %v, want ceiling", x, body.Pos.Y)
		}
	}
}
