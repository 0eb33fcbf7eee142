package game

import (
	"math"
	"testing"
)

func TestHealthScenario(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	body := s.ActorBody()

	body.Vel.Y = -150
	s.tickHealth(ctx)
	if a := s.Actor(); !near(a.Velocity, -75) || !near(a.Health, 99.5) {
		t.Fatalf("after tick 1: velocity=%v health=%v", a.Velocity, a.Health)
	}
	body.Vel.Y = -150
	s.tickHealth(ctx)
	a := s.Actor()
	if !near(a.Velocity, -112.5) {
		t.Errorf("velocity = %v, want -112.5", a.Velocity)
	}
	if !near(a.Health, 99) {
		t.Errorf("health = %v, want 99", a.Health)
	}
	if audio.lastRate() != 1 {
		t.Errorf("playback rate = %v, want 1 while draining", audio.lastRate())
	}
}

func TestScreamCooldown(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	body := s.ActorBody()
	body.Vel.Y = -300

	// Full health: draining, but nothing accumulated yet.
	s.tickHealth(ctx)
	if audio.count(ClipScream) != 0 {
		t.Fatal("screamed at full health")
	}

	s.tickHealth(ctx)
	if audio.count(ClipScream) != 1 || !ctx.Indoctrination.Enabled() {
		t.Fatalf("screams=%d indoctrination=%v", audio.count(ClipScream), ctx.Indoctrination.Enabled())
	}

	s.elapsed += 1.9
	s.tickHealth(ctx)
	if audio.count(ClipScream) != 1 {
		t.Errorf("screamed again inside cooldown")
	}

	s.elapsed += 0.2
	s.tickHealth(ctx)
	if audio.count(ClipScream) != 2 {
		t.Errorf("screams = %d after cooldown, want 2", audio.count(ClipScream))
	}

	body.Vel.Y = -40
	s.tickHealth(ctx)
	if ctx.Indoctrination.Enabled() {
		t.Error("indoctrination still on below the drain threshold")
	}
	if !near(audio.lastRate(), 0.4) {
		t.Errorf("playback rate = %v, want 0.4", audio.lastRate())
	}
}

func TestPlaybackRateCapped(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	s.ActorBody().Vel.Y = -100
	s.tickHealth(ctx)
	if audio.lastRate() != 1 {
		t.Errorf("rate at threshold = %v, want 1", audio.lastRate())
	}
	if s.Actor().Health != 100 {
		t.Errorf("drained at exactly the threshold")
	}
}

func TestGameOverRequestedOnce(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	ctx.States.Register(StateFallingGame, &FallingScreen{Session: s})
	ctx.States.current = StateFallingGame

	s.actors.Get(s.actor).Health = 0.5
	body := s.ActorBody()
	body.Vel.Y = -400

	for i := 0; i < 5; i++ {
		body.Vel.Y = -400
		s.tickHealth(ctx)
		if i == 0 {
			if to, ok := ctx.States.Pending(); !ok || to != StateGameOver {
				t.Fatalf("pending = %v, %v; want game-over", to, ok)
			}
		}
	}
	if !s.gameOverRequested {
		t.Fatal("game over not recorded")
	}

	// Apply once; later ticks on a dead actor must not queue anything new.
	ctx.States.screens[StateFallingGame] = nil
	if err := ctx.States.Apply(ctx); err != nil {
		t.Fatal(err)
	}
	s.tickHealth(ctx)
	if _, ok := ctx.States.Pending(); ok {
		t.Error("game over requested twice")
	}
	if ctx.States.Transitions != 1 {
		t.Errorf("transitions = %d, want 1", ctx.States.Transitions)
	}
}

func TestMissingActorPanics(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	s.ECS.RemoveEntity(s.actor)
	defer func() {
		if recover() == nil {
			t.Error("expected panic without an actor")
		}
	}()
	s.tickHealth(ctx)
}

func TestDrainIsFrameRateIndependent(t *testing.T) {
	run := func(fps float64) float64 {
		s, ctx, _ := newTestSession(t)
		// Keep the actor in free fall well above the tunnel so nothing collides.
		frames := int(fps)
		for i := 0; i < frames; i++ {
			s.ActorBody().Vel.Y = -200
			for n := s.health.Advance(1 / fps); n > 0; n-- {
				s.tickHealth(ctx)
			}
		}
		return s.Actor().Health
	}
	h30, h144 := run(30), run(144)
	if math.Abs(h30-h144) > 1e-6 {
		t.Errorf("health after 1s: 30fps=%v 144fps=%v", h30, h144)
	}
}
