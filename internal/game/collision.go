package game

import (
	"fmt"

	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// respond applies the gameplay effect of each begin-contact event. Events
// are resolved one by one; an event naming a body that an earlier event
// already consumed is skipped.
func (s *Session) respond(ctx *Context, events []physics.CollisionEvent) {
	for _, ev := range events {
		if id, ok := ev.PlayerWorld(); ok {
			s.pickup(ctx, id)
			continue
		}
		if _, ok := ev.PlayerTeleport(); ok {
			s.teleportActor(ctx)
		}
	}
}

// pickup applies a hazard's effect and despawns it.
func (s *Session) pickup(ctx *Context, id physics.BodyID) {
	e, ok := s.bodies[id]
	if !ok || !s.ECS.Alive(e) || !s.hazards.Has(e) {
		return
	}
	hz := s.hazards.Get(e)
	if !hz.Kind.Pickup() {
		return
	}
	tpl := world.Template(hz.Kind)
	actor, body := s.mustActor()
	actor.Velocity += tpl.VelocityDelta
	actor.Health += tpl.HealthDelta

	kind := hz.Kind
	s.Space.Remove(id)
	delete(s.bodies, id)
	s.ECS.RemoveEntity(e)

	// The pickup overrides the fall speed rather than nudging it.
	body.Vel.Y = actor.Velocity

	ctx.Audio.SetPlaybackRate(1)
	ctx.Audio.Play(ClipBoxHit)
	ctx.Messages.Add(pickupMessage(kind, tpl), MsgPickup)
	s.log.Debug().
		Stringer("kind", kind).
		Float64("velocity", actor.Velocity).
		Float64("health", actor.Health).
		Msg("pickup")
}

func pickupMessage(kind world.HazardKind, tpl world.HazardTemplate) string {
	switch {
	case tpl.HealthDelta != 0:
		return fmt.Sprintf("%s %+.0f health", kind, tpl.HealthDelta)
	default:
		return fmt.Sprintf("%s %+.0f speed", kind, -tpl.VelocityDelta)
	}
}

// teleportActor advances the cycle and lifts the actor back to the ceiling.
func (s *Session) teleportActor(ctx *Context) {
	s.Cycle.Advance()
	_, body := s.mustActor()
	pos := body.Pos
	pos.Y = s.cfg.Ceiling
	s.Space.SetPosition(s.actorBody, pos)
	s.syncActor()
	if s.Cycle.Number < s.cfg.VelocityResetBelow {
		body.Vel.Y = 0
	}
	ctx.Messages.Add(fmt.Sprintf("cycle %d", s.Cycle.Number), MsgCycle)
	s.log.Info().
		Uint8("cycle", s.Cycle.Number).
		Float64("vy", body.Vel.Y).
		Msg("teleport")
}
