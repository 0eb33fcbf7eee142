package game

import "math"

// tickHealth runs one fixed step of the health and velocity model.
func (s *Session) tickHealth(ctx *Context) {
	actor, body := s.mustActor()
	measured := body.Vel.Y
	actor.Velocity = (actor.Velocity + measured) / 2

	speed := math.Abs(measured)
	threshold := s.cfg.DrainThreshold
	if speed > threshold {
		damaged := actor.Health < s.cfg.StartHealth
		actor.Health -= speed / threshold / s.cfg.DrainDivisor
		ctx.Audio.SetPlaybackRate(1)
		if damaged && s.screamReady(actor) {
			actor.ScreamLastPlay = s.elapsed
			actor.HasScreamed = true
			ctx.Audio.Play(ClipScream)
			ctx.Indoctrination.SetEnabled(true)
		}
	} else {
		ctx.Audio.SetPlaybackRate(math.Min(speed/threshold, 1))
		ctx.Indoctrination.SetEnabled(false)
	}

	if actor.Health <= 0 && !s.gameOverRequested {
		s.gameOverRequested = true
		s.log.Info().Float64("elapsed", s.elapsed).Msg("actor died")
		ctx.request(StateGameOver)
	}
}

func (s *Session) screamReady(a *Actor) bool {
	return !a.HasScreamed || s.elapsed-a.ScreamLastPlay >= s.cfg.ScreamCooldown
}
