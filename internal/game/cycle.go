package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/mlange-42/ark/ecs"
)

// CycleState is the stage counter of a session. It only ever grows.
type CycleState struct {
	Number  uint8
	changed bool
}

// NewCycleState starts at cycle 0, flagged as changed so the first
// checkpoint runs on the first frame.
func NewCycleState() CycleState {
	return CycleState{changed: true}
}

// Advance moves to the next cycle.
func (c *CycleState) Advance() {
	if c.Number < math.MaxUint8 {
		c.Number++
	}
	c.changed = true
}

// TakeChanged reports whether the cycle changed since the last call.
func (c *CycleState) TakeChanged() bool {
	ch := c.changed
	c.changed = false
	return ch
}

// dispatchCycle reconfigures the tunnel on the frame the cycle changed.
func (s *Session) dispatchCycle(ctx *Context) {
	if !s.Cycle.TakeChanged() {
		return
	}
	cp, err := s.level.Checkpoint(s.Cycle.Number)
	if err != nil {
		// Cycles between checkpoints leave the tunnel as it is.
		return
	}
	s.log.Info().
		Uint8("cycle", cp.Cycle).
		Bool("respawn", cp.Respawn).
		Int("visible_every", cp.VisibleEvery).
		Msg("checkpoint")

	ctx.ClearColor = cp.Background
	if cp.Music != "" {
		ctx.Audio.Stop()
		ctx.Audio.PlayLooped(cp.Music)
	}
	if cp.Respawn {
		n := s.despawnPickups()
		s.spawnPickups(ctx.Rand)
		s.log.Debug().Int("despawned", n).Msg("pickups respawned")
	}
	if cp.HideEnvironment {
		s.hideEnvironment()
	}
	if cp.VisibleEvery > 0 {
		s.showEvery(cp.VisibleEvery)
	}
	if cp.Final {
		ctx.Score = Score{FinalTime: s.elapsed, Completed: true}
		ctx.Messages.Add(fmt.Sprintf("confessed in %.1fs", s.elapsed), MsgCycle)
		ctx.request(StateGameEnd)
	}
}

func (s *Session) hideEnvironment() {
	q := s.envFilter.Query()
	for q.Next() {
		_, h, _ := q.Get()
		h.Visible = false
	}
}

// showEvery makes every n-th hazard in spawn order visible and hides the rest.
func (s *Session) showEvery(n int) {
	type ordered struct {
		seq int
		e   ecs.Entity
	}
	var all []ordered
	q := s.hazardFilter.Query()
	for q.Next() {
		_, h := q.Get()
		all = append(all, ordered{h.Seq, q.Entity()})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	for i, o := range all {
		s.hazards.Get(o.e).Visible = i%n == 0
	}
}
