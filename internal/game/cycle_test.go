package game

import (
	"testing"

	"github.com/cvltovbiboran/falling/internal/world"
)

func TestCycleStateEdge(t *testing.T) {
	c := NewCycleState()
	if !c.TakeChanged() {
		t.Error("initial cycle should be flagged changed")
	}
	if c.TakeChanged() {
		t.Error("TakeChanged should consume the edge")
	}
	for i := 1; i <= 300; i++ {
		prev := c.Number
		c.Advance()
		if c.Number < prev {
			t.Fatalf("cycle decreased from %d to %d", prev, c.Number)
		}
		if !c.TakeChanged() {
			t.Fatalf("advance %d not flagged", i)
		}
	}
}

func jumpTo(s *Session, cycle uint8) {
	s.Cycle.Number = cycle
	s.Cycle.changed = true
}

func pickupSeqs(s *Session) map[int]bool {
	seqs := map[int]bool{}
	q := s.pickupFilter.Query()
	for q.Next() {
		_, h, _ := q.Get()
		seqs[h.Seq] = true
	}
	return seqs
}

func TestCheckpointZero(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	ctx.ClearColor = world.RGB{R: 1}
	s.dispatchCycle(ctx)
	if ctx.ClearColor != (world.RGB{}) {
		t.Errorf("clear colour = %+v, want black", ctx.ClearColor)
	}
	if audio.stops != 1 || len(audio.looped) != 1 || audio.looped[0] != ClipFalling1 {
		t.Errorf("stops=%d looped=%v", audio.stops, audio.looped)
	}
}

func TestCheckpointTwo(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	s.dispatchCycle(ctx)
	before := pickupSeqs(s)

	jumpTo(s, 2)
	s.dispatchCycle(ctx)

	if ctx.ClearColor != (world.RGB{R: 1, G: 1, B: 1}) {
		t.Errorf("clear colour = %+v, want white", ctx.ClearColor)
	}
	after := pickupSeqs(s)
	if len(after) != len(before) || len(after) != 60 {
		t.Errorf("pickups before=%d after=%d, want 60", len(before), len(after))
	}
	for seq := range after {
		if before[seq] {
			t.Fatalf("pickup %d survived the respawn", seq)
		}
	}
	q := s.envFilter.Query()
	for q.Next() {
		_, h, _ := q.Get()
		if h.Visible {
			t.Fatal("environment cube still visible at cycle 2")
		}
	}
	if len(audio.looped) != 1 {
		t.Errorf("music changed at cycle 2: %v", audio.looped)
	}
}

func TestCheckpointFour(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	jumpTo(s, 4)
	s.dispatchCycle(ctx)
	if len(audio.looped) != 1 || audio.looped[0] != ClipFalling2 {
		t.Errorf("looped = %v, want falling-2", audio.looped)
	}
	if ctx.ClearColor != (world.RGB{G: 0.1, B: 0.1}) {
		t.Errorf("clear colour = %+v", ctx.ClearColor)
	}
	total := countHazards(s)
	if got, want := s.Stats().Visible, (total+4)/5; got != want {
		t.Errorf("visible = %d, want %d", got, want)
	}
}

func TestOddCycleDoesNothing(t *testing.T) {
	s, ctx, audio := newTestSession(t)
	s.dispatchCycle(ctx)
	jumpTo(s, 3)
	s.dispatchCycle(ctx)
	if audio.stops != 1 || ctx.ClearColor != (world.RGB{}) {
		t.Errorf("cycle 3 changed the scene: stops=%d clear=%+v", audio.stops, ctx.ClearColor)
	}
}

func TestFinalCheckpoint(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	ctx.States.current = StateFallingGame
	s.elapsed = 93.5
	jumpTo(s, 8)
	s.dispatchCycle(ctx)
	if !ctx.Score.Completed || ctx.Score.FinalTime != 93.5 {
		t.Errorf("score = %+v", ctx.Score)
	}
	if to, ok := ctx.States.Pending(); !ok || to != StateGameEnd {
		t.Errorf("pending = %v, %v; want game-end", to, ok)
	}
}

func TestAnimateSpinsFloors(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	s.animate(ctx, 0.5)
	_, even := s.floorMap.Get(s.floors[0])
	_, odd := s.floorMap.Get(s.floors[1])
	if !near(even.Angle, -0.5) || !near(odd.Angle, 0.5) {
		t.Errorf("angles = %v %v", even.Angle, odd.Angle)
	}

	jumpTo(s, 4)
	s.animate(ctx, 0.5)
	if !near(odd.Angle, 0) {
		t.Errorf("odd floor at cycle 4 = %v, want turned back to 0", odd.Angle)
	}

	jumpTo(s, 6)
	s.animate(ctx, 0.5)
	if !near(even.Angle, -1) {
		t.Errorf("floors moved at cycle 6: %v", even.Angle)
	}
	if len(ctx.Lines.Lines) == 0 {
		t.Error("no star lines at cycle 6")
	}
}
