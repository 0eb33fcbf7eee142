package game

import "math/rand/v2"

// Bloodfield holds the uniforms of the menu background shader. Time is
// only refreshed on a fixed cadence, which gives the effect its stutter.
type Bloodfield struct {
	Time float32
	Seed float32

	elapsed float64
	clock   *FixedClock
}

func NewBloodfield(step float64) *Bloodfield {
	return &Bloodfield{clock: NewFixedClock(step)}
}

// Reseed picks a new seed.
func (b *Bloodfield) Reseed(rng *rand.Rand) { b.Seed = rng.Float32() }

func (b *Bloodfield) Update(dt float64) {
	b.elapsed += dt
	if b.clock.Advance(dt) > 0 {
		b.Time = float32(b.elapsed)
	}
}
