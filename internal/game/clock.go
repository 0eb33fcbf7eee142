package game

// clockEpsilon absorbs float drift so three 1/60 frames make one 1/20 tick.
const clockEpsilon = 1e-9

// FixedClock turns variable frame time into a whole number of fixed steps
// and carries the remainder to the next frame.
type FixedClock struct {
	Step float64
	acc  float64
}

// NewFixedClock creates a clock ticking every step seconds.
func NewFixedClock(step float64) *FixedClock {
	return &FixedClock{Step: step}
}

// Advance adds dt and returns how many fixed steps are now due.
func (c *FixedClock) Advance(dt float64) int {
	if c.Step <= 0 {
		return 0
	}
	c.acc += dt
	n := 0
	for c.acc+clockEpsilon >= c.Step {
		c.acc -= c.Step
		n++
	}
	return n
}

// Reset drops the carried remainder.
func (c *FixedClock) Reset() { c.acc = 0 }
