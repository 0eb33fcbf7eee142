package world

import "math"

// RGB is an opaque colour with components in [0, 1].
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// RGBA is a colour with alpha, components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Opaque drops alpha.
func (c RGBA) Opaque() RGB { return RGB{c.R, c.G, c.B} }

// Even and odd rings use slightly different reds.
var (
	RingColorEven = RGBA{0.8, 0.1, 0.1, 1}
	RingColorOdd  = RGBA{0.8, 0.2, 0.1, 1}
)

// RingSlot is the local placement of one scenery cube on a ring.
type RingSlot struct {
	X, Z   float64
	Tumble float64 // initial rotation offset of the cube itself
}

// RingSlots returns the cube placements of a floor ring.
func (l *Level) RingSlots() []RingSlot {
	return StarSlots(l.StarPoints, l.TunnelRadius)
}

// StarSlots places two cubes on every point of a star of the given radius,
// the second turned by a quarter of pi.
func StarSlots(points int, radius float64) []RingSlot {
	slots := make([]RingSlot, 0, points*2)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi / float64(points) * float64(i)
		x := math.Sin(angle) * radius
		z := math.Cos(angle) * radius
		slots = append(slots, RingSlot{X: x, Z: z}, RingSlot{X: x, Z: z, Tumble: math.Pi / 4})
	}
	return slots
}

// RingY returns the height of floor ring j.
func (l *Level) RingY(j int) float64 {
	return float64(j) * l.FloorSpacing
}

// RingDirection returns the spin direction of ring j: even rings turn
// clockwise (-1), odd rings counter-clockwise (+1).
func RingDirection(j int) float64 {
	if j%2 == 0 {
		return -1
	}
	return 1
}

// RingColor returns the scenery colour for ring j.
func RingColor(j int) RGBA {
	if j%2 == 0 {
		return RingColorEven
	}
	return RingColorOdd
}

// StarPartner returns the point a star line from point i ends at.
func (l *Level) StarPartner(i int) int {
	return (i + l.StarStep) % l.StarPoints
}
