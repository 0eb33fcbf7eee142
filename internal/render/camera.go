package render

import (
	"math"

	"github.com/cvltovbiboran/falling/internal/physics"
)

// Camera is a pinhole perspective camera.
type Camera struct {
	Eye  physics.Vec3
	Near float64

	right, up, fwd physics.Vec3
	focal          float64 // pixels per unit at depth 1
	cx, cy         float64
}

// LookAt aims a camera from eye at target. upHint picks the screen's up
// direction and must not be parallel to the view direction.
func LookAt(eye, target, upHint physics.Vec3, fovY float64, width, height int) Camera {
	fwd := normalize(target.Sub(eye))
	right := normalize(cross(fwd, upHint))
	up := cross(right, fwd)
	return Camera{
		Eye:   eye,
		Near:  0.1,
		right: right,
		up:    up,
		fwd:   fwd,
		focal: float64(height) / 2 / math.Tan(fovY/2),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

// FallCamera rides with the actor, looking straight down the tunnel.
func FallCamera(actor physics.Vec3, width, height int) Camera {
	target := actor.Sub(physics.Vec3{Y: 1})
	return LookAt(actor, target, physics.Vec3{Z: -1}, math.Pi/3, width, height)
}

// MenuCamera looks at the star from above and to the side.
func MenuCamera(width, height int) Camera {
	return LookAt(physics.Vec3{X: -10, Y: 18}, physics.Vec3{}, physics.Vec3{Y: 1}, math.Pi/4, width, height)
}

// Depth returns the distance of p along the view direction.
func (c Camera) Depth(p physics.Vec3) float64 {
	return p.Sub(c.Eye).Dot(c.fwd)
}

// Project maps a world point to screen pixels. ok is false for points at or
// behind the near plane.
func (c Camera) Project(p physics.Vec3) (x, y float64, ok bool) {
	d := p.Sub(c.Eye)
	z := d.Dot(c.fwd)
	if z < c.Near {
		return 0, 0, false
	}
	return c.cx + d.Dot(c.right)*c.focal/z, c.cy - d.Dot(c.up)*c.focal/z, true
}

// ProjectSegment projects a segment, clipping it against the near plane.
func (c Camera) ProjectSegment(a, b physics.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	za, zb := c.Depth(a), c.Depth(b)
	if za < c.Near && zb < c.Near {
		return 0, 0, 0, 0, false
	}
	if za < c.Near {
		a = a.Add(b.Sub(a).Scale((c.Near - za) / (zb - za)))
	} else if zb < c.Near {
		b = b.Add(a.Sub(b).Scale((c.Near - zb) / (za - zb)))
	}
	x0, y0, _ = c.Project(a)
	x1, y1, _ = c.Project(b)
	return x0, y0, x1, y1, true
}

// PixelSize returns how many pixels a world length covers at depth z.
func (c Camera) PixelSize(length, z float64) float64 {
	if z < c.Near {
		z = c.Near
	}
	return length * c.focal / z
}

func cross(a, b physics.Vec3) physics.Vec3 {
	return physics.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v physics.Vec3) physics.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// rotateX turns v around the X axis by angle radians.
func rotateX(v physics.Vec3, angle float64) physics.Vec3 {
	s, co := math.Sincos(angle)
	return physics.Vec3{X: v.X, Y: v.Y*co - v.Z*s, Z: v.Y*s + v.Z*co}
}
