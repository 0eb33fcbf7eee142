package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cvltovbiboran/falling/internal/game"
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

var (
	cubeCorners = [8]physics.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	cubeEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	teleportGlow = color.NRGBA{255, 240, 200, 90}
	ringColor    = color.NRGBA{120, 20, 20, 60}
)

// cubeWorldCorners returns the corners of a tumbled cube.
func cubeWorldCorners(c game.CubeView) [8]physics.Vec3 {
	var out [8]physics.Vec3
	half := c.Size / 2
	for i, k := range cubeCorners {
		p := rotateX(k.Scale(half), c.RotX).RotateY(c.RotY)
		out[i] = p.Add(c.Pos)
	}
	return out
}

// DrawCube draws one cube as a wireframe. Pickups also get a filled core
// so they read against the scenery.
func DrawCube(dst *ebiten.Image, cam Camera, c game.CubeView) {
	clr := RGBA(c.Color)
	if c.Kind.Pickup() {
		if x, y, ok := cam.Project(c.Pos); ok {
			s := float32(cam.PixelSize(c.Size, cam.Depth(c.Pos)))
			vector.DrawFilledRect(dst, float32(x)-s/2, float32(y)-s/2, s, s, fade(clr, 0.6), false)
		}
	}
	corners := cubeWorldCorners(c)
	for _, e := range cubeEdges {
		x0, y0, x1, y1, ok := cam.ProjectSegment(corners[e[0]], corners[e[1]])
		if !ok {
			continue
		}
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

// DrawCubes draws cubes far to near.
func DrawCubes(dst *ebiten.Image, cam Camera, cubes []game.CubeView) {
	sort.Slice(cubes, func(i, j int) bool {
		return cam.Depth(cubes[i].Pos) > cam.Depth(cubes[j].Pos)
	})
	for _, c := range cubes {
		DrawCube(dst, cam, c)
	}
}

// DrawLines projects the transient line list.
func DrawLines(dst *ebiten.Image, cam Camera, lines []game.Line) {
	for _, l := range lines {
		x0, y0, x1, y1, ok := cam.ProjectSegment(l.From, l.To)
		if !ok {
			continue
		}
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, RGBA(l.Color), true)
	}
}

// DrawTunnel draws the falling scene: the teleport glow, the floor rings
// and every visible cube.
func DrawTunnel(dst *ebiten.Image, cam Camera, v game.FallingView) {
	if x, y, ok := cam.Project(v.Teleport); ok {
		r := float32(cam.PixelSize(v.TeleportRadius, cam.Depth(v.Teleport)))
		vector.DrawFilledCircle(dst, float32(x), float32(y), r, teleportGlow, true)
	}
	for i := len(v.Floors) - 1; i >= 0; i-- {
		drawRing(dst, cam, v.Floors[i], v.TunnelRadius)
	}
	DrawCubes(dst, cam, v.Cubes)
}

func drawRing(dst *ebiten.Image, cam Camera, f game.FloorView, radius float64) {
	centre := physics.Vec3{Y: f.Y}
	x, y, ok := cam.Project(centre)
	if !ok {
		return
	}
	r := float32(cam.PixelSize(radius, cam.Depth(centre)))
	clr := ringColor
	if f.Color == world.RingColorOdd {
		clr.G += 20
	}
	vector.StrokeCircle(dst, float32(x), float32(y), r, 1, clr, true)
}
