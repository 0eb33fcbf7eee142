package game

import (
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Title is shown on the main menu.
const Title = "CVLT OV BIBΩRAN"

var (
	menuStarColor = world.RGBA{R: 0.9, G: 0.7, B: 0.2, A: 0.3}
	menuNoise     = world.RGBA{R: 0.1, G: 0.01, B: 0.01, A: 1}
	menuCubeColor = world.RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1}
)

const (
	menuStarTTL  = 0.2
	menuNoiseTTL = 0.5
	menuCubeSize = 0.8
)

// MenuScreen is the title screen: a turning star of cubes over the
// bloodfield, with a button to start and one to watch the story.
type MenuScreen struct {
	Confess Button
	Story   Button

	Angle  float64
	Tumble Tumble
	slots  []world.RingSlot
}

func (m *MenuScreen) Enter(ctx *Context) error {
	w, h := ctx.Config.Window.Width, ctx.Config.Window.Height
	m.Confess = centeredButton("CONFESS", w, h*2/3)
	m.Story = centeredButton("STORY", w, h*2/3+90)
	m.Angle = 0
	m.Tumble = Tumble{}
	points := 11
	if ctx.Level != nil {
		points = ctx.Level.StarPoints
	}
	m.slots = world.StarSlots(points, ctx.Config.Menu.StarRadius)
	ctx.ClearColor = world.RGB{}
	ctx.Bloodfield.Reseed(ctx.Rand)
	ctx.Audio.PlayLooped(ClipBiboran)
	return nil
}

func (m *MenuScreen) Update(ctx *Context, dt float64) error {
	cfg := ctx.Config.Menu
	m.Angle += cfg.StarSpin * dt
	m.Tumble.X += tumbleX * dt
	m.Tumble.Y += tumbleY * dt
	ctx.Bloodfield.Update(dt)

	step := 4
	if ctx.Level != nil {
		step = ctx.Level.StarStep
	}
	points := len(m.slots) / 2
	for i := 0; i < points; i++ {
		a, b := m.slots[i*2], m.slots[((i+step)%points)*2]
		from := physics.Vec3{X: a.X, Z: a.Z}.RotateY(m.Angle)
		to := physics.Vec3{X: b.X, Z: b.Z}.RotateY(m.Angle)
		ctx.Lines.Add(from, to, menuStarColor, menuStarTTL)
	}

	ext := cfg.LineExtent
	rnd := func() float64 { return (ctx.Rand.Float64()*2 - 1) * ext }
	for i := 0; i < cfg.RandomLines; i++ {
		from := physics.Vec3{X: rnd(), Y: rnd(), Z: rnd()}
		to := physics.Vec3{X: rnd(), Y: rnd(), Z: rnd()}
		ctx.Lines.Add(from, to, menuNoise, menuNoiseTTL)
	}

	if m.Confess.Clicked(ctx) {
		ctx.request(StateFallingGame)
	} else if m.Story.Clicked(ctx) {
		ctx.request(StateCutScene)
	}
	return nil
}

func (m *MenuScreen) Exit(ctx *Context) {
	ctx.Audio.Stop()
	ctx.Lines.Clear()
}

// Cubes returns the star cubes in world space.
func (m *MenuScreen) Cubes() []CubeView {
	out := make([]CubeView, 0, len(m.slots))
	for _, s := range m.slots {
		out = append(out, CubeView{
			Pos:   physics.Vec3{X: s.X, Z: s.Z}.RotateY(m.Angle),
			Size:  menuCubeSize,
			Color: menuCubeColor,
			RotX:  m.Tumble.X,
			RotY:  m.Tumble.Y + s.Tumble + m.Angle,
		})
	}
	return out
}
