package game

import "github.com/cvltovbiboran/falling/internal/world"

// CutsceneScreen plays the story slides, one every few seconds, and then
// drops the player into the tunnel.
type CutsceneScreen struct {
	slides []world.Slide
	stage  int // 1-based index of the slide on screen, 0 before the first
	timer  float64
}

func (c *CutsceneScreen) Enter(ctx *Context) error {
	c.slides = nil
	if ctx.Level != nil {
		c.slides = ctx.Level.Story
	}
	c.stage = 0
	c.timer = 0
	ctx.ClearColor = world.RGB{}
	c.next(ctx)
	return nil
}

func (c *CutsceneScreen) Update(ctx *Context, dt float64) error {
	if c.stage > len(c.slides) {
		return nil
	}
	c.timer += dt
	skip := ctx.Input.Confirm || ctx.Input.MousePressed
	if skip || c.timer >= ctx.Config.Cutscene.SlideSeconds {
		c.next(ctx)
	}
	return nil
}

// next shows the following slide, or leaves once they are all shown.
func (c *CutsceneScreen) next(ctx *Context) {
	c.stage++
	c.timer = 0
	if c.stage > len(c.slides) {
		ctx.request(StateFallingGame)
	}
}

func (c *CutsceneScreen) Exit(ctx *Context) {
	c.stage = 0
}

// Slide returns the slide on screen.
func (c *CutsceneScreen) Slide() (world.Slide, bool) {
	if c.stage < 1 || c.stage > len(c.slides) {
		return world.Slide{}, false
	}
	return c.slides[c.stage-1], true
}

// Stage returns the 1-based index of the slide on screen.
func (c *CutsceneScreen) Stage() int { return c.stage }
