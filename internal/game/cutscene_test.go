package game

import "testing"

func TestCutsceneSlides(t *testing.T) {
	ctx, _ := newTestContext(t)
	c := &CutsceneScreen{}
	if err := c.Enter(ctx); err != nil {
		t.Fatal(err)
	}
	slide, ok := c.Slide()
	if !ok || c.Stage() != 1 || slide.Image != "images/story/1.png" {
		t.Fatalf("first slide = %+v, %v (stage %d)", slide, ok, c.Stage())
	}

	for i := 0; i < 60*5+1; i++ {
		c.Update(ctx, 1.0/60)
	}
	if c.Stage() != 2 {
		t.Errorf("stage after 5s = %d, want 2", c.Stage())
	}

	ctx.Input.Confirm = true
	c.Update(ctx, 1.0/60)
	ctx.Input.Confirm = false
	if c.Stage() != 3 {
		t.Errorf("stage after skip = %d, want 3", c.Stage())
	}
	if _, ok := ctx.States.Pending(); ok {
		t.Fatal("left the cutscene early")
	}

	for i := 0; i < 3; i++ {
		c.Update(ctx, 5)
	}
	if to, ok := ctx.States.Pending(); !ok || to != StateFallingGame {
		t.Errorf("pending = %v, %v; want falling-game", to, ok)
	}
	if _, ok := c.Slide(); ok {
		t.Error("a slide is still on screen after the last one")
	}
}
