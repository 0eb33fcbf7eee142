package game

import "testing"

func TestButtonInteraction(t *testing.T) {
	ctx, audio := newTestContext(t)
	b := Button{Label: "CONFESS", X: 100, Y: 100, W: 50, H: 20}

	ctx.Input = Input{CursorX: 10, CursorY: 10}
	if b.Clicked(ctx) || b.State != InteractionNone || b.Color() != ButtonNormal {
		t.Fatal("idle button reacted")
	}

	ctx.Input = Input{CursorX: 120, CursorY: 110}
	if b.Clicked(ctx) || b.State != InteractionHovered || b.Color() != ButtonHovered {
		t.Fatalf("hover: state=%v", b.State)
	}
	if audio.count(ClipHover) != 1 {
		t.Error("hover cue missing")
	}
	b.Clicked(ctx)
	if audio.count(ClipHover) != 1 {
		t.Error("hover cue repeated without a change")
	}

	ctx.Input = Input{CursorX: 120, CursorY: 110, MouseDown: true, MousePressed: true}
	if !b.Clicked(ctx) {
		t.Fatal("press not reported")
	}
	if b.Color() != ButtonPressed || audio.count(ClipClick) != 1 {
		t.Error("pressed state or click cue missing")
	}

	ctx.Input = Input{CursorX: 120, CursorY: 110, MouseDown: true}
	if b.Clicked(ctx) {
		t.Error("holding the button clicked again")
	}
}
