package game

import "github.com/cvltovbiboran/falling/internal/world"

// Interaction is the pointer state of a button.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// Button colours.
var (
	ButtonNormal  = world.RGB{R: 0.65, G: 0.15, B: 0.15}
	ButtonHovered = world.RGB{R: 0.75, G: 0.25, B: 0.25}
	ButtonPressed = world.RGB{R: 1.0, G: 0.35, B: 0.25}
)

// Button is a clickable rectangle in screen pixels.
type Button struct {
	Label      string
	X, Y, W, H int
	State      Interaction
}

// Contains reports whether a screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Color returns the fill for the current interaction.
func (b *Button) Color() world.RGB {
	switch b.State {
	case InteractionHovered:
		return ButtonHovered
	case InteractionPressed:
		return ButtonPressed
	}
	return ButtonNormal
}

// Update refreshes the interaction from input. It returns the new state and
// whether it changed this frame; a press only counts on the frame the mouse
// button went down.
func (b *Button) Update(in Input) (Interaction, bool) {
	next := InteractionNone
	if b.Contains(in.CursorX, in.CursorY) {
		next = InteractionHovered
		if in.MousePressed || (in.MouseDown && b.State == InteractionPressed) {
			next = InteractionPressed
		}
	}
	changed := next != b.State
	b.State = next
	return next, changed
}

// Clicked updates the button and reports a fresh press, playing the hover
// and click cues on the way.
func (b *Button) Clicked(ctx *Context) bool {
	state, changed := b.Update(ctx.Input)
	if !changed {
		return false
	}
	switch state {
	case InteractionHovered:
		ctx.Audio.Play(ClipHover)
	case InteractionPressed:
		ctx.Audio.Play(ClipClick)
		return true
	}
	return false
}

// centeredButton lays a button out horizontally centred at row y.
func centeredButton(label string, screenW, y int) Button {
	const w, h = 300, 65
	return Button{Label: label, X: (screenW - w) / 2, Y: y, W: w, H: h}
}
