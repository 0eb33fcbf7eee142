package game

import (
	"fmt"

	"github.com/cvltovbiboran/falling/internal/world"
)

// GameOverScreen offers another go after the actor died.
type GameOverScreen struct {
	Confess Button
}

func (g *GameOverScreen) Enter(ctx *Context) error {
	g.Confess = centeredButton("CONFESS", ctx.Config.Window.Width, ctx.Config.Window.Height*2/3)
	ctx.ClearColor = world.RGB{}
	return nil
}

func (g *GameOverScreen) Update(ctx *Context, dt float64) error {
	if g.Confess.Clicked(ctx) || ctx.Input.Confirm {
		ctx.request(StateFallingGame)
	}
	return nil
}

func (g *GameOverScreen) Exit(ctx *Context) {
	ctx.Audio.Stop()
}

// Headline is the text shown above the button.
func (g *GameOverScreen) Headline() string { return "game over" }

// GameEndScreen shows the time of a completed run.
type GameEndScreen struct {
	Again Button
}

func (g *GameEndScreen) Enter(ctx *Context) error {
	g.Again = centeredButton("AGAIN", ctx.Config.Window.Width, ctx.Config.Window.Height*2/3)
	ctx.ClearColor = world.RGB{}
	return nil
}

func (g *GameEndScreen) Update(ctx *Context, dt float64) error {
	if g.Again.Clicked(ctx) || ctx.Input.Confirm {
		ctx.request(StateMainMenu)
	}
	return nil
}

func (g *GameEndScreen) Exit(ctx *Context) {
	ctx.Audio.Stop()
	ctx.Score = Score{}
}

// Summary formats the final score.
func Summary(s Score) string {
	if !s.Completed {
		return "you did not confess"
	}
	return fmt.Sprintf("confessed in %.2f seconds", s.FinalTime)
}
