// Package game holds the screens of the game and the state machine that
// switches between them. Nothing here draws or plays sound directly.
package game

import (
	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/config"
	"github.com/cvltovbiboran/falling/internal/world"
)

// App owns the context and every screen.
type App struct {
	Ctx *Context

	Menu     *MenuScreen
	Falling  *FallingScreen
	GameOver *GameOverScreen
	GameEnd  *GameEndScreen
	Cutscene *CutsceneScreen
}

// NewApp wires the screens into a fresh state machine.
func NewApp(cfg config.Config, level *world.Level, audio Audio, seed uint64, log zerolog.Logger) *App {
	a := &App{
		Ctx:      NewContext(cfg, level, audio, seed, log),
		Menu:     &MenuScreen{},
		Falling:  &FallingScreen{},
		GameOver: &GameOverScreen{},
		GameEnd:  &GameEndScreen{},
		Cutscene: &CutsceneScreen{},
	}
	sm := a.Ctx.States
	sm.Register(StateMainMenu, a.Menu)
	sm.Register(StateFallingGame, a.Falling)
	sm.Register(StateGameOver, a.GameOver)
	sm.Register(StateGameEnd, a.GameEnd)
	sm.Register(StateCutScene, a.Cutscene)
	return a
}

// Start enters the initial screen.
func (a *App) Start(initial AppState) error {
	return a.Ctx.States.Start(a.Ctx, initial)
}

// Update runs one frame: overlays age, the active screen runs, queued
// transitions apply, then the indoctrination cadences tick.
func (a *App) Update(dt float64, in Input) error {
	ctx := a.Ctx
	ctx.Input = in
	if in.ToggleInspector {
		ctx.Inspector = !ctx.Inspector
	}
	ctx.Lines.Update(dt)
	ctx.Messages.Update(dt)
	if err := ctx.States.Update(ctx, dt); err != nil {
		return err
	}
	ctx.Indoctrination.Update(dt, ctx.Rand)
	return nil
}

// State returns the active state.
func (a *App) State() AppState { return a.Ctx.States.Current() }
