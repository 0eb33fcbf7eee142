package game

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/config"
)

func TestAppFlow(t *testing.T) {
	audio := &fakeAudio{}
	app := NewApp(config.Default(), testLevel(t), audio, 7, zerolog.Nop())
	if err := app.Start(StateMainMenu); err != nil {
		t.Fatal(err)
	}
	if len(audio.looped) != 1 || audio.looped[0] != ClipBiboran {
		t.Fatalf("menu music = %v", audio.looped)
	}

	dt := 1.0 / 60
	if err := app.Update(dt, Input{}); err != nil {
		t.Fatal(err)
	}
	if len(app.Ctx.Lines.Lines) == 0 {
		t.Error("menu drew no lines")
	}

	b := app.Menu.Confess
	click := Input{CursorX: b.X + 1, CursorY: b.Y + 1, MouseDown: true, MousePressed: true}
	if err := app.Update(dt, click); err != nil {
		t.Fatal(err)
	}
	if app.State() != StateFallingGame || app.Falling.Session == nil {
		t.Fatalf("state = %v after CONFESS", app.State())
	}
	if len(app.Ctx.Lines.Lines) != 0 {
		t.Error("menu lines survived the transition")
	}

	for i := 0; i < 120; i++ {
		if err := app.Update(dt, Input{Brake: true, Left: true}); err != nil {
			t.Fatal(err)
		}
	}
	s := app.Falling.Session
	if s.Elapsed() < 1.9 {
		t.Errorf("elapsed = %v", s.Elapsed())
	}
	if got := audio.looped[len(audio.looped)-1]; got != ClipFalling1 {
		t.Errorf("falling music = %q", got)
	}
	v := s.View()
	if v.Actor.X >= 0 || v.Actor.Y >= 3050 {
		t.Errorf("actor at %+v, want moved left and fallen", v.Actor)
	}
	if len(v.Floors) == 0 || len(v.Cubes) == 0 {
		t.Errorf("view has %d floors and %d cubes", len(v.Floors), len(v.Cubes))
	}

	app.Ctx.request(StateGameOver)
	if err := app.Update(dt, Input{}); err != nil {
		t.Fatal(err)
	}
	if app.State() != StateGameOver || app.Falling.Session != nil {
		t.Fatalf("state = %v, session kept = %v", app.State(), app.Falling.Session != nil)
	}
	if app.Ctx.Indoctrination.Enabled() || app.Ctx.ClearColor.R != 0 {
		t.Error("session leftovers after exit")
	}

	// Idempotent requests: one new session only.
	app.Ctx.request(StateFallingGame)
	app.Ctx.request(StateFallingGame)
	before := app.Ctx.States.Transitions
	if err := app.Update(dt, Input{}); err != nil {
		t.Fatal(err)
	}
	if app.Ctx.States.Transitions != before+1 {
		t.Errorf("transitions = %d, want %d", app.Ctx.States.Transitions, before+1)
	}

	if err := app.Update(dt, Input{ToggleInspector: true}); err != nil || !app.Ctx.Inspector {
		t.Errorf("inspector toggle: err=%v on=%v", err, app.Ctx.Inspector)
	}
}
