package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/config"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Clip paths, relative to the asset directory.
const (
	ClipFalling1 = "music/falling-1.mp3"
	ClipFalling2 = "music/falling-2.mp3"
	ClipBiboran  = "music/biboran.mp3"
	ClipBoxHit   = "music/box-hit.mp3"
	ClipScream   = "music/scream.mp3"
	ClipClick    = "music/click.mp3"
	ClipHover    = "music/hover.mp3"
)

// Audio is the sound output the screens drive.
type Audio interface {
	PlayLooped(clip string)
	Play(clip string)
	Stop()
	SetPlaybackRate(rate float64)
}

// NopAudio discards everything.
type NopAudio struct{}

func (NopAudio) PlayLooped(string)       {}
func (NopAudio) Play(string)             {}
func (NopAudio) Stop()                   {}
func (NopAudio) SetPlaybackRate(float64) {}

// Input is the polled input for one frame.
type Input struct {
	Left, Right, Up, Down bool
	Brake                 bool // held
	Confirm               bool // just pressed

	CursorX, CursorY int
	MouseDown        bool // held
	MousePressed     bool // just pressed

	ToggleInspector bool
}

// Score is carried from the falling session to the end screen.
type Score struct {
	FinalTime float64
	Completed bool
}

// Context is shared by every screen. It replaces global singletons: the
// state machine, the clear colour and the overlays all live here.
type Context struct {
	Config config.Config
	Level  *world.Level
	Audio  Audio
	States *StateMachine
	Rand   *rand.Rand
	Log    zerolog.Logger
	Input  Input

	ClearColor     world.RGB
	Lines          *DebugLines
	Indoctrination *Indoctrination
	Bloodfield     *Bloodfield
	Messages       *MessageLog
	Score          Score
	Inspector      bool
}

// NewContext wires a context with fresh overlays.
func NewContext(cfg config.Config, level *world.Level, audio Audio, seed uint64, log zerolog.Logger) *Context {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Context{
		Config:         cfg,
		Level:          level,
		Audio:          audio,
		States:         NewStateMachine(log.With().Str("component", "states").Logger()),
		Rand:           rand.New(rand.NewPCG(seed, seed>>16|7)),
		Log:            log,
		Lines:          NewDebugLines(),
		Indoctrination: NewIndoctrination(cfg.Indoctrination),
		Bloodfield:     NewBloodfield(cfg.Bloodfield.Step),
		Messages:       NewMessageLog(8),
	}
}

// request asks for a transition and logs refusals.
func (c *Context) request(target AppState) {
	if err := c.States.Request(target); err != nil {
		c.Log.Debug().Err(err).Msg("transition refused")
	}
}
