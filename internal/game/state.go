package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// AppState selects the active screen.
type AppState uint8

const (
	StateMainMenu AppState = iota
	StateFallingGame
	StateGameOver
	StateGameEnd
	StateCutScene
)

var appStateNames = map[AppState]string{
	StateMainMenu:    "main-menu",
	StateFallingGame: "falling-game",
	StateGameOver:    "game-over",
	StateGameEnd:     "game-end",
	StateCutScene:    "cut-scene",
}

func (s AppState) String() string {
	if n, ok := appStateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

var (
	// ErrAlreadyInState is returned when the target is the current state.
	ErrAlreadyInState = errors.New("already in state")
	// ErrTransitionQueued is returned when a different transition is pending.
	ErrTransitionQueued = errors.New("another transition is queued")
)

// Screen is the lifecycle of one AppState. Enter spawns what the screen
// needs, Update runs every frame while the state is active and Exit tears
// everything down again.
type Screen interface {
	Enter(ctx *Context) error
	Update(ctx *Context, dt float64) error
	Exit(ctx *Context)
}

// StateMachine runs exactly one Screen at a time. Transitions requested
// during a frame are applied at the end of it.
type StateMachine struct {
	screens map[AppState]Screen
	current AppState
	pending AppState
	queued  bool
	started bool
	log     zerolog.Logger

	// Transitions counts applied transitions.
	Transitions int
}

// NewStateMachine creates an empty state machine.
func NewStateMachine(log zerolog.Logger) *StateMachine {
	return &StateMachine{screens: make(map[AppState]Screen), log: log}
}

// Register binds a screen to a state.
func (m *StateMachine) Register(state AppState, screen Screen) {
	m.screens[state] = screen
}

// Current returns the active state.
func (m *StateMachine) Current() AppState { return m.current }

// Pending returns the queued transition target, if any.
func (m *StateMachine) Pending() (AppState, bool) { return m.pending, m.queued }

// Screen returns the screen registered for a state.
func (m *StateMachine) Screen(state AppState) Screen { return m.screens[state] }

// Start enters the initial state.
func (m *StateMachine) Start(ctx *Context, initial AppState) error {
	if m.started {
		return fmt.Errorf("state machine already started in %s", m.current)
	}
	m.current = initial
	m.started = true
	m.log.Info().Stringer("state", initial).Msg("enter")
	if s := m.screens[initial]; s != nil {
		if err := s.Enter(ctx); err != nil {
			return fmt.Errorf("enter %s: %w", initial, err)
		}
	}
	return nil
}

// Request queues a transition. Asking for the state that is already queued
// is a no-op.
func (m *StateMachine) Request(target AppState) error {
	if m.queued {
		if m.pending == target {
			return nil
		}
		return fmt.Errorf("request %s while %s is pending: %w", target, m.pending, ErrTransitionQueued)
	}
	if m.current == target {
		return fmt.Errorf("request %s: %w", target, ErrAlreadyInState)
	}
	m.pending = target
	m.queued = true
	return nil
}

// Update runs the active screen for one frame, then applies any queued
// transition.
func (m *StateMachine) Update(ctx *Context, dt float64) error {
	if s := m.screens[m.current]; s != nil {
		if err := s.Update(ctx, dt); err != nil {
			return fmt.Errorf("update %s: %w", m.current, err)
		}
	}
	return m.Apply(ctx)
}

// Apply runs Exit on the old screen and Enter on the new one.
func (m *StateMachine) Apply(ctx *Context) error {
	if !m.queued {
		return nil
	}
	from, to := m.current, m.pending
	m.queued = false

	if s := m.screens[from]; s != nil {
		s.Exit(ctx)
	}
	m.current = to
	m.Transitions++
	m.log.Info().Stringer("from", from).Stringer("to", to).Msg("transition")
	if s := m.screens[to]; s != nil {
		if err := s.Enter(ctx); err != nil {
			return fmt.Errorf("enter %s: %w", to, err)
		}
	}
	return nil
}
