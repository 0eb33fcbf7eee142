package game

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/assets"
	"github.com/cvltovbiboran/falling/internal/config"
	"github.com/cvltovbiboran/falling/internal/world"
)

// fakeAudio records every call.
type fakeAudio struct {
	looped []string
	played []string
	stops  int
	rates  []float64
}

func (f *fakeAudio) PlayLooped(clip string)       { f.looped = append(f.looped, clip) }
func (f *fakeAudio) Play(clip string)             { f.played = append(f.played, clip) }
func (f *fakeAudio) Stop()                        { f.stops++ }
func (f *fakeAudio) SetPlaybackRate(rate float64) { f.rates = append(f.rates, rate) }

func (f *fakeAudio) count(clip string) int {
	n := 0
	for _, c := range f.played {
		if c == clip {
			n++
		}
	}
	return n
}

func (f *fakeAudio) lastRate() float64 {
	if len(f.rates) == 0 {
		return -1
	}
	return f.rates[len(f.rates)-1]
}

func testLevel(t *testing.T) *world.Level {
	t.Helper()
	data, err := assets.Levels.ReadFile("levels/tunnel.yaml")
	if err != nil {
		t.Fatalf("read level: %v", err)
	}
	level, err := world.LoadLevel(data)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	return level
}

func newTestContext(t *testing.T) (*Context, *fakeAudio) {
	t.Helper()
	audio := &fakeAudio{}
	ctx := NewContext(config.Default(), testLevel(t), audio, 42, zerolog.Nop())
	return ctx, audio
}

func newTestSession(t *testing.T) (*Session, *Context, *fakeAudio) {
	t.Helper()
	ctx, audio := newTestContext(t)
	s, err := NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, ctx, audio
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
