// Package audio plays the game's music and sound cues through beep.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/config"
)

// Playback rate limits. The tunnel asks for zero when the actor hovers,
// which the resampler cannot do.
const (
	minRate = 0.05
	maxRate = 4
)

// Engine mixes looped tracks and one-shot clips. Every voice goes through
// one resampler so SetPlaybackRate bends the whole mix at once.
type Engine struct {
	mu        sync.Mutex
	sr        beep.SampleRate
	mixer     *beep.Mixer
	resampler *beep.Resampler
	cache     *clipCache
	music     float64
	sfx       float64
	started   bool
	log       zerolog.Logger
}

// New creates an engine that loads clips from dir. No device is opened
// until Start.
func New(cfg config.Audio, dir string, log zerolog.Logger) *Engine {
	sr := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	return &Engine{
		sr:        sr,
		mixer:     mixer,
		resampler: beep.ResampleRatio(4, 1, mixer),
		cache:     newClipCache(dir, sr, log),
		music:     cfg.MusicVolume,
		sfx:       cfg.SFXVolume,
		log:       log,
	}
}

// Start opens the speaker and begins streaming the mix.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return nil
	}
	if err := speaker.Init(e.sr, e.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.resampler)
	e.started = true
	return nil
}

// Preload decodes clips ahead of their first use.
func (e *Engine) Preload(clips ...string) {
	for _, c := range clips {
		e.cache.get(c)
	}
}

// withMix runs fn while the speaker is not reading the mixer.
func (e *Engine) withMix(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (e *Engine) PlayLooped(clip string) {
	buf := e.cache.get(clip)
	s := newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), e.music)
	e.withMix(func() { e.mixer.Add(s) })
	e.log.Debug().Str("clip", clip).Msg("loop")
}

func (e *Engine) Play(clip string) {
	buf := e.cache.get(clip)
	s := newVolume(buf.Streamer(0, buf.Len()), e.sfx)
	e.withMix(func() { e.mixer.Add(s) })
}

// Stop silences every voice.
func (e *Engine) Stop() {
	e.withMix(func() { e.mixer.Clear() })
}

// SetPlaybackRate changes the speed and pitch of the whole mix.
func (e *Engine) SetPlaybackRate(rate float64) {
	rate = math.Max(minRate, math.Min(maxRate, rate))
	e.withMix(func() { e.resampler.SetRatio(rate) })
}

// playbackRate returns the current resampling ratio.
func (e *Engine) playbackRate() float64 {
	var r float64
	e.withMix(func() { r = e.resampler.Ratio() })
	return r
}

// voices returns the number of streams in the mix.
func (e *Engine) voices() int {
	var n int
	e.withMix(func() { n = e.mixer.Len() })
	return n
}

// Close stops playback and releases the device.
func (e *Engine) Close() {
	e.Stop()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		speaker.Close()
		e.started = false
	}
}

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
