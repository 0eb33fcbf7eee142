package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/rs/zerolog"
)

// tone is the synthesized stand-in for a missing clip.
type tone struct {
	freq     float64
	duration time.Duration
}

var fallbackTones = map[string]tone{
	"music/falling-1.mp3": {110, 2 * time.Second},
	"music/falling-2.mp3": {82.41, 2 * time.Second},
	"music/biboran.mp3":   {55, 4 * time.Second},
	"music/box-hit.mp3":   {880, 60 * time.Millisecond},
	"music/scream.mp3":    {1320, 400 * time.Millisecond},
	"music/click.mp3":     {660, 40 * time.Millisecond},
	"music/hover.mp3":     {440, 30 * time.Millisecond},
}

var defaultTone = tone{220, 100 * time.Millisecond}

// clipCache decodes each clip once into a buffer at the engine sample rate.
type clipCache struct {
	mu    sync.Mutex
	dir   string
	sr    beep.SampleRate
	store map[string]*beep.Buffer
	log   zerolog.Logger
}

func newClipCache(dir string, sr beep.SampleRate, log zerolog.Logger) *clipCache {
	return &clipCache{dir: dir, sr: sr, store: make(map[string]*beep.Buffer), log: log}
}

func (c *clipCache) format() beep.Format {
	return beep.Format{SampleRate: c.sr, NumChannels: 2, Precision: 2}
}

// get returns the buffer for a clip, decoding or synthesizing it on first use.
func (c *clipCache) get(clip string) *beep.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if buf, ok := c.store[clip]; ok {
		return buf
	}
	buf, err := c.decode(clip)
	if err != nil {
		c.log.Warn().Err(err).Str("clip", clip).Msg("using synthesized tone")
		buf = c.synthesize(clip)
	}
	c.store[clip] = buf
	return buf
}

func (c *clipCache) decode(clip string) (*beep.Buffer, error) {
	if c.dir == "" {
		return nil, fmt.Errorf("no asset directory")
	}
	f, err := os.Open(filepath.Join(c.dir, clip))
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", clip, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != c.sr {
		s = beep.Resample(4, format.SampleRate, c.sr, streamer)
	}
	buf := beep.NewBuffer(c.format())
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: empty clip", clip)
	}
	return buf, nil
}

func (c *clipCache) synthesize(clip string) *beep.Buffer {
	t, ok := fallbackTones[clip]
	if !ok {
		t = defaultTone
	}
	buf := beep.NewBuffer(c.format())
	sine, err := generators.SineTone(c.sr, t.freq)
	if err != nil {
		// Only possible if freq is above Nyquist; keep the buffer silent.
		buf.Append(beep.Take(c.sr.N(t.duration), beep.Silence(-1)))
		return buf
	}
	buf.Append(beep.Take(c.sr.N(t.duration), sine))
	return buf
}
