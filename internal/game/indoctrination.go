package game

import (
	"math/rand/v2"

	"github.com/cvltovbiboran/falling/internal/config"
)

// Flash is one subliminal frame: either a word or a flashback image.
type Flash struct {
	Text  string
	Image string
}

// flashTable maps a roll in [0, flashRoll) to a flash; each entry covers
// rolls up to and including upTo.
var flashTable = []struct {
	upTo  int
	flash Flash
}{
	{1, Flash{Text: "BIBORAN"}},
	{2, Flash{Text: "ANSHA ABDUL"}},
	{4, Flash{Text: "VODKA"}},
	{6, Flash{Text: "CIGARETTES"}},
	{8, Flash{Text: "DRINK"}},
	{10, Flash{Text: "SMOKE"}},
	{13, Flash{Image: "images/flashback-1.jpg"}},
	{15, Flash{Image: "images/flashback-2.jpg"}},
	{17, Flash{Image: "images/flashback-3.jpg"}},
	{19, Flash{Image: "images/flashback-4.jpg"}},
}

const flashRoll = 20

// pickFlash returns the table entry for a roll.
func pickFlash(roll int) Flash {
	for _, e := range flashTable {
		if roll <= e.upTo {
			return e.flash
		}
	}
	return flashTable[len(flashTable)-1].flash
}

// Indoctrination flashes words and images over the screen while enabled.
type Indoctrination struct {
	enabled bool
	current *Flash
	chance  float64
	show    *FixedClock
	clear   *FixedClock

	// Shown counts flashes since start.
	Shown int
}

func NewIndoctrination(cfg config.Indoctrination) *Indoctrination {
	return &Indoctrination{
		chance: cfg.Chance,
		show:   NewFixedClock(cfg.ShowStep),
		clear:  NewFixedClock(cfg.ClearStep),
	}
}

func (in *Indoctrination) SetEnabled(on bool) { in.enabled = on }
func (in *Indoctrination) Enabled() bool      { return in.enabled }

// Current returns the flash on screen, or nil.
func (in *Indoctrination) Current() *Flash { return in.current }

// Reset disables the overlay and drops any flash.
func (in *Indoctrination) Reset() {
	in.enabled = false
	in.current = nil
	in.show.Reset()
	in.clear.Reset()
}

// Update runs both cadences. Clearing happens before showing so a flash
// picked this frame survives until the next clear tick.
func (in *Indoctrination) Update(dt float64, rng *rand.Rand) {
	if in.clear.Advance(dt) > 0 {
		in.current = nil
	}
	for n := in.show.Advance(dt); n > 0; n-- {
		if !in.enabled || in.current != nil {
			continue
		}
		if rng.Float64() >= in.chance {
			continue
		}
		f := pickFlash(rng.IntN(flashRoll))
		in.current = &f
		in.Shown++
	}
}
