package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cvltovbiboran/falling/internal/game"
)

// Fixed HUD positions, in cells.
const (
	hudCol   = 1
	hudRow   = 1
	hudWidth = 34
	barWidth = 16
	commsMax = 6
)

// speedScale is the fall speed that fills the speed bar.
const speedScale = 200.0

// drawHUD writes speed, health and cycle into the top left panel.
func drawHUD(buf *CellBuffer, v game.FallingView, startHealth float64) {
	buf.Fill(hudCol-1, hudRow-1, hudWidth+2, 5, ' ', ColorWhite, ColorShade)

	speedClr := ColorLightGray
	if v.Speed > 100 {
		speedClr = ColorLightRed
	}
	n := buf.WriteString(hudCol, hudRow, "↓ SPEED  ", speedClr, ColorShade)
	buf.Bar(hudCol+n, hudRow, barWidth, min(v.Speed/speedScale, 1), speedClr)
	buf.WriteString(hudCol+n+barWidth+1, hudRow, fmt.Sprintf("%6.1f", v.Speed), speedClr, ColorShade)

	healthClr := ColorGreen
	frac := v.Health / startHealth
	switch {
	case frac <= 0.25:
		healthClr = ColorLightRed
	case frac <= 0.6:
		healthClr = ColorYellow
	}
	n = buf.WriteString(hudCol, hudRow+1, "♥ HEALTH ", healthClr, ColorShade)
	buf.Bar(hudCol+n, hudRow+1, barWidth, max(min(frac, 1), 0), healthClr)
	buf.WriteString(hudCol+n+barWidth+1, hudRow+1, fmt.Sprintf("%6.1f", v.Health), healthClr, ColorShade)

	buf.WriteString(hudCol, hudRow+2, fmt.Sprintf("CYCLE %d", v.Cycle), ColorMagenta, ColorShade)
	buf.WriteString(hudCol+12, hudRow+2, fmt.Sprintf("DEPTH %7.1f", v.Actor.Y), ColorLightGray, ColorShade)
	buf.WriteString(hudCol, hudRow+3, fmt.Sprintf("TIME  %.1fs", v.Elapsed), ColorLightGray, ColorShade)
}

// drawMessages writes the recent HUD lines above the bottom row, fading
// them out with age.
func drawMessages(buf *CellBuffer, log *game.MessageLog) {
	msgs := log.Recent(commsMax)
	row := buf.Rows - 2 - len(msgs)
	for i, m := range msgs {
		f := 1 - m.Age/game.MessageLifetime
		buf.WriteString(hudCol, row+i, m.Text, fade(toneColor(m.Tone), f), ColorClear)
	}
}

// drawInspector prints engine counters in the top right corner.
func drawInspector(screen *ebiten.Image, app *game.App, width int) {
	ctx := app.Ctx
	var b strings.Builder
	fmt.Fprintf(&b, "state   %s\n", app.State())
	fmt.Fprintf(&b, "tps     %.0f\nfps     %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "lines   %d\n", len(ctx.Lines.Lines))
	fmt.Fprintf(&b, "indoc   %t (%d shown)\n", ctx.Indoctrination.Enabled(), ctx.Indoctrination.Shown)
	if s := app.Falling.Session; s != nil && app.State() == game.StateFallingGame {
		st := s.Stats()
		fmt.Fprintf(&b, "cycle   %d\n", s.Cycle.Number)
		fmt.Fprintf(&b, "ents    %d\nbodies  %d\npickups %d\nvisible %d\n", st.Entities, st.Bodies, st.Pickups, st.Visible)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), width-200, 8)
}
