// Package render draws the game state with Ebitengine. It only reads from
// the game package; all state changes happen in game.App.Update.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/game"
)

const (
	cellSize     = 16
	titleSize    = 48
	headlineSize = 64
	labelSize    = 24
	slideText    = 20
	flashSize    = 96
)

var flashColor = color.NRGBA{220, 0, 0, 255}

// Renderer draws whichever screen is active.
type Renderer struct {
	Width, Height int

	grid   *GridRenderer
	buf    *CellBuffer
	images *ImageCache
	blood  *Bloodfield
}

// NewRenderer builds the atlas and the HUD grid. A shader that fails to
// compile leaves the menu on a plain background.
func NewRenderer(width, height int, assetDir string, log zerolog.Logger) *Renderer {
	r := &Renderer{
		Width:  width,
		Height: height,
		grid:   NewGridRenderer(NewFontAtlas(), cellSize, cellSize),
		buf:    NewCellBuffer(width/cellSize, height/cellSize),
		images: NewImageCache(assetDir, log),
	}
	blood, err := NewBloodfield()
	if err != nil {
		log.Warn().Err(err).Msg("bloodfield disabled")
	} else {
		r.blood = blood
	}
	return r
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, app *game.App) {
	ctx := app.Ctx
	screen.Fill(RGB(ctx.ClearColor))
	r.buf.Clear()

	switch app.State() {
	case game.StateMainMenu:
		r.drawMenu(screen, app)
	case game.StateFallingGame:
		r.drawFalling(screen, app)
	case game.StateGameOver:
		r.drawGameOver(screen, app)
	case game.StateGameEnd:
		r.drawGameEnd(screen, app)
	case game.StateCutScene:
		r.drawCutscene(screen, app)
	}

	r.grid.Draw(screen, r.buf)
	r.drawFlash(screen, ctx.Indoctrination.Current())
	if ctx.Inspector {
		drawInspector(screen, app, r.Width)
	}
}

func (r *Renderer) drawMenu(screen *ebiten.Image, app *game.App) {
	ctx := app.Ctx
	if r.blood != nil {
		r.blood.Draw(screen, ctx.Bloodfield)
	}
	cam := MenuCamera(r.Width, r.Height)
	DrawLines(screen, cam, ctx.Lines.Lines)
	DrawCubes(screen, cam, app.Menu.Cubes())

	cx := float64(r.Width) / 2
	r.grid.DrawTextCentered(screen, game.Title, cx, float64(r.Height)/5, titleSize, ColorWhite)
	r.drawButton(screen, &app.Menu.Confess)
	r.drawButton(screen, &app.Menu.Story)
}

func (r *Renderer) drawFalling(screen *ebiten.Image, app *game.App) {
	s := app.Falling.Session
	if s == nil {
		return
	}
	ctx := app.Ctx
	v := s.View()
	cam := FallCamera(v.Actor, r.Width, r.Height)
	DrawTunnel(screen, cam, v)
	DrawLines(screen, cam, ctx.Lines.Lines)

	drawHUD(r.buf, v, ctx.Config.Falling.StartHealth)
	drawMessages(r.buf, ctx.Messages)
	r.buf.WriteCentered(r.buf.Rows-1, "ARROWS: Move  SPACE: Brake  F1: Inspector", Contrast(ctx.ClearColor), ColorClear)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, app *game.App) {
	cx := float64(r.Width) / 2
	r.grid.DrawTextCentered(screen, app.GameOver.Headline(), cx, float64(r.Height)/3, headlineSize, ColorLightRed)
	r.drawButton(screen, &app.GameOver.Confess)
}

func (r *Renderer) drawGameEnd(screen *ebiten.Image, app *game.App) {
	cx := float64(r.Width) / 2
	r.grid.DrawTextCentered(screen, "the end", cx, float64(r.Height)/4, headlineSize, ColorWhite)
	r.grid.DrawTextCentered(screen, game.Summary(app.Ctx.Score), cx, float64(r.Height)/4+headlineSize*1.5, labelSize, ColorLightGray)
	r.drawButton(screen, &app.GameEnd.Again)
}

func (r *Renderer) drawCutscene(screen *ebiten.Image, app *game.App) {
	slide, ok := app.Cutscene.Slide()
	if !ok {
		return
	}
	w, h := float64(r.Width), float64(r.Height)
	if img := r.images.Get(slide.Image); img != nil {
		drawFitted(screen, img, w/2, h*0.4, w*0.8, h*0.6, 1)
	}
	lines := game.WrapText(slide.Text, int(w*0.8/slideText))
	y := h * 0.75
	for _, line := range lines {
		r.grid.DrawTextCentered(screen, line, w/2, y, slideText, ColorWhite)
		y += slideText * 1.4
	}
}

// drawButton fills the button rectangle in its interaction colour and
// centres the label on it.
func (r *Renderer) drawButton(screen *ebiten.Image, b *game.Button) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), RGB(b.Color()), false)
	cx := float64(b.X) + float64(b.W)/2
	cy := float64(b.Y) + float64(b.H-labelSize)/2
	r.grid.DrawTextCentered(screen, b.Label, cx, cy, labelSize, ColorWhite)
}

// drawFlash puts the indoctrination frame above everything else.
func (r *Renderer) drawFlash(screen *ebiten.Image, f *game.Flash) {
	if f == nil {
		return
	}
	w, h := float64(r.Width), float64(r.Height)
	if f.Image != "" {
		if img := r.images.Get(f.Image); img != nil {
			drawFitted(screen, img, w/2, h/2, w, h, 0.85)
			return
		}
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fade(ColorWhite, 0.25), false)
		return
	}
	r.grid.DrawTextCentered(screen, f.Text, w/2, (h-flashSize)/2, flashSize, flashColor)
}
