package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is a single character cell of the HUD layer.
type Cell struct {
	Glyph byte
	FG    color.NRGBA
	BG    color.NRGBA // zero alpha leaves the scene visible
}

// CellBuffer is a 2D grid of cells drawn over the scene.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a transparent buffer.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg color.NRGBA) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets every cell to a transparent space.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite}
	}
}

// WriteString writes s starting at (x, y), one rune per cell, and returns
// the number of cells used.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg color.NRGBA) int {
	n := 0
	for _, ch := range s {
		b.Set(x+n, y, Encode(ch), fg, bg)
		n++
	}
	return n
}

// WriteCentered writes s centred on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg color.NRGBA) {
	b.WriteString((b.Cols-runeLen(s))/2, y, s, fg, bg)
}

// Fill paints a rectangle of cells with one glyph.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg color.NRGBA) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// Bar draws a width-cell meter filled to frac.
func (b *CellBuffer) Bar(x, y, width int, frac float64, fg color.NRGBA) {
	filled := int(frac*float64(width) + 0.5)
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphFullBlock, fg, ColorClear)
		} else {
			b.Set(x+i, y, GlyphLightShade, ColorDarkGray, ColorClear)
		}
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the whole buffer.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG.A > 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(cell.BG)
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(cell.FG)
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// DrawText renders s at pixel coordinates, each glyph size pixels square.
// Titles and flashes use it to escape the cell grid.
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, px, py, size float64, fg color.Color) {
	scale := size / float64(GlyphWidth)
	var op ebiten.DrawImageOptions
	for _, ch := range s {
		code := Encode(ch)
		if code != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(fg)
			screen.DrawImage(r.Atlas.Glyph(code), &op)
		}
		px += size
	}
}

// DrawTextCentered renders s centred horizontally on cx.
func (r *GridRenderer) DrawTextCentered(screen *ebiten.Image, s string, cx, py, size float64, fg color.Color) {
	r.DrawText(screen, s, cx-float64(runeLen(s))*size/2, py, size, fg)
}
