package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// CP437 codes the HUD draws by hand.
const (
	GlyphHeart      byte = 3
	GlyphArrowDown  byte = 25
	GlyphLightShade byte = 176
	GlyphMidShade   byte = 177
	GlyphDarkShade  byte = 178
	GlyphFullBlock  byte = 219
	GlyphOmega      byte = 234
	GlyphSquare     byte = 254
)

// unicodeToCP437 covers the non-ASCII runes that appear in titles and HUD text.
var unicodeToCP437 = map[rune]byte{
	'♥': GlyphHeart,
	'↓': GlyphArrowDown,
	'░': GlyphLightShade,
	'▒': GlyphMidShade,
	'▓': GlyphDarkShade,
	'│': 179,
	'┤': 180,
	'┐': 191,
	'└': 192,
	'┴': 193,
	'┬': 194,
	'├': 195,
	'─': 196,
	'┼': 197,
	'┘': 217,
	'┌': 218,
	'█': GlyphFullBlock,
	'▄': 220,
	'▀': 223,
	'Ω': GlyphOmega,
	'■': GlyphSquare,
}

// Encode maps a rune to its atlas code. Unknown runes become '?'.
func Encode(r rune) byte {
	if r >= 32 && r <= 126 {
		return byte(r)
	}
	if c, ok := unicodeToCP437[r]; ok {
		return c
	}
	return '?'
}

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas builds the atlas at startup. Printable ASCII comes from
// basicfont.Face7x13; box, block and the few symbols above are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		default:
			if bc, ok := boxChars[byte(code)]; ok {
				drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
				continue
			}
			if m, ok := bitmaps[byte(code)]; ok {
				drawBitmap(img, cx, cy, m)
				continue
			}
			drawBlockGlyph(img, cx, cy, byte(code))
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders one ASCII character, 7x13 centred in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps codes to single-line connections: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true},
	180: {true, false, true, true},
	191: {true, false, false, true},
	192: {false, true, true, false},
	193: {true, true, true, false},
	194: {true, true, false, true},
	195: {false, true, true, true},
	196: {true, true, false, false},
	197: {true, true, true, true},
	217: {true, false, true, false},
	218: {false, true, false, true},
}

func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// bitmaps are 8x8 symbols, doubled into the 16x16 cell.
var bitmaps = map[byte][8]uint8{
	GlyphHeart: {
		0b01101100,
		0b11111110,
		0b11111110,
		0b11111110,
		0b01111100,
		0b00111000,
		0b00010000,
		0b00000000,
	},
	GlyphArrowDown: {
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b01111110,
		0b00111100,
		0b00011000,
		0b00000000,
	},
	GlyphOmega: {
		0b00111100,
		0b01100110,
		0b11000011,
		0b11000011,
		0b01100110,
		0b00100100,
		0b11100111,
		0b00000000,
	},
}

func drawBitmap(img *image.NRGBA, cellX, cellY int, rows [8]uint8) {
	w := color.NRGBA{255, 255, 255, 255}
	for y, row := range rows {
		for x := 0; x < 8; x++ {
			if row&(0x80>>x) == 0 {
				continue
			}
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.SetNRGBA(cellX+x*2+dx, cellY+y*2+dy, w)
				}
			}
		}
	}
}

// drawBlockGlyph draws shading and block elements.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	var on func(x, y int) bool
	switch code {
	case GlyphLightShade:
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case GlyphMidShade:
		on = func(x, y int) bool { return (x+y)%2 == 0 }
	case GlyphDarkShade:
		on = func(x, y int) bool { return (x+y)%4 != 0 }
	case GlyphFullBlock:
		on = func(x, y int) bool { return true }
	case 220:
		on = func(x, y int) bool { return y >= GlyphHeight/2 }
	case 223:
		on = func(x, y int) bool { return y < GlyphHeight/2 }
	case GlyphSquare:
		on = func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 }
	default:
		return
	}
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
