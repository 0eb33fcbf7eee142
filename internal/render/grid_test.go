package render

import "testing"

func TestCellBufferWriteCentered(t *testing.T) {
	b := NewCellBuffer(10, 2)
	b.WriteCentered(1, "ΩK", ColorWhite, ColorClear)
	if got := b.Get(4, 1).Glyph; got != GlyphOmega {
		t.Errorf("cell (4,1) = %d, want omega", got)
	}
	if got := b.Get(5, 1).Glyph; got != 'K' {
		t.Errorf("cell (5,1) = %q, want K", got)
	}
	if b.Get(20, 20) != (Cell{}) {
		t.Error("out-of-bounds read should be blank")
	}
}
