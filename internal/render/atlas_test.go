package render

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'A', 'A'},
		{' ', ' '},
		{'Ω', GlyphOmega},
		{'♥', GlyphHeart},
		{'█', GlyphFullBlock},
		{'€', '?'},
	}
	for _, tt := range tests {
		if got := Encode(tt.r); got != tt.want {
			t.Errorf("Encode(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
