package render

import (
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// ImageCache loads slide and flashback images from the asset directory on
// first use. A missing file is remembered so it is only reported once.
type ImageCache struct {
	dir    string
	images map[string]*ebiten.Image
	log    zerolog.Logger
}

func NewImageCache(dir string, log zerolog.Logger) *ImageCache {
	return &ImageCache{dir: dir, images: make(map[string]*ebiten.Image), log: log}
}

// Get returns the image at a relative path, or nil if it cannot be loaded.
func (c *ImageCache) Get(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if img, ok := c.images[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(c.dir, path))
	if err != nil {
		c.log.Warn().Err(err).Str("image", path).Msg("image unavailable, drawing text only")
		img = nil
	}
	c.images[path] = img
	return img
}

// drawFitted draws img scaled to fit a w x h box centred on (cx, cy).
func drawFitted(dst, img *ebiten.Image, cx, cy, w, h float64, alpha float32) {
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	s := min(w/iw, h/ih)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx-iw*s/2, cy-ih*s/2)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}
