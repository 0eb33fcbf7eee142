package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cvltovbiboran/falling/internal/game"
)

var bloodfieldSrc = []byte(`//kage:unit pixels

package main

var Time float
var Seed float

func hash(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))+Seed*91.7) * 43758.5453)
}

func noise(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * (3.0 - 2.0*f)
	a := hash(i)
	b := hash(i + vec2(1.0, 0.0))
	c := hash(i + vec2(0.0, 1.0))
	d := hash(i + vec2(1.0, 1.0))
	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := dstPos.xy / 90.0
	n := 0.0
	amp := 0.5
	for i := 0; i < 5; i++ {
		n += amp * noise(p+vec2(Time*0.13, -Time*0.09))
		p *= 2.0
		amp *= 0.5
	}
	vein := smoothstep(0.45, 0.75, n)
	r := 0.08 + 0.55*vein
	return vec4(r, r*0.04, r*0.05, 1.0)
}
`)

// Bloodfield draws the menu backdrop shader.
type Bloodfield struct {
	shader *ebiten.Shader
	op     ebiten.DrawRectShaderOptions
}

// NewBloodfield compiles the shader.
func NewBloodfield() (*Bloodfield, error) {
	s, err := ebiten.NewShader(bloodfieldSrc)
	if err != nil {
		return nil, fmt.Errorf("compile bloodfield: %w", err)
	}
	return &Bloodfield{shader: s}, nil
}

// Draw fills dst with the field for the given material parameters.
func (b *Bloodfield) Draw(dst *ebiten.Image, p *game.Bloodfield) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	b.op.Uniforms = map[string]any{
		"Time": p.Time,
		"Seed": p.Seed,
	}
	dst.DrawRectShader(w, h, b.shader, &b.op)
}
