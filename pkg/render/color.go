// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade масштабирует альфу цвета на life из [0, 1].
func Fade(c color.RGBA, life float64) color.RGBA {
	life = max(0, min(1, life))
	c.A = uint8(float64(c.A) * life)
	return c
}

// vertexColor returns straight-alpha components for ebiten.Vertex.
func vertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
