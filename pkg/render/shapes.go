// pkg/render/shapes.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// FillPolygon заливает выпуклый многоугольник веером треугольников.
func FillPolygon(dst *ebiten.Image, pts [][2]float64, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := vertexColor(c)
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// StrokePolygon обводит замкнутый контур.
func StrokePolygon(dst *ebiten.Image, pts [][2]float64, width float32, c color.Color) {
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(p[0]), float32(p[1]), float32(q[0]), float32(q[1]), width, c, true)
	}
}
