// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный bitmap-шрифт, не требует файлов.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func drawString(screen screenImage, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
