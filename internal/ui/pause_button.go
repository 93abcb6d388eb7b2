// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen screenImage) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// треугольник (play)
		s := float64(size)
		x, y := float64(b.X), float64(b.Y)
		pts := [][2]float64{{x - s, y - s*1.2}, {x - s, y + s*1.2}, {x + s, y}}
		render.FillPolygon(screen, pts, toRGBA(b.PlayColor))
		render.StrokePolygon(screen, pts, 1, color.White)
		return
	}

	// два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, left, b.Y-height/2, width, height, b.PauseColor, false)
		vector.StrokeRect(screen, left, b.Y-height/2, width, height, 1, color.White, false)
	}
}

func (b *PauseButton) Contains(mx, my float32) bool {
	dx, dy := mx-b.X, my-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
