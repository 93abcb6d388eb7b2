// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-defense/pkg/render"
)

// SpeedButton переключает множитель скорости x1/x2.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier returns the speed the current state stands for.
func (b *SpeedButton) Multiplier() float64 {
	return float64(b.CurrentState + 1)
}

func (b *SpeedButton) Draw(screen screenImage) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := float64(b.Size) * scale

	c := toRGBA(b.StateColors[b.CurrentState])
	height := size * 1.2
	width := size
	offset := width * 0.8
	x, y := float64(b.X), float64(b.Y)

	// два треугольника «перемотки»
	for _, dx := range []float64{0, offset} {
		pts := [][2]float64{{x - width + dx, y - height/2}, {x + dx, y}, {x - width + dx, y + height/2}}
		render.FillPolygon(screen, pts, c)
		render.StrokePolygon(screen, pts, 1, color.White)
	}
}

func (b *SpeedButton) Contains(mx, my float32) bool {
	dx, dy := mx-b.X, my-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// SetMultiplier syncs the button with a speed set elsewhere (hotkeys).
func (b *SpeedButton) SetMultiplier(m float64) {
	if s := int(m) - 1; s >= 0 && s < len(b.StateColors) {
		b.CurrentState = s
	}
}
