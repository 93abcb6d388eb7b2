// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenImage is the draw target shared by all widgets.
type screenImage = *ebiten.Image

// PhaseIndicator — кружок цвета текущей фазы боя, пульсирует при смене фазы.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	phase      component.Phase
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

func phaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhaseWaveComplete:
		return config.ActiveColor
	case component.PhaseBattleOver:
		return config.BaseHitColor
	default:
		return config.HealthBarFill
	}
}

func (i *PhaseIndicator) Draw(screen screenImage, phase component.Phase) {
	if phase != i.phase {
		i.phase = phase
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	r := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
