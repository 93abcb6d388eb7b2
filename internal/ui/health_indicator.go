// internal/ui/health_indicator.go
package ui

import (
	"fmt"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const lowHealthShare = 0.3

// BaseHealthIndicator — полоса здоровья базы.
type BaseHealthIndicator struct {
	X, Y          float32
	Width, Height float32
	face          text.Face
}

func NewBaseHealthIndicator(x, y, width, height float32, face text.Face) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, Width: width, Height: height, face: face}
}

func (i *BaseHealthIndicator) Draw(screen screenImage, hp, maxHP float64) {
	share := float32(0)
	if maxHP > 0 {
		share = float32(max(0, min(1, hp/maxHP)))
	}
	fill := config.HealthBarFill
	if share < lowHealthShare {
		fill = config.HealthBarLow
	}

	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBarBg, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*share, i.Height, fill, false)
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, config.TextLightColor, false)

	label := fmt.Sprintf("%.0f/%.0f", hp, maxHP)
	w, h := text.Measure(label, i.face, 0)
	drawString(screen, label, i.face, float64(i.X)+(float64(i.Width)-w)/2, float64(i.Y)+(float64(i.Height)-h)/2, config.TextLightColor)
}
