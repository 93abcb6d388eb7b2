// internal/ui/ability_bar.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	abilitySlotSize    = 56
	abilitySlotSpacing = 10
)

// AbilityBar — ряд слотов способностей с заливкой кулдауна.
type AbilityBar struct {
	X, Y float32
	face text.Face
}

func NewAbilityBar(x, y float32, face text.Face) *AbilityBar {
	return &AbilityBar{X: x, Y: y, face: face}
}

// Width returns the bar width for n slots.
func (b *AbilityBar) Width(n int) float32 {
	return float32(n)*abilitySlotSize + float32(max(n-1, 0))*abilitySlotSpacing
}

func (b *AbilityBar) slotX(i int) float32 {
	return b.X + float32(i)*(abilitySlotSize+abilitySlotSpacing)
}

// SlotAt returns the index of the slot under (mx, my).
func (b *AbilityBar) SlotAt(mx, my float32, n int) (int, bool) {
	if my < b.Y || my > b.Y+abilitySlotSize {
		return 0, false
	}
	for i := range n {
		x := b.slotX(i)
		if mx >= x && mx <= x+abilitySlotSize {
			return i, true
		}
	}
	return 0, false
}

func (b *AbilityBar) Draw(screen screenImage, abilities []*component.Ability, now time.Time) {
	for i, a := range abilities {
		def := defs.AbilityLibrary[a.ID]
		x, y := b.slotX(i), b.Y

		bg := config.ReadyColor
		if !a.Ready() {
			bg = config.CooldownColor
		}
		vector.DrawFilledRect(screen, x, y, abilitySlotSize, abilitySlotSize, bg, false)

		if !a.Ready() && a.Cooldown > 0 {
			// заливка сверху вниз пропорционально оставшемуся кулдауну
			share := float32(a.RemainingCooldown) / float32(a.Cooldown)
			vector.DrawFilledRect(screen, x, y, abilitySlotSize, abilitySlotSize*share, config.HealthBarBg, false)
			label := fmt.Sprintf("%.1f", a.RemainingCooldown.Seconds())
			drawString(screen, label, b.face, float64(x)+6, float64(y)+abilitySlotSize/2-6, config.TextLightColor)
		}

		border := config.TextLightColor
		if a.Active(now) {
			border = config.ActiveColor
		}
		vector.StrokeRect(screen, x, y, abilitySlotSize, abilitySlotSize, 2, border, false)

		drawString(screen, strings.ToUpper(string(def.Hotkey)), b.face, float64(x)+4, float64(y)+2, config.TextLightColor)
	}
}
