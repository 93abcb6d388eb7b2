// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/scaling"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и
// модификатор волны под ним.
type WaveIndicator struct {
	X, Y             float64
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	face             text.Face
}

func NewWaveIndicator(x, y float64, face text.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.BaseColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen screenImage, wave int, modifier defs.ModifierID, killed, required int) {
	if wave <= 0 {
		return
	}

	textColor := i.Color
	if scaling.IsBossWave(wave) {
		textColor = config.BaseHitColor
	}
	i.centered(screen, toRoman(wave), i.Y, textColor, true)

	sub := fmt.Sprintf("%d/%d", killed, required)
	if m, ok := defs.Modifier(modifier); ok {
		sub = m.Name + "  " + sub
	}
	i.centered(screen, sub, i.Y+18, config.TextLightColor, false)
}

func (i *WaveIndicator) centered(screen screenImage, s string, y float64, c color.RGBA, outline bool) {
	w, _ := text.Measure(s, i.face, 0)
	x := i.X - w/2

	if outline {
		for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
			for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawString(screen, s, i.face, x+float64(dx), y+float64(dy), i.OutlineColor)
			}
		}
	}
	drawString(screen, s, i.face, x, y, c)
}
