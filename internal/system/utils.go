// internal/system/utils.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
)

// IncomingDamage применяет к сырому урону снижение от модификатора волны
// (resilient) и от поведения врага (TANKY). Оба множителя независимы.
func IncomingDamage(e *component.Enemy, raw float64, mod defs.Multipliers) float64 {
	dmg := raw * mod.DamageTaken()
	if e.DamageTaken > 0 && e.DamageTaken < 1 {
		dmg *= e.DamageTaken
	}
	return dmg
}

// ApplyDamage subtracts dmg and reports whether this hit killed the enemy.
// Уже мёртвый враг повторно не убивается.
func ApplyDamage(e *component.Enemy, dmg float64) bool {
	if e.Dead() {
		return false
	}
	e.HP -= dmg
	return e.Dead()
}

func modifierOf(wave *component.Wave) (defs.WaveModifier, bool) {
	if wave == nil {
		return defs.WaveModifier{}, false
	}
	return defs.Modifier(wave.Modifier)
}

func multipliersOf(wave *component.Wave) defs.Multipliers {
	m, _ := modifierOf(wave)
	return m.Multipliers
}

func distTo(e *component.Enemy, x, y float64) float64 {
	return utils.Distance(e.X, e.Y, x, y)
}
