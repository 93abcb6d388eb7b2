// internal/system/status_effect.go
package system

import (
	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом эффектов (замедление,
// оглушение) и регенерацией врагов.
type StatusEffectSystem struct {
	ecs   *entity.ECS
	clock clock.Clock
}

func NewStatusEffectSystem(ecs *entity.ECS, clk clock.Clock) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, clock: clk}
}

// Update пересчитывает CurrentSpeed каждого врага и применяет регенерацию.
func (s *StatusEffectSystem) Update(deltaTime float64, wave *component.Wave) {
	now := s.clock.Now()
	mod := multipliersOf(wave)

	for _, e := range s.ecs.Enemies {
		e.CurrentSpeed = e.BaseSpeed

		if s.ecs.Stunned(e.ID, now) {
			e.CurrentSpeed = 0
		} else {
			// истёкшее оглушение
			delete(s.ecs.StunUntil, e.ID)
			if e.Slow.Active(now) {
				e.CurrentSpeed *= 1 - e.Slow.Percent/100
			} else if e.Slow.Percent > 0 {
				e.Slow = component.SlowEffect{}
			}
		}

		s.regenerate(e, deltaTime, mod)
	}
}

func (s *StatusEffectSystem) regenerate(e *component.Enemy, deltaTime float64, mod defs.Multipliers) {
	if e.Dead() || e.HP >= e.MaxHP {
		return
	}
	rate := mod.HealPerSecond / 100
	if b := defs.Behavior(e.Behavior); b.HasRegeneration {
		rate += b.RegenPerSecond
	}
	if rate <= 0 {
		return
	}
	e.HP = min(e.MaxHP, e.HP+e.MaxHP*rate*deltaTime)
}
