// internal/system/movement.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
)

// Параметры хаотичного движения для двух источников.
type evasionProfile struct {
	minPeriod, maxPeriod float64 // секунды между сменой угла
	blend                float64 // доля случайного угла
}

var (
	modifierEvasion = evasionProfile{minPeriod: 0.5, maxPeriod: 1.5, blend: 0.3}
	behaviorEvasion = evasionProfile{minPeriod: 0.3, maxPeriod: 0.8, blend: 0.5}
)

// MovementSystem обновляет позиции врагов. Скорость уже посчитана
// StatusEffectSystem; здесь только направление.
type MovementSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewMovementSystem(ecs *entity.ECS, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{ecs: ecs, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64, wave *component.Wave, baseX, baseY float64) {
	mod, _ := modifierOf(wave)

	for _, e := range s.ecs.Enemies {
		if e.RotationSpeed != 0 {
			e.Rotation += e.RotationSpeed * deltaTime
		}

		dx := baseX - e.X
		dy := baseY - e.Y
		dist := math.Hypot(dx, dy)
		if dist <= 1 || e.CurrentSpeed == 0 {
			continue
		}

		angle := math.Atan2(dy, dx)
		if mod.Erratic {
			angle = s.evade(&e.ModifierEvasion, modifierEvasion, angle, deltaTime)
		}
		if defs.Behavior(e.Behavior).HasEvasion {
			angle = s.evade(&e.BehaviorEvasion, behaviorEvasion, angle, deltaTime)
		}

		step := e.CurrentSpeed * deltaTime
		e.X += math.Cos(angle) * step
		e.Y += math.Sin(angle) * step
	}
}

// evade продвигает таймер источника и линейно смешивает углы без
// приведения к кратчайшей дуге.
func (s *MovementSystem) evade(ev *component.Evasion, p evasionProfile, angle, deltaTime float64) float64 {
	ev.Timer -= deltaTime
	if ev.Timer <= 0 {
		ev.Angle = s.rng.Float64() * 2 * math.Pi
		ev.Timer = s.rng.Range(p.minPeriod, p.maxPeriod)
	}
	return utils.Lerp(angle, ev.Angle, p.blend)
}
