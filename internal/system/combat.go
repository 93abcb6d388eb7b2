package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/scaling"
)

// CombatSystem разрешает столкновения врагов с базой.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	visuals         *VisualEffectSystem
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, visuals *VisualEffectSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher, visuals: visuals}
}

// CollisionDamage is the damage e deals to the base on wave with the given defense.
func CollisionDamage(e *component.Enemy, wave *component.Wave, defense float64) float64 {
	dmg := scaling.CollisionDamage(defs.Enemy(e.Type).BaseDamage, wave.Number, defense)
	dmg *= multipliersOf(wave).Collision()
	dmg *= defs.Behavior(e.Behavior).CollisionMultiplier
	return dmg
}

// Update удаляет всех врагов, достигших базы. Урон проходит, только если
// щит не активен; враг удаляется в любом случае.
func (s *CombatSystem) Update(wave *component.Wave, base *component.Base, defense float64, shieldActive bool) {
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool {
		if e.Dead() || distTo(e, base.X, base.Y) >= e.Radius+config.BaseRadius {
			return false
		}

		dmg := CollisionDamage(e, wave, defense)
		hit := event.BaseHitData{Type: e.Type, Damage: dmg, Blocked: shieldActive}
		if shieldActive {
			hit.Damage = 0
			s.visuals.Explosion(e.X, e.Y, config.ShieldColor, 15)
		} else {
			base.Damage(dmg)
			s.visuals.Explosion(e.X, e.Y, config.BaseHitColor, 15)
		}
		hit.HP = base.HP

		s.eventDispatcher.Dispatch(event.Event{Type: event.BaseHit, Data: hit})
		return true
	})
}
