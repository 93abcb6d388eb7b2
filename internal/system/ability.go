// internal/system/ability.go
package system

import (
	"log"
	"time"

	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// AbilitySystem хранит кулдауны пяти способностей базы и применяет их эффекты.
// Кулдауны идут по реальному времени и не зависят от множителя скорости.
type AbilitySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	visuals         *VisualEffectSystem
	clock           clock.Clock
	abilities       []*component.Ability
}

// NewAbilitySystem creates the abilities in defs.AbilityOrder; cooldownScale
// multiplies every cooldown.
func NewAbilitySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, visuals *VisualEffectSystem,
	clk clock.Clock, cooldownScale float64) *AbilitySystem {
	if cooldownScale <= 0 {
		cooldownScale = 1
	}
	s := &AbilitySystem{ecs: ecs, eventDispatcher: eventDispatcher, visuals: visuals, clock: clk}
	for _, id := range defs.AbilityOrder {
		def := defs.AbilityLibrary[id]
		s.abilities = append(s.abilities, &component.Ability{
			ID:       id,
			Cooldown: time.Duration(float64(def.Cooldown) * cooldownScale),
			Duration: def.Duration,
		})
	}
	return s
}

// Abilities returns the ability states in hotkey order.
func (s *AbilitySystem) Abilities() []*component.Ability {
	return s.abilities
}

func (s *AbilitySystem) Get(id defs.AbilityID) (*component.Ability, bool) {
	for _, a := range s.abilities {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Update уменьшает кулдауны на wall, прошедшее реальное время.
func (s *AbilitySystem) Update(wall time.Duration) {
	now := s.clock.Now()
	for _, a := range s.abilities {
		if a.RemainingCooldown > 0 {
			a.RemainingCooldown = max(0, a.RemainingCooldown-wall)
		}
		if !a.ActiveUntil.IsZero() && !now.Before(a.ActiveUntil) {
			a.ActiveUntil = time.Time{}
		}
	}
}

func (s *AbilitySystem) ShieldActive() bool {
	return s.active(defs.AbilityShield)
}

func (s *AbilitySystem) OverclockActive() bool {
	return s.active(defs.AbilityOverclock)
}

func (s *AbilitySystem) active(id defs.AbilityID) bool {
	a, ok := s.Get(id)
	return ok && a.Active(s.clock.Now())
}

// Activate применяет способность. Если она на кулдауне или id неизвестен,
// состояние не меняется и возвращается false.
func (s *AbilitySystem) Activate(id defs.AbilityID, base *component.Base, damage float64) bool {
	a, ok := s.Get(id)
	if !ok || !a.Ready() {
		return false
	}
	def := defs.AbilityLibrary[id]
	now := s.clock.Now()

	switch id {
	case defs.AbilityPlasmaBurst:
		s.plasmaBurst(def, base, damage)
	case defs.AbilityEMPPulse:
		s.empPulse(def, base, now)
	case defs.AbilityRepair:
		base.Heal(def.RepairAmount)
		s.visuals.Explosion(base.X, base.Y, config.RepairColor, 3)
		s.visuals.DamageNumber(base.X, base.Y-30, def.RepairAmount, false)
	}

	a.RemainingCooldown = a.Cooldown
	if a.Duration > 0 {
		a.ActiveUntil = now.Add(a.Duration)
	}

	log.Printf("Ability %s activated", def.Name)
	s.eventDispatcher.Dispatch(event.Event{Type: event.AbilityActivated, Data: event.AbilityActivatedData{ID: id}})
	return true
}

func (s *AbilitySystem) plasmaBurst(def defs.AbilityDefinition, base *component.Base, damage float64) {
	dmg := damage * def.DamageFactor
	for _, e := range s.ecs.Enemies {
		if e.Dead() || distTo(e, base.X, base.Y) >= def.Radius {
			continue
		}
		s.visuals.Explosion(e.X, e.Y, config.BurstColor, 5)
		s.visuals.DamageNumber(e.X, e.Y, dmg, true)
		if ApplyDamage(e, dmg) {
			emitKill(s.eventDispatcher, e, false, dmg)
		}
	}
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool { return e.Dead() })
	s.visuals.Shockwave(base.X, base.Y, def.Radius, config.BurstColor)
}

// empPulse оглушает врагов в радиусе; урона нет.
func (s *AbilitySystem) empPulse(def defs.AbilityDefinition, base *component.Base, now time.Time) {
	until := now.Add(def.StunDuration)
	for _, e := range s.ecs.Enemies {
		if distTo(e, base.X, base.Y) >= def.Radius {
			continue
		}
		s.ecs.Stun(e.ID, until)
		s.visuals.Explosion(e.X, e.Y, config.EMPColor, 4)
		s.visuals.Label(e.X, e.Y, "STUNNED")
	}
	s.visuals.Shockwave(base.X, base.Y, def.Radius, config.EMPColor)
}
