// internal/system/projectile.go
package system

import (
	"math"

	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

// HitStats — характеристики игрока, влияющие на попадание.
type HitStats struct {
	CritRate   float64 // проценты, уже с бонусом от бустов
	CritDamage float64 // проценты, 150 = x1.5
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	visuals         *VisualEffectSystem
	rng             *utils.PRNGService
	clock           clock.Clock
	width, height   float64
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, visuals *VisualEffectSystem,
	rng *utils.PRNGService, clk clock.Clock, width, height float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		visuals:         visuals,
		rng:             rng,
		clock:           clk,
		width:           width,
		height:          height,
	}
}

// Update двигает снаряды, разрешает попадания и убирает мёртвых врагов и
// отработавшие снаряды.
func (s *ProjectileSystem) Update(deltaTime float64, wave *component.Wave, stats HitStats) {
	for _, p := range s.ecs.Projectiles {
		if p.Remove {
			continue
		}
		s.steer(p)
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime

		if s.outOfBounds(p) {
			p.Remove = true
			continue
		}
		s.collide(p, wave, stats)
	}

	s.ecs.RemoveProjectiles(func(p *component.Projectile) bool { return p.Remove })
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool { return e.Dead() })
}

// steer поворачивает самонаводящийся снаряд к цели на 10% за тик. Если цели
// больше нет, снаряд летит с прежней скоростью.
func (s *ProjectileSystem) steer(p *component.Projectile) {
	if p.TargetID == 0 {
		return
	}
	target, ok := s.ecs.Enemy(p.TargetID)
	if !ok || target.Dead() {
		return
	}
	angle := math.Atan2(target.Y-p.Y, target.X-p.X)
	k := config.HomingTurnFactor
	p.VX = p.VX*(1-k) + math.Cos(angle)*config.HomingSpeed*k
	p.VY = p.VY*(1-k) + math.Sin(angle)*config.HomingSpeed*k
}

func (s *ProjectileSystem) outOfBounds(p *component.Projectile) bool {
	m := config.PlayfieldMargin
	return p.X < -m || p.X > s.width+m || p.Y < -m || p.Y > s.height+m
}

func (s *ProjectileSystem) collide(p *component.Projectile, wave *component.Wave, stats HitStats) {
	mod := multipliersOf(wave)

	for _, e := range s.ecs.Enemies {
		if e.Dead() {
			continue
		}
		if p.Piercing && p.AlreadyHit(e.ID) {
			continue
		}
		if utils.Distance(e.X, e.Y, p.X, p.Y) >= e.Radius+config.ProjectileHitPadding {
			continue
		}

		isCrit := s.rng.Float64()*100 < stats.CritRate
		dmg := p.Damage
		if isCrit {
			dmg = p.Damage * (stats.CritDamage / 100)
		}
		dmg = IncomingDamage(e, dmg, mod)

		killed := ApplyDamage(e, dmg)
		s.visuals.DamageNumber(e.X, e.Y, dmg, isCrit)
		s.visuals.Explosion(p.X, p.Y, p.Color, 3)

		if p.SlowPercent > 0 && p.SlowDuration > 0 {
			e.Slow = component.SlowEffect{Until: s.clock.Now().Add(p.SlowDuration), Percent: p.SlowPercent}
			s.visuals.Explosion(e.X, e.Y, config.SlowColor, 5)
		}

		if p.SplashRadius > 0 {
			s.splash(p, e, dmg*config.SplashDamageFactor)
		}

		if killed {
			s.visuals.Explosion(e.X, e.Y, e.Color, 15)
			emitKill(s.eventDispatcher, e, isCrit, dmg)
		}

		if !p.Piercing {
			p.Remove = true
			return
		}
		p.MarkHit(e.ID)
	}
}

// splash наносит плоские 50% урона всем остальным врагам в радиусе от точки
// попадания.
func (s *ProjectileSystem) splash(p *component.Projectile, primary *component.Enemy, dmg float64) {
	s.visuals.Shockwave(p.X, p.Y, p.SplashRadius, config.BurstColor)
	for _, other := range s.ecs.Enemies {
		if other == primary || other.Dead() {
			continue
		}
		if utils.Distance(other.X, other.Y, p.X, p.Y) >= p.SplashRadius {
			continue
		}
		s.visuals.DamageNumber(other.X, other.Y, dmg, false)
		if ApplyDamage(other, dmg) {
			s.visuals.Explosion(other.X, other.Y, other.Color, 15)
			emitKill(s.eventDispatcher, other, false, dmg)
		}
	}
}

func emitKill(d *event.Dispatcher, e *component.Enemy, isCrit bool, dmg float64) {
	d.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{EnemyID: e.ID, Type: e.Type, IsCrit: isCrit, Damage: dmg, X: e.X, Y: e.Y},
	})
}
