// internal/system/weapon.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

// FireControl — ввод игрока для орудия на текущий тик.
type FireControl struct {
	Mode       config.AimMode
	Aiming     bool // указатель над полем, турель следит за ним
	Holding    bool // огонь удерживается (MANUAL)
	AimX, AimY float64
	Reload     bool
}

// WeaponSystem стреляет из орудия базы: в режиме AUTO по ближайшему врагу
// с самонаведением, в режиме MANUAL по точке прицела из магазина.
type WeaponSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	weapon          defs.WeaponDefinition
	turret          *component.Turret
}

func NewWeaponSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, weapon defs.WeaponDefinition) *WeaponSystem {
	return &WeaponSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		weapon:          weapon,
		turret:          &component.Turret{Ammo: config.MagazineSize},
	}
}

func (s *WeaponSystem) Turret() *component.Turret     { return s.turret }
func (s *WeaponSystem) Weapon() defs.WeaponDefinition { return s.weapon }

// FireInterval returns seconds between shots.
func (s *WeaponSystem) FireInterval(attackSpeed float64, overclock bool) float64 {
	if attackSpeed <= 0 {
		attackSpeed = 1
	}
	rate := attackSpeed * s.weapon.AttackSpeedMultiplier
	if overclock {
		rate *= 2
	}
	return 1 / rate
}

func (s *WeaponSystem) Update(deltaTime float64, ctl FireControl, base *component.Base,
	stats config.PlayerStats, boosts config.Boosts, overclock bool) {
	interval := s.FireInterval(stats.AttackSpeed, overclock)
	t := s.turret

	if ctl.Mode == config.AimManual {
		s.updateReload(deltaTime, ctl.Reload)
		if ctl.Aiming {
			dx, dy := ctl.AimX-base.X, ctl.AimY-base.Y
			if math.Abs(dx) > 1 || math.Abs(dy) > 1 {
				t.Angle = math.Atan2(dy, dx)
			}
		}
		if ctl.Holding && !t.Reloading {
			t.HoldTimer += deltaTime
			if t.HoldTimer >= interval {
				s.fireManual(ctl.AimX, ctl.AimY, base, stats, boosts)
				t.HoldTimer = 0
			}
		}
		return
	}

	t.FireTimer += deltaTime
	if t.FireTimer < interval {
		return
	}
	target, dist := s.nearest(base)
	if target == nil || dist >= config.AutoAimRange {
		t.TargetID = 0
		return
	}
	t.TargetID = target.ID
	t.Angle = math.Atan2(target.Y-base.Y, target.X-base.X)
	p := s.spawn(t.Angle, base, stats, boosts)
	p.TargetID = target.ID
	t.FireTimer = 0
}

func (s *WeaponSystem) nearest(base *component.Base) (*component.Enemy, float64) {
	var best *component.Enemy
	bestDist := math.Inf(1)
	for _, e := range s.ecs.Enemies {
		if e.Dead() {
			continue
		}
		if d := utils.Distance(e.X, e.Y, base.X, base.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// fireManual тратит патрон; пустой магазин запускает перезарядку вместо выстрела.
func (s *WeaponSystem) fireManual(x, y float64, base *component.Base, stats config.PlayerStats, boosts config.Boosts) {
	t := s.turret
	if t.Ammo <= 0 || t.Reloading {
		s.startReload()
		return
	}
	s.spawn(math.Atan2(y-base.Y, x-base.X), base, stats, boosts)
	t.Ammo--
}

func (s *WeaponSystem) startReload() {
	t := s.turret
	if t.Reloading || t.Ammo == config.MagazineSize {
		return
	}
	t.Reloading = true
	t.ReloadTimer = config.ReloadTime.Seconds()
}

func (s *WeaponSystem) updateReload(deltaTime float64, requested bool) {
	t := s.turret
	if requested {
		s.startReload()
	}
	if !t.Reloading {
		return
	}
	t.ReloadTimer -= deltaTime
	if t.ReloadTimer <= 0 {
		t.Reloading = false
		t.ReloadTimer = 0
		t.Ammo = config.MagazineSize
	}
}

// spawn создаёт снаряд у дула; урон и скорость уже включают оружие и бусты.
func (s *WeaponSystem) spawn(angle float64, base *component.Base, stats config.PlayerStats, boosts config.Boosts) *component.Projectile {
	boosts = boosts.WithDefaults()
	speed := config.ProjectileBaseSpeed * s.weapon.ProjectileSpeed * boosts.SpeedMultiplier
	p := &component.Projectile{
		Position:     component.Position{X: base.X, Y: base.Y - config.MuzzleOffsetY},
		Velocity:     component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed},
		Damage:       stats.Damage * s.weapon.DamageMultiplier * boosts.DamageMultiplier,
		Color:        s.weapon.Color,
		Weapon:       s.weapon.ID,
		SplashRadius: s.weapon.SplashRadius,
		SlowPercent:  s.weapon.SlowPercent,
		SlowDuration: s.weapon.SlowDuration,
		Piercing:     s.weapon.Piercing,
	}
	s.ecs.AddProjectile(p)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileFiredData{Weapon: s.weapon.ID}})
	return p
}
