// internal/defs/weapons.go
package defs

import (
	"image/color"
	"time"
)

type WeaponType string

const (
	WeaponBlaster WeaponType = "BLASTER"
	WeaponMissile WeaponType = "MISSILE"
	WeaponLaser   WeaponType = "LASER"
	WeaponCryo    WeaponType = "CRYO"
)

// WeaponDefinition — параметры оружия базы. ProjectileSpeed задаётся
// относительно config.ProjectileBaseSpeed.
type WeaponDefinition struct {
	ID                    WeaponType
	Name                  string
	DamageMultiplier      float64
	AttackSpeedMultiplier float64
	ProjectileSpeed       float64
	SplashRadius          float64 // 0 — без сплэша
	SlowPercent           float64 // 0 — без замедления
	SlowDuration          time.Duration
	Piercing              bool
	Color                 color.RGBA
}

var WeaponLibrary = map[WeaponType]WeaponDefinition{
	WeaponBlaster: {
		ID: WeaponBlaster, Name: "Plasma Blaster",
		DamageMultiplier: 1.0, AttackSpeedMultiplier: 1.0, ProjectileSpeed: 0.8,
		Color: color.RGBA{0, 240, 255, 255},
	},
	WeaponMissile: {
		ID: WeaponMissile, Name: "Homing Missiles",
		DamageMultiplier: 1.5, AttackSpeedMultiplier: 0.6, ProjectileSpeed: 0.5,
		SplashRadius: 60,
		Color:        color.RGBA{255, 107, 0, 255},
	},
	WeaponLaser: {
		ID: WeaponLaser, Name: "Focus Laser",
		DamageMultiplier: 0.4, AttackSpeedMultiplier: 3.0, ProjectileSpeed: 2.0,
		Piercing: true,
		Color:    color.RGBA{188, 19, 254, 255},
	},
	WeaponCryo: {
		ID: WeaponCryo, Name: "Cryo Cannon",
		DamageMultiplier: 0.7, AttackSpeedMultiplier: 0.8, ProjectileSpeed: 0.6,
		SlowPercent: 50, SlowDuration: 3000 * time.Millisecond,
		Color: color.RGBA{0, 255, 255, 255},
	},
}

// Weapon returns the definition for id; unknown ids fall back to the blaster.
func Weapon(id WeaponType) WeaponDefinition {
	if def, ok := WeaponLibrary[id]; ok {
		return def
	}
	return WeaponLibrary[WeaponBlaster]
}
