// internal/component/projectile.go
package component

import (
	"image/color"
	"time"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID types.EntityID
	Position
	Velocity

	Damage float64
	Color  color.RGBA
	Weapon defs.WeaponType

	TargetID types.EntityID // 0 — без самонаведения

	SplashRadius float64
	SlowPercent  float64
	SlowDuration time.Duration

	Piercing bool
	HitIDs   map[types.EntityID]struct{}

	Remove bool
}

// AlreadyHit reports whether a piercing projectile has struck id before.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	_, ok := p.HitIDs[id]
	return ok
}

// MarkHit records id in the hit set.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.HitIDs == nil {
		p.HitIDs = make(map[types.EntityID]struct{})
	}
	p.HitIDs[id] = struct{}{}
}
