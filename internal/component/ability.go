package component

import (
	"time"

	"go-wave-defense/internal/defs"
)

// Ability — состояние одной способности базы.
type Ability struct {
	ID                defs.AbilityID
	Cooldown          time.Duration
	Duration          time.Duration
	RemainingCooldown time.Duration
	ActiveUntil       time.Time // нулевое значение — эффект не активен
}

// Ready reports whether the ability may be activated.
func (a *Ability) Ready() bool {
	return a.RemainingCooldown <= 0
}

// Active reports whether a timed effect is running at now.
func (a *Ability) Active(now time.Time) bool {
	return !a.ActiveUntil.IsZero() && now.Before(a.ActiveUntil)
}
