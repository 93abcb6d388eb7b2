// internal/component/turret.go
package component

import "go-wave-defense/internal/types"

// Turret — орудие базы.
type Turret struct {
	// Angle - текущий угол поворота в радианах.
	Angle float64
	// FireTimer - секунды, накопленные с последнего выстрела (AUTO).
	FireTimer float64
	// HoldTimer - то же для удержания в режиме MANUAL.
	HoldTimer float64
	// TargetID - ID цели, на которую наведена турель.
	TargetID types.EntityID

	Ammo        int
	Reloading   bool
	ReloadTimer float64 // секунды до конца перезарядки
}
