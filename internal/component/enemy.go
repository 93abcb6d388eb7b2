package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID       types.EntityID
	Type     defs.EnemyType
	Behavior defs.BehaviorType
	Position
	Renderable

	HP    float64
	MaxHP float64

	BaseSpeed    float64 // px/s после масштабирования волной, поведением и модификатором
	CurrentSpeed float64 // пересчитывается каждый тик

	DamageTaken float64 // множитель входящего урона от поведения

	Slow SlowEffect

	// Два независимых источника уклонения: модификатор волны и поведение.
	ModifierEvasion Evasion
	BehaviorEvasion Evasion

	Rotation      float64
	RotationSpeed float64 // rad/s, только для отрисовки
}

// Dead reports whether the enemy should be removed.
func (e *Enemy) Dead() bool {
	return e.HP <= 0
}
