package event

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// EnemyKilledData is emitted for every enemy that drops to hp <= 0.
type EnemyKilledData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	IsCrit  bool
	Damage  float64 // урон добивающего удара
	X, Y    float64
}

type EnemySpawnedData struct {
	EnemyID  types.EntityID
	Type     defs.EnemyType
	Behavior defs.BehaviorType
}

// BaseHitData — Damage равен нулю, если удар поглотил щит.
type BaseHitData struct {
	Type    defs.EnemyType
	Damage  float64
	Blocked bool
	HP      float64
}

type ProjectileFiredData struct {
	Weapon defs.WeaponType
}

type AbilityActivatedData struct {
	ID defs.AbilityID
}

type WaveAdvancedData struct {
	NewWave       int
	WaveBonusGold int
}

type BattleOverData struct {
	FinalWave int
	Survived  bool
}
