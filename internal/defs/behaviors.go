// internal/defs/behaviors.go
package defs

import "image/color"

// BehaviorType — поведенческий пресет врага, выбирается при спавне.
type BehaviorType int

const (
	BehaviorStandard BehaviorType = iota
	BehaviorAggressive
	BehaviorEvasive
	BehaviorTanky
)

func (b BehaviorType) String() string {
	switch b {
	case BehaviorAggressive:
		return "AGGRESSIVE"
	case BehaviorEvasive:
		return "EVASIVE"
	case BehaviorTanky:
		return "TANKY"
	default:
		return "STANDARD"
	}
}

// BehaviorDefinition describes a per-enemy trait preset.
type BehaviorDefinition struct {
	ID                  BehaviorType
	SpawnWeight         float64 // 0-100
	HPMultiplier        float64
	SpeedMultiplier     float64
	DamageMultiplier    float64 // табличное значение; при столкновении действует CollisionMultiplier
	CollisionMultiplier float64
	DamageTaken         float64

	HasEvasion         bool
	HasRegeneration    bool
	HasDamageReduction bool

	RegenPerSecond float64 // доля maxHP в секунду

	Color color.RGBA
}

// BehaviorOrder is the iteration order of the weighted draw.
var BehaviorOrder = []BehaviorType{
	BehaviorStandard,
	BehaviorAggressive,
	BehaviorEvasive,
	BehaviorTanky,
}

// BehaviorLibrary holds the four presets.
var BehaviorLibrary = map[BehaviorType]BehaviorDefinition{
	BehaviorStandard: {
		ID: BehaviorStandard, SpawnWeight: 60,
		HPMultiplier: 1.0, SpeedMultiplier: 1.0, DamageMultiplier: 1.0,
		CollisionMultiplier: 1.0, DamageTaken: 1.0,
		Color: color.RGBA{255, 255, 255, 255},
	},
	BehaviorAggressive: {
		ID: BehaviorAggressive, SpawnWeight: 25,
		HPMultiplier: 0.8, SpeedMultiplier: 1.4, DamageMultiplier: 1.5,
		CollisionMultiplier: 1.3, DamageTaken: 1.0,
		Color: color.RGBA{255, 68, 68, 255},
	},
	BehaviorEvasive: {
		ID: BehaviorEvasive, SpawnWeight: 15,
		HPMultiplier: 0.7, SpeedMultiplier: 1.2, DamageMultiplier: 1.0,
		CollisionMultiplier: 1.0, DamageTaken: 1.0,
		HasEvasion: true,
		Color:      color.RGBA{0, 255, 255, 255},
	},
	BehaviorTanky: {
		ID: BehaviorTanky, SpawnWeight: 10,
		HPMultiplier: 1.8, SpeedMultiplier: 0.6, DamageMultiplier: 1.2,
		CollisionMultiplier: 1.0, DamageTaken: 0.85,
		HasRegeneration: true, HasDamageReduction: true,
		RegenPerSecond: 0.010,
		Color:          color.RGBA{0, 255, 0, 255},
	},
}

// Behavior returns the definition for b; unknown values map to STANDARD.
func Behavior(b BehaviorType) BehaviorDefinition {
	if def, ok := BehaviorLibrary[b]; ok {
		return def
	}
	return BehaviorLibrary[BehaviorStandard]
}
