// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type        EnemyType `yaml:"type"`
	BaseHP      float64   `yaml:"base_hp"`     // HP на первой волне
	BaseSpeed   float64   `yaml:"base_speed"`  // px/s
	BaseDamage  float64   `yaml:"base_damage"` // урон базе при столкновении
	Radius      float64   `yaml:"radius"`
	SpawnWeight float64   `yaml:"spawn_weight"` // 0 — только особый спавн (босс)
	GoldReward  float64   `yaml:"gold_reward"`
	ScoreReward float64   `yaml:"score_reward"`
	Visuals     Visuals   `yaml:"visuals"`
}

// EnemyOrder is the fixed iteration order used by weighted type selection.
var EnemyOrder = []EnemyType{
	EnemyCircle,
	EnemyTriangle,
	EnemySquare,
	EnemySwarm,
	EnemyTank,
	EnemyBoss,
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their type.
var EnemyLibrary map[EnemyType]EnemyDefinition

func init() {
	EnemyLibrary = DefaultEnemyDefinitions()
}

// DefaultEnemyDefinitions returns the stock enemy balance.
func DefaultEnemyDefinitions() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyCircle: {
			Type: EnemyCircle, BaseHP: 150, BaseSpeed: 55, BaseDamage: 75, Radius: 15,
			SpawnWeight: 50, GoldReward: 5, ScoreReward: 10,
			Visuals: Visuals{Color: color.RGBA{0, 240, 255, 255}},
		},
		EnemyTriangle: {
			Type: EnemyTriangle, BaseHP: 200, BaseSpeed: 45, BaseDamage: 100, Radius: 18,
			SpawnWeight: 25, GoldReward: 10, ScoreReward: 15,
			Visuals: Visuals{Color: color.RGBA{252, 238, 10, 255}},
		},
		EnemySquare: {
			Type: EnemySquare, BaseHP: 350, BaseSpeed: 35, BaseDamage: 150, Radius: 20,
			SpawnWeight: 10, GoldReward: 15, ScoreReward: 25,
			Visuals: Visuals{Color: color.RGBA{188, 19, 254, 255}},
		},
		EnemySwarm: {
			Type: EnemySwarm, BaseHP: 65, BaseSpeed: 80, BaseDamage: 40, Radius: 8,
			SpawnWeight: 10, GoldReward: 2, ScoreReward: 5,
			Visuals: Visuals{Color: color.RGBA{57, 255, 20, 255}},
		},
		EnemyTank: {
			Type: EnemyTank, BaseHP: 600, BaseSpeed: 20, BaseDamage: 250, Radius: 30,
			SpawnWeight: 5, GoldReward: 30, ScoreReward: 50,
			Visuals: Visuals{Color: color.RGBA{139, 69, 19, 255}},
		},
		EnemyBoss: {
			Type: EnemyBoss, BaseHP: 2500, BaseSpeed: 18, BaseDamage: 500, Radius: 40,
			SpawnWeight: 0, GoldReward: 100, ScoreReward: 500,
			Visuals: Visuals{Color: color.RGBA{255, 0, 60, 255}},
		},
	}
}

// Enemy returns the definition for t, falling back to CIRCLE for unknown types.
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[EnemyCircle]
}
