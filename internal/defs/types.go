// internal/defs/types.go
package defs

import "image/color"

// EnemyType identifies an enemy archetype.
type EnemyType string

const (
	EnemyCircle   EnemyType = "CIRCLE"
	EnemyTriangle EnemyType = "TRIANGLE"
	EnemySquare   EnemyType = "SQUARE"
	EnemySwarm    EnemyType = "SWARM"
	EnemyTank     EnemyType = "TANK"
	EnemyBoss     EnemyType = "BOSS"
)

// Visuals contains parameters for rendering; the simulation never reads them.
type Visuals struct {
	Color color.RGBA `yaml:"color"`
}
