// Package scaling maps base stats and a wave number to the values used in battle.
// Все функции ожидают wave >= 1.
package scaling

import (
	"math"
	"time"
)

const (
	hpPerWave        = 0.20
	damagePerWave    = 0.15
	damageFloor      = 0.10
	speedPerWave     = 0.03
	goldPerWave      = 0.10
	waveBonusPerWave = 50

	spawnIntervalStart = 1800 * time.Millisecond
	spawnIntervalStep  = 100 * time.Millisecond
	spawnIntervalMin   = 500 * time.Millisecond

	requiredBase    = 8
	requiredPerWave = 3
	requiredMax     = 60
)

func EnemyHP(base float64, wave int) float64 {
	return math.Floor(base * (1 + float64(wave-1)*hpPerWave))
}

// CollisionDamage subtracts defense flatly but never drops below 10% of base.
func CollisionDamage(base float64, wave int, defense float64) float64 {
	scaled := math.Floor(base*(1+float64(wave-1)*damagePerWave)) - defense
	return math.Max(scaled, math.Floor(base*damageFloor))
}

func EnemySpeed(base float64, wave int) float64 {
	return base * (1 + float64(wave-1)*speedPerWave)
}

func SpawnInterval(wave int) time.Duration {
	d := spawnIntervalStart - time.Duration(wave)*spawnIntervalStep
	if d < spawnIntervalMin {
		return spawnIntervalMin
	}
	return d
}

func EnemiesRequired(wave int) int {
	return min(requiredBase+wave*requiredPerWave, requiredMax)
}

// GoldMultiplier — бонус золота за убийство на данной волне.
func GoldMultiplier(wave int) float64 {
	return 1 + float64(wave-1)*goldPerWave
}

// WaveBonus is the gold granted for completing wave.
func WaveBonus(wave int) int {
	return wave * waveBonusPerWave
}

// IsBossWave reports whether wave spawns a boss.
func IsBossWave(wave int) bool {
	return wave%5 == 0
}

// Checkpoint rounds the highest reached wave down to a multiple of ten.
func Checkpoint(highest int) int {
	return highest / 10 * 10
}
