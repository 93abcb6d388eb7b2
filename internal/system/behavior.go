// internal/system/behavior.go
package system

import (
	"math"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
)

const (
	affinityChance  = 0.6
	biasFullAtWave  = 50.0
	standardMin     = 20.0
	aggressiveMax   = 40.0
	evasiveMax      = 35.0
	tankyMax        = 40.0
	standardShift   = 20.0
	aggressiveShift = 15.0
	evasiveShift    = 10.0
	tankyShift      = 15.0
)

// BehaviorSelector выбирает поведение для нового врага.
type BehaviorSelector struct {
	rng *utils.PRNGService
}

func NewBehaviorSelector(rng *utils.PRNGService) *BehaviorSelector {
	return &BehaviorSelector{rng: rng}
}

// Weights returns the effective spawn weights for wave in defs.BehaviorOrder.
func (s *BehaviorSelector) Weights(wave int) []float64 {
	p := math.Min(float64(wave)/biasFullAtWave, 1)
	base := func(b defs.BehaviorType) float64 { return defs.Behavior(b).SpawnWeight }

	return []float64{
		math.Max(standardMin, base(defs.BehaviorStandard)-p*standardShift),
		math.Min(aggressiveMax, base(defs.BehaviorAggressive)+p*aggressiveShift),
		math.Min(evasiveMax, base(defs.BehaviorEvasive)+p*evasiveShift),
		math.Min(tankyMax, base(defs.BehaviorTanky)+p*tankyShift),
	}
}

// Select never fails: STANDARD is returned when no weight matches.
func (s *BehaviorSelector) Select(wave int, modifier defs.ModifierID) defs.BehaviorType {
	if b, ok := defs.Affinity(modifier); ok && s.rng.Chance(affinityChance) {
		return b
	}

	idx := s.rng.ChooseWeighted(s.Weights(wave))
	if idx < 0 || idx >= len(defs.BehaviorOrder) {
		return defs.BehaviorStandard
	}
	return defs.BehaviorOrder[idx]
}
