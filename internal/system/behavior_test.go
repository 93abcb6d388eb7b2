package system

import (
	"math"
	"testing"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
)

func TestBehaviorDistributionWaveOne(t *testing.T) {
	sel := NewBehaviorSelector(utils.NewPRNGService(7))
	weights := sel.Weights(1)
	total := 0.0
	for _, w := range weights {
		total += w
	}

	const draws = 100000
	counts := make(map[defs.BehaviorType]int)
	for i := 0; i < draws; i++ {
		counts[sel.Select(1, defs.ModifierNone)]++
	}

	for i, b := range defs.BehaviorOrder {
		want := weights[i] / total
		got := float64(counts[b]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s: expected ~%.3f, got %.3f", b, want, got)
		}
	}
}

func TestBehaviorWeightsBias(t *testing.T) {
	sel := NewBehaviorSelector(utils.NewPRNGService(1))
	w1 := sel.Weights(1)
	w50 := sel.Weights(50)
	w200 := sel.Weights(200)

	if w50[0] >= w1[0] {
		t.Errorf("Expected STANDARD weight to drop with waves: %v -> %v", w1[0], w50[0])
	}
	for i := 1; i < 4; i++ {
		if w50[i] <= w1[i] {
			t.Errorf("Expected weight %d to grow with waves: %v -> %v", i, w1[i], w50[i])
		}
	}
	for i := range w50 {
		if w50[i] != w200[i] {
			t.Errorf("Expected bias to saturate at wave 50, got %v vs %v", w50, w200)
			break
		}
	}
	if w200[0] < 20 {
		t.Errorf("Expected STANDARD weight floored at 20, got %v", w200[0])
	}
	if w200[1] > 40 || w200[2] > 35 || w200[3] > 40 {
		t.Errorf("Expected capped weights, got %v", w200)
	}
}

func TestBehaviorModifierAffinity(t *testing.T) {
	sel := NewBehaviorSelector(utils.NewPRNGService(11))
	weights := sel.Weights(1)
	total := 0.0
	for _, w := range weights {
		total += w
	}
	want := 0.6 + 0.4*weights[1]/total

	const draws = 50000
	n := 0
	for i := 0; i < draws; i++ {
		if sel.Select(1, defs.ModifierAggressive) == defs.BehaviorAggressive {
			n++
		}
	}
	got := float64(n) / draws
	if math.Abs(got-want) > 0.015 {
		t.Errorf("Expected ~%.3f AGGRESSIVE under aggressive modifier, got %.3f", want, got)
	}
}
