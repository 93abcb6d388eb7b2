package utils

import (
	"math"
	"testing"
)

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	weights := []float64{50, 25, 25}
	counts := make([]int, len(weights))
	const draws = 60000

	for i := 0; i < draws; i++ {
		idx := rng.ChooseWeighted(weights)
		if idx < 0 {
			t.Fatalf("Expected a valid index, got %d", idx)
		}
		counts[idx]++
	}

	for i, w := range weights {
		got := float64(counts[i]) / draws
		want := w / 100
		if math.Abs(got-want) > 0.01 {
			t.Errorf("Expected share %.3f for index %d, got %.3f", want, i, got)
		}
	}
}

func TestChooseWeightedSkipsZeroWeights(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if idx := rng.ChooseWeighted([]float64{0, 3, 0}); idx != 1 {
			t.Fatalf("Expected index 1, got %d", idx)
		}
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	rng := NewPRNGService(1)
	if idx := rng.ChooseWeighted(nil); idx != -1 {
		t.Errorf("Expected -1 for empty weights, got %d", idx)
	}
	if idx := rng.ChooseWeighted([]float64{0, 0}); idx != -1 {
		t.Errorf("Expected -1 for zero weights, got %d", idx)
	}
}

func TestSeededServicesAreReproducible(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(math.Pi/2, 5.5, 0.3); math.Abs(got-(math.Pi/2*0.7+5.5*0.3)) > 1e-9 {
		t.Errorf("Expected plain linear mix, got %f", got)
	}
}

func TestRegularPolygon(t *testing.T) {
	pts := RegularPolygon(10, 20, 5, 4, 0)
	if len(pts) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(pts))
	}
	if math.Abs(pts[0][0]-15) > 1e-9 || math.Abs(pts[0][1]-20) > 1e-9 {
		t.Errorf("Expected first vertex (15, 20), got %v", pts[0])
	}
	if math.Abs(pts[1][0]-10) > 1e-9 || math.Abs(pts[1][1]-25) > 1e-9 {
		t.Errorf("Expected second vertex (10, 25), got %v", pts[1])
	}
	if RegularPolygon(0, 0, 1, 2, 0) != nil {
		t.Error("Expected nil for fewer than 3 sides")
	}
}
