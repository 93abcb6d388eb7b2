package scaling

import (
	"testing"
	"time"
)

func TestEnemyHPMonotonic(t *testing.T) {
	for _, base := range []float64{65, 150, 2500} {
		prev := 0.0
		for wave := 1; wave <= 200; wave++ {
			hp := EnemyHP(base, wave)
			if hp < base {
				t.Fatalf("EnemyHP(%v, %d) = %v, expected >= base", base, wave, hp)
			}
			if hp < prev {
				t.Fatalf("EnemyHP(%v, %d) = %v decreased from %v", base, wave, hp, prev)
			}
			prev = hp
		}
	}
	if got := EnemyHP(150, 6); got != 300 {
		t.Errorf("Expected 300, got %v", got)
	}
}

func TestCollisionDamageFloor(t *testing.T) {
	if got := CollisionDamage(75, 1, 0); got != 75 {
		t.Errorf("Expected 75, got %v", got)
	}
	for _, defense := range []float64{0, 10, 100, 1e6} {
		for wave := 1; wave <= 50; wave++ {
			if got := CollisionDamage(75, wave, defense); got < 7 {
				t.Fatalf("CollisionDamage(75, %d, %v) = %v, expected >= 7", wave, defense, got)
			}
		}
	}
	if got := CollisionDamage(75, 1, 1e6); got != 7 {
		t.Errorf("Expected floor 7, got %v", got)
	}
}

func TestEnemySpeed(t *testing.T) {
	if got := EnemySpeed(100, 1); got != 100 {
		t.Errorf("Expected 100, got %v", got)
	}
	if got := EnemySpeed(100, 11); got < 129.99 || got > 130.01 {
		t.Errorf("Expected ~130, got %v", got)
	}
}

func TestSpawnIntervalClamp(t *testing.T) {
	if got := SpawnInterval(1); got != 1700*time.Millisecond {
		t.Errorf("Expected 1700ms, got %v", got)
	}
	for wave := 13; wave <= 100; wave++ {
		if got := SpawnInterval(wave); got != 500*time.Millisecond {
			t.Fatalf("SpawnInterval(%d) = %v, expected 500ms", wave, got)
		}
	}
}

func TestEnemiesRequiredClamp(t *testing.T) {
	if got := EnemiesRequired(1); got != 11 {
		t.Errorf("Expected 11, got %d", got)
	}
	for wave := 18; wave <= 100; wave++ {
		if got := EnemiesRequired(wave); got != 60 {
			t.Fatalf("EnemiesRequired(%d) = %d, expected 60", wave, got)
		}
	}
}

func TestEconomyAndWaveHelpers(t *testing.T) {
	if got := GoldMultiplier(1); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	if got := WaveBonus(4); got != 200 {
		t.Errorf("Expected 200, got %d", got)
	}
	if !IsBossWave(5) || IsBossWave(6) {
		t.Errorf("Expected boss waves every 5th wave")
	}
	cases := map[int]int{1: 0, 9: 0, 10: 10, 27: 20, 30: 30}
	for in, want := range cases {
		if got := Checkpoint(in); got != want {
			t.Errorf("Checkpoint(%d): expected %d, got %d", in, want, got)
		}
	}
}
