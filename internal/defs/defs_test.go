package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnemyLibraryCompleteness(t *testing.T) {
	for _, et := range EnemyOrder {
		def, ok := EnemyLibrary[et]
		if !ok {
			t.Fatalf("Expected definition for %s", et)
		}
		if def.Type != et {
			t.Errorf("Expected type %s, got %s", et, def.Type)
		}
		if def.BaseHP <= 0 || def.Radius <= 0 || def.BaseSpeed <= 0 {
			t.Errorf("Definition %s has non-positive stats: %+v", et, def)
		}
	}
	if EnemyLibrary[EnemyBoss].SpawnWeight != 0 {
		t.Errorf("Expected boss to be excluded from weighted spawn")
	}
	circle := Enemy(EnemyCircle)
	if circle.BaseHP != 150 || circle.BaseDamage != 75 || circle.Radius != 15 {
		t.Errorf("Unexpected CIRCLE stats: %+v", circle)
	}
	if Enemy("UNKNOWN").Type != EnemyCircle {
		t.Errorf("Expected unknown type to fall back to CIRCLE")
	}
}

func TestBehaviorWeightsPositive(t *testing.T) {
	var total float64
	for _, b := range BehaviorOrder {
		total += Behavior(b).SpawnWeight
	}
	if total <= 0 {
		t.Errorf("Expected positive total weight, got %v", total)
	}
	if Behavior(BehaviorTanky).DamageTaken != 0.85 {
		t.Errorf("Expected TANKY damage taken 0.85, got %v", Behavior(BehaviorTanky).DamageTaken)
	}
	if Behavior(BehaviorType(42)).ID != BehaviorStandard {
		t.Errorf("Expected unknown behavior to fall back to STANDARD")
	}
	if BehaviorEvasive.String() != "EVASIVE" {
		t.Errorf("Expected EVASIVE, got %s", BehaviorEvasive.String())
	}
}

func TestModifierMultiplierDefaults(t *testing.T) {
	fortified, _ := Modifier(ModifierFortified)
	if fortified.Multipliers.HP() != 1.3 {
		t.Errorf("Expected fortified hp 1.3, got %v", fortified.Multipliers.HP())
	}
	if fortified.Multipliers.Speed() != 1 || fortified.Multipliers.Collision() != 1 {
		t.Errorf("Expected unset multipliers to normalize to 1")
	}
	resilient, _ := Modifier(ModifierResilient)
	if resilient.Multipliers.DamageTaken() != 0.8 {
		t.Errorf("Expected resilient damage taken 0.8, got %v", resilient.Multipliers.DamageTaken())
	}
	if _, ok := Modifier(ModifierNone); ok {
		t.Errorf("Expected no catalog entry for the empty modifier")
	}
	if !ModifierLibrary[ModifierEvasive].Erratic {
		t.Errorf("Expected evasive modifier to be erratic")
	}
	if len(ModifierOrder) != len(ModifierLibrary) {
		t.Errorf("Expected %d modifiers in roll order, got %d", len(ModifierLibrary), len(ModifierOrder))
	}
}

func TestAffinity(t *testing.T) {
	cases := map[ModifierID]BehaviorType{
		ModifierAggressive:   BehaviorAggressive,
		ModifierEvasive:      BehaviorEvasive,
		ModifierResilient:    BehaviorTanky,
		ModifierRegenerating: BehaviorTanky,
	}
	for id, want := range cases {
		got, ok := Affinity(id)
		if !ok || got != want {
			t.Errorf("Affinity(%s): expected %s, got %s (ok=%v)", id, want, got, ok)
		}
	}
	if _, ok := Affinity(ModifierSwift); ok {
		t.Errorf("Expected swift to have no affinity")
	}
}

func TestWeaponAndAbilityCatalogs(t *testing.T) {
	if !Weapon(WeaponLaser).Piercing {
		t.Errorf("Expected laser to pierce")
	}
	if Weapon(WeaponMissile).SplashRadius != 60 {
		t.Errorf("Expected missile splash 60, got %v", Weapon(WeaponMissile).SplashRadius)
	}
	if Weapon("NOPE").ID != WeaponBlaster {
		t.Errorf("Expected unknown weapon to fall back to blaster")
	}
	for _, id := range AbilityOrder {
		def, ok := AbilityLibrary[id]
		if !ok || def.Cooldown <= 0 {
			t.Errorf("Ability %s missing or without cooldown", id)
		}
	}
}

func TestParseEnemyDefinitionsOverlay(t *testing.T) {
	data := []byte(`
- type: CIRCLE
  base_hp: 999
- type: SWARM
  gold_reward: 7
`)
	lib, err := ParseEnemyDefinitions(data, DefaultEnemyDefinitions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lib[EnemyCircle].BaseHP != 999 {
		t.Errorf("Expected overridden hp 999, got %v", lib[EnemyCircle].BaseHP)
	}
	if lib[EnemyCircle].BaseDamage != 75 {
		t.Errorf("Expected untouched damage 75, got %v", lib[EnemyCircle].BaseDamage)
	}
	if lib[EnemySwarm].GoldReward != 7 {
		t.Errorf("Expected swarm gold 7, got %v", lib[EnemySwarm].GoldReward)
	}
	if EnemyLibrary[EnemyCircle].BaseHP != 150 {
		t.Errorf("Expected global library to stay untouched")
	}
}

func TestParseEnemyDefinitionsErrors(t *testing.T) {
	if _, err := ParseEnemyDefinitions([]byte("- base_hp: 10\n"), DefaultEnemyDefinitions()); err == nil {
		t.Errorf("Expected error for entry without type")
	}
	if _, err := ParseEnemyDefinitions([]byte("- type: CIRCLE\n  base_hp: 0\n"), DefaultEnemyDefinitions()); err == nil {
		t.Errorf("Expected error for zero hp")
	}
	if _, err := ParseEnemyDefinitions([]byte("{not a list"), DefaultEnemyDefinitions()); err == nil {
		t.Errorf("Expected error for malformed yaml")
	}
}

func TestLoadEnemyDefinitions(t *testing.T) {
	saved := EnemyLibrary
	defer func() { EnemyLibrary = saved }()

	path := filepath.Join(t.TempDir(), "enemies.yaml")
	if err := os.WriteFile(path, []byte("- type: TANK\n  base_speed: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if EnemyLibrary[EnemyTank].BaseSpeed != 25 {
		t.Errorf("Expected tank speed 25, got %v", EnemyLibrary[EnemyTank].BaseSpeed)
	}
	if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
