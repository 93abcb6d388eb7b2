package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("Expected default tuning to validate, got %v", err)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battle.yaml")
	data := []byte("seed: 77\nweapon: LASER\nstats:\n  defense: 20\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write tuning file: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tuning.Seed != 77 {
		t.Errorf("Expected seed 77, got %d", tuning.Seed)
	}
	if tuning.Weapon != "LASER" {
		t.Errorf("Expected weapon LASER, got %s", tuning.Weapon)
	}
	if tuning.Stats.Defense != 20 {
		t.Errorf("Expected defense 20, got %v", tuning.Stats.Defense)
	}
	// untouched keys keep defaults
	if tuning.Stats.Damage != 25 {
		t.Errorf("Expected default damage 25, got %v", tuning.Stats.Damage)
	}
	if tuning.BaseMaxHP != BaseMaxHP {
		t.Errorf("Expected default base HP %v, got %v", BaseMaxHP, tuning.BaseMaxHP)
	}
}

func TestLoadTuningRejectsBadSpeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battle.yaml")
	if err := os.WriteFile(path, []byte("speed_multiplier: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write tuning file: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Error("Expected error for speed multiplier 3")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestBasePosition(t *testing.T) {
	x, y := BasePosition(1200, 900)
	if x != 600 || y != 800 {
		t.Errorf("Expected base at (600, 800), got (%v, %v)", x, y)
	}
}
