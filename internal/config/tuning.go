// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AimMode selects between pointer-driven and nearest-enemy firing.
type AimMode string

const (
	AimAuto   AimMode = "AUTO"
	AimManual AimMode = "MANUAL"
)

// PlayerStats are the offensive/defensive values handed to the battle by the
// meta-progression layer.
type PlayerStats struct {
	Damage      float64 `yaml:"damage"`
	AttackSpeed float64 `yaml:"attack_speed"`
	CritRate    float64 `yaml:"crit_rate"`   // percent, 0-100
	CritDamage  float64 `yaml:"crit_damage"` // percent, 150 = x1.5
	Defense     float64 `yaml:"defense"`
}

// Boosts are already filtered for expiry by the caller.
type Boosts struct {
	GoldMultiplier   float64 `yaml:"gold_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	CritBonus        float64 `yaml:"crit_bonus"`
	GemChanceBonus   float64 `yaml:"gem_chance_bonus"`
}

// Tuning holds everything a battle needs at start.
type Tuning struct {
	Seed            int64       `yaml:"seed"`
	StartWave       int         `yaml:"start_wave"`
	BaseMaxHP       float64     `yaml:"base_max_hp"`
	Width           float64     `yaml:"width"`
	Height          float64     `yaml:"height"`
	Weapon          string      `yaml:"weapon"`
	AimMode         AimMode     `yaml:"aim_mode"`
	SpeedMultiplier float64     `yaml:"speed_multiplier"`
	Stats           PlayerStats `yaml:"stats"`
	Boosts          Boosts      `yaml:"boosts"`
	EnemiesFile     string      `yaml:"enemies_file"`
	CooldownScale   float64     `yaml:"ability_cooldown_scale"`
}

// DefaultTuning returns the stock balance of a fresh profile.
func DefaultTuning() Tuning {
	return Tuning{
		StartWave:       1,
		BaseMaxHP:       BaseMaxHP,
		Width:           ScreenWidth,
		Height:          ScreenHeight,
		Weapon:          "BLASTER",
		AimMode:         AimAuto,
		SpeedMultiplier: 1,
		CooldownScale:   1,
		Stats: PlayerStats{
			Damage:      25,
			AttackSpeed: 1.0,
			CritRate:    10,
			CritDamage:  150,
			Defense:     0,
		},
		Boosts: Boosts{
			GoldMultiplier:   1,
			DamageMultiplier: 1,
			SpeedMultiplier:  1,
		},
	}
}

// LoadTuning reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values the simulation does not accept.
func (t Tuning) Validate() error {
	if t.StartWave < 1 {
		return fmt.Errorf("start_wave must be >= 1, got %d", t.StartWave)
	}
	if t.SpeedMultiplier != 1 && t.SpeedMultiplier != 2 {
		return fmt.Errorf("speed_multiplier must be 1 or 2, got %v", t.SpeedMultiplier)
	}
	if t.BaseMaxHP <= 0 {
		return fmt.Errorf("base_max_hp must be positive, got %v", t.BaseMaxHP)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %vx%v", t.Width, t.Height)
	}
	if t.CooldownScale <= 0 {
		return fmt.Errorf("ability_cooldown_scale must be positive, got %v", t.CooldownScale)
	}
	switch t.AimMode {
	case AimAuto, AimManual:
	default:
		return fmt.Errorf("unknown aim_mode %q", t.AimMode)
	}
	return nil
}

// WithDefaults replaces zero multipliers with 1 so a zero-value Boosts is neutral.
func (b Boosts) WithDefaults() Boosts {
	if b.GoldMultiplier == 0 {
		b.GoldMultiplier = 1
	}
	if b.DamageMultiplier == 0 {
		b.DamageMultiplier = 1
	}
	if b.SpeedMultiplier == 0 {
		b.SpeedMultiplier = 1
	}
	return b
}
