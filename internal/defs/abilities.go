// internal/defs/abilities.go
package defs

import "time"

type AbilityID string

const (
	AbilityPlasmaBurst AbilityID = "plasma_burst"
	AbilityShield      AbilityID = "shield"
	AbilityOverclock   AbilityID = "overclock"
	AbilityEMPPulse    AbilityID = "emp_pulse"
	AbilityRepair      AbilityID = "repair_drone"
)

// AbilityDefinition describes one of the base's active abilities.
// Duration == 0 means the effect is instant.
type AbilityDefinition struct {
	ID       AbilityID
	Name     string
	Hotkey   rune
	Cooldown time.Duration
	Duration time.Duration

	Radius       float64       // plasma_burst, emp_pulse
	DamageFactor float64       // plasma_burst: множитель к stats.damage
	StunDuration time.Duration // emp_pulse
	RepairAmount float64       // repair_drone
}

// AbilityOrder is the HUD/hotkey order (Q W E R F).
var AbilityOrder = []AbilityID{
	AbilityPlasmaBurst,
	AbilityShield,
	AbilityOverclock,
	AbilityEMPPulse,
	AbilityRepair,
}

var AbilityLibrary = map[AbilityID]AbilityDefinition{
	AbilityPlasmaBurst: {
		ID: AbilityPlasmaBurst, Name: "Plasma Burst", Hotkey: 'q',
		Cooldown: 5 * time.Second,
		Radius:   200, DamageFactor: 3,
	},
	AbilityShield: {
		ID: AbilityShield, Name: "Shield", Hotkey: 'w',
		Cooldown: 8 * time.Second, Duration: 5 * time.Second,
	},
	AbilityOverclock: {
		ID: AbilityOverclock, Name: "Overclock", Hotkey: 'e',
		Cooldown: 12 * time.Second, Duration: 8 * time.Second,
	},
	AbilityEMPPulse: {
		ID: AbilityEMPPulse, Name: "EMP Pulse", Hotkey: 'r',
		Cooldown: 6 * time.Second,
		Radius:   300, StunDuration: 2 * time.Second,
	},
	AbilityRepair: {
		ID: AbilityRepair, Name: "Repair", Hotkey: 'f',
		Cooldown:     15 * time.Second,
		RepairAmount: 300,
	},
}
