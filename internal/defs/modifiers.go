// internal/defs/modifiers.go
package defs

// ModifierID — идентификатор модификатора волны. Пустая строка означает
// отсутствие модификатора.
type ModifierID string

const (
	ModifierNone         ModifierID = ""
	ModifierFortified    ModifierID = "fortified"
	ModifierSwift        ModifierID = "swift"
	ModifierSwarm        ModifierID = "swarm"
	ModifierResilient    ModifierID = "resilient"
	ModifierAggressive   ModifierID = "aggressive"
	ModifierRegenerating ModifierID = "regenerating"
	ModifierEvasive      ModifierID = "evasive"
)

// Multipliers is the bundle a modifier applies to every enemy of its wave.
// Zero fields mean "no effect" and are normalized by the accessors below.
type Multipliers struct {
	EnemyHP         float64
	EnemySpeed      float64
	SpawnInterval   float64
	CollisionDamage float64
	DamageReduction float64 // доля поглощаемого урона, 0.2 = -20%
	HealPerSecond   float64 // проценты maxHP в секунду
}

// WaveModifier is one entry of the modifier catalog.
type WaveModifier struct {
	ID          ModifierID
	Name        string
	Description string
	Multipliers Multipliers
	Erratic     bool // хаотичное движение (evasive)
}

// ModifierOrder is the set the wave roll draws from uniformly.
var ModifierOrder = []ModifierID{
	ModifierFortified,
	ModifierSwift,
	ModifierSwarm,
	ModifierResilient,
	ModifierAggressive,
	ModifierRegenerating,
	ModifierEvasive,
}

var ModifierLibrary = map[ModifierID]WaveModifier{
	ModifierFortified: {
		ID: ModifierFortified, Name: "Fortified",
		Description: "Enemies have +30% HP",
		Multipliers: Multipliers{EnemyHP: 1.3},
	},
	ModifierSwift: {
		ID: ModifierSwift, Name: "Swift",
		Description: "Enemies move 25% faster",
		Multipliers: Multipliers{EnemySpeed: 1.25},
	},
	ModifierSwarm: {
		ID: ModifierSwarm, Name: "Swarm",
		Description: "Twice the spawn rate, enemies have 40% less HP",
		Multipliers: Multipliers{EnemyHP: 0.6, SpawnInterval: 0.5},
	},
	ModifierResilient: {
		ID: ModifierResilient, Name: "Resilient",
		Description: "Enemies take 20% less damage",
		Multipliers: Multipliers{DamageReduction: 0.2},
	},
	ModifierAggressive: {
		ID: ModifierAggressive, Name: "Aggressive",
		Description: "Enemies deal 50% more collision damage",
		Multipliers: Multipliers{CollisionDamage: 1.5},
	},
	ModifierRegenerating: {
		ID: ModifierRegenerating, Name: "Regenerating",
		Description: "Enemies heal 1.5% HP per second",
		Multipliers: Multipliers{HealPerSecond: 1.5},
	},
	ModifierEvasive: {
		ID: ModifierEvasive, Name: "Evasive",
		Description: "Enemies move erratically",
		Multipliers: Multipliers{EnemySpeed: 1.1},
		Erratic:     true,
	},
}

// Modifier returns the catalog entry and whether id names an active modifier.
func Modifier(id ModifierID) (WaveModifier, bool) {
	m, ok := ModifierLibrary[id]
	return m, ok
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func (m Multipliers) HP() float64        { return orOne(m.EnemyHP) }
func (m Multipliers) Speed() float64     { return orOne(m.EnemySpeed) }
func (m Multipliers) Interval() float64  { return orOne(m.SpawnInterval) }
func (m Multipliers) Collision() float64 { return orOne(m.CollisionDamage) }

// DamageTaken is the factor applied to projectile damage.
func (m Multipliers) DamageTaken() float64 { return 1 - m.DamageReduction }

// Affinity maps a modifier to the behavior it favors at spawn.
func Affinity(id ModifierID) (BehaviorType, bool) {
	switch id {
	case ModifierAggressive:
		return BehaviorAggressive, true
	case ModifierEvasive:
		return BehaviorEvasive, true
	case ModifierResilient, ModifierRegenerating:
		return BehaviorTanky, true
	}
	return BehaviorStandard, false
}
