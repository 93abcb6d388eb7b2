// internal/app/battle.go
package app

import (
	"log"
	"time"

	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/scaling"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
)

// TickInputs — то, что внешние системы передают в бой на каждый тик.
type TickInputs struct {
	Stats     config.PlayerStats
	Boosts    config.Boosts
	Fire      system.FireControl
	Abilities []defs.AbilityID // запросы активации, обрабатываются в начале тика
}

// TickEvents collects everything emitted since the previous Tick returned.
type TickEvents struct {
	Kills        []event.EnemyKilledData
	BaseHits     []event.BaseHitData
	Abilities    []defs.AbilityID
	WaveAdvanced *event.WaveAdvancedData
	BattleOver   *event.BattleOverData
}

// Battle holds the simulation state of one battle session.
type Battle struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Clock           clock.Clock
	Rng             *utils.PRNGService
	Tuning          config.Tuning
	Base            *component.Base
	Wave            *component.Wave

	WaveSystem         *system.WaveSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	AbilitySystem      *system.AbilitySystem
	WeaponSystem       *system.WeaponSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	RewardSystem       *system.RewardSystem

	speedMultiplier float64
	simTime         time.Duration
	pending         TickEvents
}

// NewBattle wires all systems for tuning. A zero seed picks a time-based one.
func NewBattle(tuning config.Tuning, clk clock.Clock) *Battle {
	if clk == nil {
		clk = clock.NewReal()
	}
	seed := tuning.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	visuals := system.NewVisualEffectSystem(ecs, utils.NewPRNGService(seed+1))
	bx, by := config.BasePosition(tuning.Width, tuning.Height)

	b := &Battle{
		ECS:             ecs,
		EventDispatcher: d,
		Clock:           clk,
		Rng:             rng,
		Tuning:          tuning,
		Base: &component.Base{
			Position: component.Position{X: bx, Y: by},
			HP:       tuning.BaseMaxHP,
			MaxHP:    tuning.BaseMaxHP,
		},
		WaveSystem:         system.NewWaveSystem(ecs, d, rng, tuning.Width, tuning.Height),
		StatusEffectSystem: system.NewStatusEffectSystem(ecs, clk),
		MovementSystem:     system.NewMovementSystem(ecs, rng),
		CombatSystem:       system.NewCombatSystem(ecs, d, visuals),
		ProjectileSystem:   system.NewProjectileSystem(ecs, d, visuals, rng, clk, tuning.Width, tuning.Height),
		AbilitySystem:      system.NewAbilitySystem(ecs, d, visuals, clk, tuning.CooldownScale),
		WeaponSystem:       system.NewWeaponSystem(ecs, d, defs.Weapon(defs.WeaponType(tuning.Weapon))),
		VisualEffectSystem: visuals,
		StateSystem:        system.NewStateSystem(d),
		speedMultiplier:    tuning.SpeedMultiplier,
	}
	b.RewardSystem = system.NewRewardSystem(d, utils.NewPRNGService(seed+2), tuning.Boosts, b.WaveNumber)

	startWave := max(tuning.StartWave, 1)
	b.Wave = b.WaveSystem.StartWave(startWave)

	d.SubscribeMany(b, event.EnemyKilled, event.BaseHit, event.AbilityActivated, event.WaveAdvanced, event.BattleOver)
	log.Printf("Battle started on wave %d with %s", startWave, b.WeaponSystem.Weapon().Name)
	return b
}

// OnEvent считает убийства для текущей волны и собирает события тика.
func (b *Battle) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		b.Wave.KilledThisWave++
		b.pending.Kills = append(b.pending.Kills, data)
	case event.BaseHitData:
		b.pending.BaseHits = append(b.pending.BaseHits, data)
	case event.AbilityActivatedData:
		b.pending.Abilities = append(b.pending.Abilities, data.ID)
	case event.WaveAdvancedData:
		b.pending.WaveAdvanced = &data
	case event.BattleOverData:
		b.pending.BattleOver = &data
	}
}

// DefaultInputs returns inputs built from the battle's tuning.
func (b *Battle) DefaultInputs() TickInputs {
	return TickInputs{
		Stats:  b.Tuning.Stats,
		Boosts: b.Tuning.Boosts,
		Fire:   system.FireControl{Mode: b.Tuning.AimMode},
	}
}

// Tick продвигает симуляцию на delta реального времени. delta обрезается до
// config.MaxDeltaTime и умножается на множитель скорости; кулдауны
// способностей идут по необрезанному delta. После конца боя Tick ничего не
// делает.
func (b *Battle) Tick(delta time.Duration, in TickInputs) TickEvents {
	if b.StateSystem.Over() {
		return TickEvents{}
	}

	speed := b.speedMultiplier
	scaled := time.Duration(float64(min(delta, config.MaxDeltaTime)) * speed)
	dt := scaled.Seconds()
	b.simTime += scaled

	boosts := in.Boosts.WithDefaults()
	b.RewardSystem.SetBoosts(boosts)
	hit := system.HitStats{CritRate: in.Stats.CritRate + boosts.CritBonus, CritDamage: in.Stats.CritDamage}

	b.WaveSystem.Update(dt, b.Wave)

	b.AbilitySystem.Update(delta)
	for _, id := range in.Abilities {
		b.Activate(id, in.Stats)
	}

	b.WeaponSystem.Update(dt, in.Fire, b.Base, in.Stats, boosts, b.AbilitySystem.OverclockActive())

	b.StatusEffectSystem.Update(dt, b.Wave)
	b.MovementSystem.Update(dt, b.Wave, b.Base.X, b.Base.Y)
	b.CombatSystem.Update(b.Wave, b.Base, in.Stats.Defense, b.AbilitySystem.ShieldActive())
	b.ProjectileSystem.Update(dt, b.Wave, hit)
	b.VisualEffectSystem.Update(dt)

	switch {
	case b.Base.HP <= 0:
		b.StateSystem.EndBattle(b.Wave.Number)
	case b.WaveSystem.Complete(b.Wave):
		b.StateSystem.SwitchToWaveComplete()
		b.WaveSystem.Advance(b.Wave)
		b.StateSystem.SwitchToSpawning()
	}

	out := b.pending
	b.pending = TickEvents{}
	return out
}

// Activate triggers an ability outside of Tick. Events land in the next TickEvents.
func (b *Battle) Activate(id defs.AbilityID, stats config.PlayerStats) bool {
	if b.StateSystem.Over() {
		return false
	}
	return b.AbilitySystem.Activate(id, b.Base, stats.Damage)
}

func (b *Battle) Over() bool {
	return b.StateSystem.Over()
}

func (b *Battle) Phase() component.Phase {
	return b.StateSystem.Current()
}

func (b *Battle) WaveNumber() int {
	return b.Wave.Number
}

// Checkpoint is the restart wave for the next battle.
func (b *Battle) Checkpoint() int {
	return scaling.Checkpoint(b.Wave.Highest)
}

// SetSpeed accepts 1 or 2; the change applies from the next Tick.
func (b *Battle) SetSpeed(m float64) {
	if m == 1 || m == 2 {
		b.speedMultiplier = m
	}
}

func (b *Battle) Speed() float64 {
	return b.speedMultiplier
}

// SimTime is the scaled simulation time elapsed so far.
func (b *Battle) SimTime() time.Duration {
	return b.simTime
}

func (b *Battle) Rewards() system.BattleRewards {
	return b.RewardSystem.Rewards
}
