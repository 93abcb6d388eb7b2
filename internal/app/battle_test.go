package app

import (
	"math"
	"testing"
	"time"

	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/scaling"
)

func newTestBattle(t *testing.T) (*Battle, *clock.Mock) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	clk := clock.NewMock(time.Unix(1_700_000_000, 0))
	b := NewBattle(tuning, clk)
	b.Wave.Modifier = defs.ModifierNone
	return b, clk
}

func place(b *Battle, t defs.EnemyType, x, y, hp float64) *component.Enemy {
	def := defs.Enemy(t)
	e := &component.Enemy{
		Type:        t,
		Behavior:    defs.BehaviorStandard,
		Position:    component.Position{X: x, Y: y},
		Renderable:  component.Renderable{Color: def.Visuals.Color, Radius: def.Radius},
		HP:          hp,
		MaxHP:       hp,
		BaseSpeed:   def.BaseSpeed,
		DamageTaken: 1,
	}
	b.ECS.AddEnemy(e)
	return e
}

func TestTickBaseCollision(t *testing.T) {
	b, _ := newTestBattle(t)
	place(b, defs.EnemyCircle, b.Base.X, b.Base.Y, 10)

	out := b.Tick(16*time.Millisecond, b.DefaultInputs())

	if b.Base.HP != 2925 {
		t.Errorf("Expected base HP 2925, got %v", b.Base.HP)
	}
	if len(out.BaseHits) != 1 {
		t.Fatalf("Expected 1 base hit, got %d", len(out.BaseHits))
	}
	if len(b.ECS.Enemies) != 0 {
		t.Errorf("Expected enemy removed on collision, got %d enemies", len(b.ECS.Enemies))
	}
}

func TestShieldFromInputsBlocksCollision(t *testing.T) {
	b, _ := newTestBattle(t)
	place(b, defs.EnemyCircle, b.Base.X, b.Base.Y, 10)

	in := b.DefaultInputs()
	in.Abilities = []defs.AbilityID{defs.AbilityShield}
	out := b.Tick(16*time.Millisecond, in)

	if b.Base.HP != b.Base.MaxHP {
		t.Errorf("Expected shield to block damage, got HP %v", b.Base.HP)
	}
	if len(out.Abilities) != 1 || out.Abilities[0] != defs.AbilityShield {
		t.Errorf("Expected shield activation event, got %v", out.Abilities)
	}
	if len(out.BaseHits) != 1 || !out.BaseHits[0].Blocked {
		t.Errorf("Expected one blocked base hit, got %+v", out.BaseHits)
	}
}

func TestBattleOverEmittedOnce(t *testing.T) {
	b, _ := newTestBattle(t)
	b.Base.HP = 50
	place(b, defs.EnemyTank, b.Base.X, b.Base.Y, 10)
	place(b, defs.EnemyTank, b.Base.X, b.Base.Y, 10)

	out := b.Tick(16*time.Millisecond, b.DefaultInputs())
	if out.BattleOver == nil {
		t.Fatal("Expected battle over event")
	}
	if out.BattleOver.FinalWave != 1 || out.BattleOver.Survived {
		t.Errorf("Expected final wave 1 not survived, got %+v", *out.BattleOver)
	}
	if b.Base.HP != 0 {
		t.Errorf("Expected HP clamped to 0, got %v", b.Base.HP)
	}
	if b.Phase() != component.PhaseBattleOver {
		t.Errorf("Expected phase BATTLE_OVER, got %s", b.Phase())
	}

	place(b, defs.EnemyCircle, b.Base.X, b.Base.Y, 10)
	again := b.Tick(16*time.Millisecond, b.DefaultInputs())
	if again.BattleOver != nil || len(again.BaseHits) != 0 {
		t.Errorf("Expected no events after battle over, got %+v", again)
	}
	if len(b.ECS.Enemies) != 1 {
		t.Errorf("Expected world frozen after battle over, got %d enemies", len(b.ECS.Enemies))
	}
	if b.Activate(defs.AbilityRepair, b.Tuning.Stats) {
		t.Error("Expected activation to be rejected after battle over")
	}
}

func TestWaveAdvancesOnceWithExcessKills(t *testing.T) {
	b, _ := newTestBattle(t)
	b.Wave.KilledThisWave = b.Wave.Required - 1
	place(b, defs.EnemyCircle, b.Base.X, b.Base.Y-100, 10)
	place(b, defs.EnemyCircle, b.Base.X+50, b.Base.Y-100, 10)

	in := b.DefaultInputs()
	in.Abilities = []defs.AbilityID{defs.AbilityPlasmaBurst}
	out := b.Tick(16*time.Millisecond, in)

	if len(out.Kills) != 2 {
		t.Fatalf("Expected 2 kills, got %d", len(out.Kills))
	}
	if out.WaveAdvanced == nil {
		t.Fatal("Expected wave advanced event")
	}
	if out.WaveAdvanced.NewWave != 2 {
		t.Errorf("Expected new wave 2, got %d", out.WaveAdvanced.NewWave)
	}
	if b.Wave.Number != 2 || b.Wave.KilledThisWave != 0 {
		t.Errorf("Expected wave 2 with 0 kills, got wave %d kills %d", b.Wave.Number, b.Wave.KilledThisWave)
	}
	if b.Rewards().WavesCompleted != 1 {
		t.Errorf("Expected 1 completed wave, got %d", b.Rewards().WavesCompleted)
	}
}

func TestTickClampsDeltaAndAppliesSpeed(t *testing.T) {
	b, _ := newTestBattle(t)
	e := place(b, defs.EnemyCircle, b.Base.X, 100, 1000)
	speed := defs.Enemy(defs.EnemyCircle).BaseSpeed

	b.Tick(time.Second, b.DefaultInputs())
	if math.Abs(e.Y-(100+speed*0.05)) > 1e-6 {
		t.Errorf("Expected y %v, got %v", 100+speed*0.05, e.Y)
	}

	b.SetSpeed(2)
	y := e.Y
	b.Tick(time.Second, b.DefaultInputs())
	if math.Abs(e.Y-(y+speed*0.1)) > 1e-6 {
		t.Errorf("Expected y %v at x2, got %v", y+speed*0.1, e.Y)
	}
	if b.SimTime() != 150*time.Millisecond {
		t.Errorf("Expected 150ms simulated, got %v", b.SimTime())
	}
}

func TestSetSpeedRejectsOtherValues(t *testing.T) {
	b, _ := newTestBattle(t)
	b.SetSpeed(3)
	if b.Speed() != 1 {
		t.Errorf("Expected speed to stay 1, got %v", b.Speed())
	}
}

func TestCooldownsUseWallDelta(t *testing.T) {
	b, _ := newTestBattle(t)
	b.SetSpeed(2)
	if !b.Activate(defs.AbilityShield, b.Tuning.Stats) {
		t.Fatal("Expected shield activation")
	}

	b.Tick(time.Second, b.DefaultInputs())

	a, _ := b.AbilitySystem.Get(defs.AbilityShield)
	if a.RemainingCooldown != 7*time.Second {
		t.Errorf("Expected 7s cooldown left, got %v", a.RemainingCooldown)
	}
}

func TestEventsBetweenTicksReported(t *testing.T) {
	b, _ := newTestBattle(t)
	b.Activate(defs.AbilityRepair, b.Tuning.Stats)

	out := b.Tick(16*time.Millisecond, b.DefaultInputs())
	if len(out.Abilities) != 1 {
		t.Errorf("Expected activation reported on next tick, got %v", out.Abilities)
	}
	if next := b.Tick(16*time.Millisecond, b.DefaultInputs()); len(next.Abilities) != 0 {
		t.Errorf("Expected events drained, got %v", next.Abilities)
	}
}

func TestStartWaveAndCheckpoint(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Seed = 3
	tuning.StartWave = 23
	b := NewBattle(tuning, clock.NewMock(time.Unix(0, 0)))

	if b.WaveNumber() != 23 {
		t.Errorf("Expected wave 23, got %d", b.WaveNumber())
	}
	if b.Checkpoint() != 20 {
		t.Errorf("Expected checkpoint 20, got %d", b.Checkpoint())
	}
}

func TestRewardRollsKeepGameplayStream(t *testing.T) {
	a, _ := newTestBattle(t)
	b, _ := newTestBattle(t)

	kill := event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Type: defs.EnemyCircle}}
	for i := 0; i < 5; i++ {
		a.EventDispatcher.Dispatch(kill)
	}
	if a.Rewards().EnemiesKilled != 5 {
		t.Fatalf("Expected 5 kills, got %d", a.Rewards().EnemiesKilled)
	}
	if x, y := a.Rng.Float64(), b.Rng.Float64(); x != y {
		t.Errorf("Expected gameplay stream untouched by rewards, got %v and %v", x, y)
	}
}

func TestTickReadsGoldBoost(t *testing.T) {
	b, _ := newTestBattle(t)
	place(b, defs.EnemyCircle, b.Base.X, b.Base.Y-100, 10)

	in := b.DefaultInputs()
	in.Boosts.GoldMultiplier = 3
	in.Abilities = []defs.AbilityID{defs.AbilityPlasmaBurst}
	out := b.Tick(16*time.Millisecond, in)

	if len(out.Kills) != 1 {
		t.Fatalf("Expected 1 kill, got %d", len(out.Kills))
	}
	want := int(math.Floor(defs.Enemy(defs.EnemyCircle).GoldReward * scaling.GoldMultiplier(1) * 3))
	if got := b.Rewards().GoldEarned; got != want {
		t.Errorf("Expected %d gold, got %d", want, got)
	}
}
