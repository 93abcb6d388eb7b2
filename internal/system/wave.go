// internal/system/wave.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/scaling"
	"go-wave-defense/internal/utils"
)

const (
	bossSpawnChance = 0.15
	modifierChance  = 0.7
)

// WaveSystem решает, когда и кого спавнить, и переключает волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	behaviors       *BehaviorSelector
	width, height   float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, width, height float64) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		behaviors:       NewBehaviorSelector(rng),
		width:           width,
		height:          height,
	}
}

// StartWave builds the state for wave number and rolls its modifier.
func (s *WaveSystem) StartWave(number int) *component.Wave {
	w := &component.Wave{
		Number:   number,
		Highest:  number,
		Required: scaling.EnemiesRequired(number),
		Modifier: s.RollModifier(number),
	}
	s.logWave(w)
	return w
}

// RollModifier выбирает модификатор волны; на волнах с боссом модификаторов нет.
func (s *WaveSystem) RollModifier(number int) defs.ModifierID {
	if scaling.IsBossWave(number) || !s.rng.Chance(modifierChance) {
		return defs.ModifierNone
	}
	return defs.ModifierOrder[s.rng.Intn(len(defs.ModifierOrder))]
}

// SpawnInterval is the current wave's interval in seconds, after the modifier.
func (s *WaveSystem) SpawnInterval(wave *component.Wave) float64 {
	return scaling.SpawnInterval(wave.Number).Seconds() * multipliersOf(wave).Interval()
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer > s.SpawnInterval(wave) {
		s.SpawnEnemy(wave, s.ChooseEnemyType(wave.Number))
		wave.SpawnTimer = 0
	}
}

// ChooseEnemyType: на волне с боссом, пока босса нет, каждый спавн с шансом
// 15% выдаёт босса. Иначе взвешенный выбор среди обычных типов.
func (s *WaveSystem) ChooseEnemyType(number int) defs.EnemyType {
	if scaling.IsBossWave(number) && s.ecs.CountType(defs.EnemyBoss) == 0 && s.rng.Chance(bossSpawnChance) {
		return defs.EnemyBoss
	}

	weights := make([]float64, len(defs.EnemyOrder))
	for i, t := range defs.EnemyOrder {
		weights[i] = defs.Enemy(t).SpawnWeight
	}
	idx := s.rng.ChooseWeighted(weights)
	if idx < 0 {
		return defs.EnemyCircle
	}
	return defs.EnemyOrder[idx]
}

// SpawnEnemy creates an enemy of type t above the top edge of the playfield.
func (s *WaveSystem) SpawnEnemy(wave *component.Wave, t defs.EnemyType) *component.Enemy {
	def := defs.Enemy(t)
	behavior := s.behaviors.Select(wave.Number, wave.Modifier)
	bdef := defs.Behavior(behavior)
	mod := multipliersOf(wave)

	hp := scaling.EnemyHP(def.BaseHP, wave.Number) * bdef.HPMultiplier * mod.HP()
	speed := scaling.EnemySpeed(def.BaseSpeed, wave.Number) * bdef.SpeedMultiplier * mod.Speed()

	damageTaken := 1.0
	if bdef.HasDamageReduction {
		damageTaken = bdef.DamageTaken
	}

	e := &component.Enemy{
		Type:     def.Type,
		Behavior: behavior,
		Position: component.Position{
			X: config.SpawnPadding + s.rng.Float64()*(s.width-2*config.SpawnPadding),
			Y: -config.SpawnPadding,
		},
		Renderable:    component.Renderable{Color: def.Visuals.Color, Radius: def.Radius},
		HP:            hp,
		MaxHP:         hp,
		BaseSpeed:     speed,
		CurrentSpeed:  speed,
		DamageTaken:   damageTaken,
		RotationSpeed: (s.rng.Float64() - 0.5) * 2 * config.EnemySpinMax,
	}
	s.ecs.AddEnemy(e)

	if t == defs.EnemyBoss {
		log.Printf("Boss spawned on wave %d (hp %.0f)", wave.Number, hp)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{EnemyID: e.ID, Type: e.Type, Behavior: behavior},
	})
	return e
}

// Complete reports whether the kill quota of the wave has been met.
func (s *WaveSystem) Complete(wave *component.Wave) bool {
	return wave != nil && wave.KilledThisWave >= wave.Required
}

// Advance переводит волну на следующую и возвращает бонус золота за
// пройденную. Лишние убийства сверх квоты не переносятся.
func (s *WaveSystem) Advance(wave *component.Wave) int {
	bonus := scaling.WaveBonus(wave.Number)

	wave.Number++
	if wave.Number > wave.Highest {
		wave.Highest = wave.Number
	}
	wave.KilledThisWave = 0
	wave.SpawnTimer = 0
	wave.Required = scaling.EnemiesRequired(wave.Number)
	wave.Modifier = s.RollModifier(wave.Number)

	s.logWave(wave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveAdvanced,
		Data: event.WaveAdvancedData{NewWave: wave.Number, WaveBonusGold: bonus},
	})
	return bonus
}

func (s *WaveSystem) logWave(w *component.Wave) {
	if m, ok := defs.Modifier(w.Modifier); ok {
		log.Printf("Wave %d started: %d kills required, modifier %s", w.Number, w.Required, m.Name)
		return
	}
	log.Printf("Wave %d started: %d kills required", w.Number, w.Required)
}
