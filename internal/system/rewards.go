// internal/system/rewards.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/scaling"
	"go-wave-defense/internal/utils"
)

const (
	gemChance     = 0.05
	bossGemChance = 0.5
	bossGems      = 10
)

// BattleRewards — накопленные за бой награды.
type BattleRewards struct {
	GoldEarned     int     `json:"gold_earned"`
	GemsEarned     int     `json:"gems_earned"`
	ScoreEarned    int     `json:"score_earned"`
	EnemiesKilled  int     `json:"enemies_killed"`
	CriticalHits   int     `json:"critical_hits"`
	DamageDealt    float64 `json:"damage_dealt"`
	WavesCompleted int     `json:"waves_completed"`
}

// RewardSystem — эталонный слушатель экономики: превращает события боя в
// золото, гемы и очки. Сама симуляция его не читает.
type RewardSystem struct {
	rng     *utils.PRNGService
	boosts  config.Boosts
	wave    func() int
	Rewards BattleRewards
}

// NewRewardSystem subscribes to kill and wave events; wave reports the wave
// the kill happened on.
func NewRewardSystem(d *event.Dispatcher, rng *utils.PRNGService, boosts config.Boosts, wave func() int) *RewardSystem {
	s := &RewardSystem{rng: rng, boosts: boosts.WithDefaults(), wave: wave}
	d.SubscribeMany(s, event.EnemyKilled, event.WaveAdvanced)
	return s
}

// SetBoosts replaces the boosts applied to subsequent kills.
func (s *RewardSystem) SetBoosts(boosts config.Boosts) {
	s.boosts = boosts.WithDefaults()
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *RewardSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		s.onKill(data)
	case event.WaveAdvancedData:
		s.Rewards.GoldEarned += data.WaveBonusGold
		s.Rewards.WavesCompleted++
	}
}

func (s *RewardSystem) onKill(k event.EnemyKilledData) {
	def := defs.Enemy(k.Type)
	gold := math.Floor(def.GoldReward * scaling.GoldMultiplier(s.wave()) * s.boosts.GoldMultiplier)

	chance, gems := gemChance+s.boosts.GemChanceBonus, 1
	if k.Type == defs.EnemyBoss {
		chance, gems = bossGemChance, bossGems
	}
	if s.rng.Chance(chance) {
		s.Rewards.GemsEarned += gems
	}

	s.Rewards.GoldEarned += int(gold)
	s.Rewards.ScoreEarned += int(def.ScoreReward)
	s.Rewards.EnemiesKilled++
	s.Rewards.DamageDealt += k.Damage
	if k.IsCrit {
		s.Rewards.CriticalHits++
	}
}
