// internal/sim/sim.go
package sim

import (
	"context"
	"sort"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/system"

	"golang.org/x/sync/errgroup"
)

// Step — фиксированный шаг безголовой симуляции.
const Step = 16 * time.Millisecond

// Result is the outcome of one headless battle.
type Result struct {
	Seed       int64                `json:"seed"`
	FinalWave  int                  `json:"final_wave"`
	Checkpoint int                  `json:"checkpoint"`
	TimedOut   bool                 `json:"timed_out"`
	SimSeconds float64              `json:"sim_seconds"`
	Rewards    system.BattleRewards `json:"rewards"`
}

// Summary aggregates a batch.
type Summary struct {
	Runs         int         `json:"runs"`
	TimedOut     int         `json:"timed_out"`
	Waves        map[int]int `json:"final_wave_distribution"`
	MeanWave     float64     `json:"mean_final_wave"`
	MaxWave      int         `json:"max_final_wave"`
	MeanGold     float64     `json:"mean_gold"`
	MeanGems     float64     `json:"mean_gems"`
	MeanScore    float64     `json:"mean_score"`
	MeanKills    float64     `json:"mean_kills"`
	MeanCrits    float64     `json:"mean_crits"`
	MeanDuration float64     `json:"mean_sim_seconds"`
	Results      []Result    `json:"results"`
}

// Run plays one battle with AUTO aim, firing every ability as soon as it is
// ready. It stops at battle over or after maxSim of simulated time.
func Run(ctx context.Context, tuning config.Tuning, maxSim time.Duration) (Result, error) {
	clk := clock.NewMock(time.Unix(0, 0))
	b := app.NewBattle(tuning, clk)

	for steps := 0; !b.Over() && b.SimTime() < maxSim; steps++ {
		if steps%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		in := b.DefaultInputs()
		in.Fire.Mode = config.AimAuto
		in.Abilities = readyAbilities(b)
		b.Tick(Step, in)
		clk.Advance(Step)
	}

	return Result{
		Seed:       tuning.Seed,
		FinalWave:  b.WaveNumber(),
		Checkpoint: b.Checkpoint(),
		TimedOut:   !b.Over(),
		SimSeconds: b.SimTime().Seconds(),
		Rewards:    b.Rewards(),
	}, nil
}

func readyAbilities(b *app.Battle) []defs.AbilityID {
	var ids []defs.AbilityID
	for _, a := range b.AbilitySystem.Abilities() {
		if a.Ready() {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// RunBatch runs n battles with seeds tuning.Seed, tuning.Seed+1, ... on at
// most workers goroutines. Results are ordered by seed.
func RunBatch(ctx context.Context, tuning config.Tuning, n, workers int, maxSim time.Duration) (Summary, error) {
	if tuning.Seed == 0 {
		tuning.Seed = time.Now().UnixNano()
	}
	results := make([]Result, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i := range n {
		t := tuning
		t.Seed = tuning.Seed + int64(i)
		eg.Go(func() error {
			r, err := Run(ctx, t, maxSim)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

// Summarize считает распределение финальных волн и средние награды.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Waves: make(map[int]int), Results: results}
	if len(results) == 0 {
		return s
	}
	sort.Slice(s.Results, func(i, j int) bool { return s.Results[i].Seed < s.Results[j].Seed })

	var waves, gold, gems, score, kills, crits, secs float64
	for _, r := range results {
		s.Waves[r.FinalWave]++
		s.MaxWave = max(s.MaxWave, r.FinalWave)
		if r.TimedOut {
			s.TimedOut++
		}
		waves += float64(r.FinalWave)
		gold += float64(r.Rewards.GoldEarned)
		gems += float64(r.Rewards.GemsEarned)
		score += float64(r.Rewards.ScoreEarned)
		kills += float64(r.Rewards.EnemiesKilled)
		crits += float64(r.Rewards.CriticalHits)
		secs += r.SimSeconds
	}
	n := float64(len(results))
	s.MeanWave = waves / n
	s.MeanGold = gold / n
	s.MeanGems = gems / n
	s.MeanScore = score / n
	s.MeanKills = kills / n
	s.MeanCrits = crits / n
	s.MeanDuration = secs / n
	return s
}
