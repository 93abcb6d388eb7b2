// internal/state/over_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OverState — итоги боя. Space начинает новый бой с чекпоинта.
type OverState struct {
	sm     *StateMachine
	battle *BattleState
	lines  []string
}

func NewOverState(sm *StateMachine, battle *BattleState) *OverState {
	b := battle.battle
	r := b.Rewards()
	return &OverState{
		sm:     sm,
		battle: battle,
		lines: []string{
			fmt.Sprintf("BATTLE OVER ON WAVE %d", b.WaveNumber()),
			fmt.Sprintf("Enemies killed: %d  Critical hits: %d", r.EnemiesKilled, r.CriticalHits),
			fmt.Sprintf("Gold: %d  Gems: %d  Score: %d", r.GoldEarned, r.GemsEarned, r.ScoreEarned),
			fmt.Sprintf("Checkpoint: wave %d", b.Checkpoint()),
			"SPACE to restart",
		},
	}
}

func (m *OverState) Enter() {}

func (m *OverState) Update(delta time.Duration) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	tuning := m.battle.tuning
	tuning.StartWave = m.battle.battle.Checkpoint()
	log.Printf("Restarting from wave %d", tuning.StartWave)
	m.sm.SetState(NewBattleState(m.sm, tuning, m.battle.onBattle))
}

func (m *OverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := m.battle.tuning.Height/2 - float64(len(m.lines))*12
	for _, line := range m.lines {
		w, _ := text.Measure(line, m.battle.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(m.battle.tuning.Width/2-w/2, y)
		op.ColorScale.ScaleWithColor(config.TextLightColor)
		text.Draw(screen, line, m.battle.face, op)
		y += 24
	}
}

func (m *OverState) Exit() {}
