// internal/state/pause_state.go
package state

import (
	"image/color"
	"time"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает бой: Tick не вызывается, поле рисуется под затемнением.
type PauseState struct {
	stateMachine *StateMachine
	battle       *BattleState
}

func NewPauseState(sm *StateMachine, battle *BattleState) *PauseState {
	return &PauseState{stateMachine: sm, battle: battle}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(delta time.Duration) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.battle.pauseButton.Contains(float32(x), float32(y))
	}
	if unpause {
		s.battle.pauseButton.TogglePause()
		s.stateMachine.SetState(s.battle)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)

	w, h := float32(s.battle.tuning.Width), float32(s.battle.tuning.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	tw, _ := text.Measure(pauseText, s.battle.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(float64(w)/2-tw*1.5, float64(h)/2-20)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, pauseText, s.battle.face, op)
}

func (s *PauseState) Exit() {}
