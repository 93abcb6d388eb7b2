// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов ebiten-фронтенда.
type State interface {
	Enter()
	Update(delta time.Duration)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState вызывает Exit у текущего состояния и Enter у нового.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update передаёт реальное прошедшее время текущему состоянию.
func (sm *StateMachine) Update(delta time.Duration) {
	if sm.current != nil {
		sm.current.Update(delta)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
