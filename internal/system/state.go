// internal/system/state.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/event"
)

// StateSystem хранит фазу боя. BATTLE_OVER терминальна и выставляется
// ровно один раз.
type StateSystem struct {
	phase           component.Phase
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{phase: component.PhaseSpawning, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

func (s *StateSystem) Over() bool {
	return s.phase == component.PhaseBattleOver
}

// SwitchToWaveComplete is a no-op once the battle is over.
func (s *StateSystem) SwitchToWaveComplete() {
	if !s.Over() {
		s.phase = component.PhaseWaveComplete
	}
}

func (s *StateSystem) SwitchToSpawning() {
	if !s.Over() {
		s.phase = component.PhaseSpawning
	}
}

// EndBattle latches BATTLE_OVER and emits the event. Returns false if the
// battle had already ended.
func (s *StateSystem) EndBattle(finalWave int) bool {
	if s.Over() {
		return false
	}
	s.phase = component.PhaseBattleOver
	log.Printf("Battle over on wave %d", finalWave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BattleOver,
		Data: event.BattleOverData{FinalWave: finalWave, Survived: false},
	})
	return true
}
