package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/event"
)

func TestEndBattleLatches(t *testing.T) {
	w := newWorld(1)
	s := NewStateSystem(w.dispatcher)

	s.SwitchToWaveComplete()
	if s.Current() != component.PhaseWaveComplete {
		t.Errorf("Expected WAVE_COMPLETE, got %s", s.Current())
	}
	s.SwitchToSpawning()

	if !s.EndBattle(7) {
		t.Fatalf("Expected first EndBattle to succeed")
	}
	if s.EndBattle(8) {
		t.Errorf("Expected second EndBattle to be a no-op")
	}
	s.SwitchToSpawning()
	if !s.Over() {
		t.Errorf("Expected BATTLE_OVER to be terminal")
	}

	over := w.rec.of(event.BattleOver)
	if len(over) != 1 {
		t.Fatalf("Expected one battle-over event, got %d", len(over))
	}
	if d := over[0].Data.(event.BattleOverData); d.FinalWave != 7 || d.Survived {
		t.Errorf("Unexpected payload %+v", d)
	}
}
