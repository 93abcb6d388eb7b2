package component

// Phase — состояние боя.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseWaveComplete
	PhaseBattleOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaveComplete:
		return "WAVE_COMPLETE"
	case PhaseBattleOver:
		return "BATTLE_OVER"
	default:
		return "SPAWNING"
	}
}
