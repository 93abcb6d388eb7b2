package component

import "go-wave-defense/internal/defs"

// Wave хранит состояние текущей волны.
type Wave struct {
	Number         int
	Highest        int
	KilledThisWave int
	Required       int
	SpawnTimer     float64 // секунды с последнего спавна
	Modifier       defs.ModifierID
}
