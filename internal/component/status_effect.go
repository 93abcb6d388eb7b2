// internal/component/status_effect.go
package component

import "time"

// SlowEffect indicates that an entity is slowed until the given moment.
type SlowEffect struct {
	Until   time.Time
	Percent float64 // 50 = скорость уменьшена вдвое
}

// Active reports whether the slow still applies at now.
func (s SlowEffect) Active(now time.Time) bool {
	return s.Percent > 0 && now.Before(s.Until)
}

// Evasion — состояние хаотичного движения. Timer — секунды до следующей
// смены угла.
type Evasion struct {
	Timer float64
	Angle float64
}
