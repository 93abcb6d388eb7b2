// internal/component/visual.go
package component

import "image/color"

// Particle — осколок взрыва. Life убывает от 1 до 0.
type Particle struct {
	Position
	Velocity
	Life  float64
	Size  float64
	Color color.RGBA
}

// Shockwave — расходящееся кольцо от способностей.
type Shockwave struct {
	Position
	Radius    float64
	MaxRadius float64
	Life      float64
	Color     color.RGBA
}

// DamageNumber всплывает над точкой попадания.
type DamageNumber struct {
	Position
	Value  float64
	IsCrit bool
	Text   string // если задан, выводится вместо Value
	Life   float64
}
