// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, px/s
type Velocity struct {
	VX, VY float64
}
