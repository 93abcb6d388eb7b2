// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// RegularPolygon возвращает вершины правильного n-угольника, первая вершина
// лежит под углом rotation.
func RegularPolygon(cx, cy, radius float64, sides int, rotation float64) [][2]float64 {
	if sides < 3 {
		return nil
	}
	pts := make([][2]float64, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		a := rotation + step*float64(i)
		pts[i] = [2]float64{cx + math.Cos(a)*radius, cy + math.Sin(a)*radius}
	}
	return pts
}
