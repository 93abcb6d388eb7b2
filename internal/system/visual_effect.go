// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
)

// Скорости старения эффектов, в единицах за секунду.
const (
	particleDecay     = 3.0
	particleDrag      = 0.5
	shockwaveGrowth   = 500.0
	shockwaveDecay    = 3.0
	damageNumberRise  = 50.0
	damageNumberDecay = 2.0
	maxParticles      = 600
)

// VisualEffectSystem управляет визуальными эффектами: частицами взрывов,
// ударными волнами и всплывающими цифрами урона. Игровая логика их не читает.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService // отдельный генератор, чтобы косметика не смещала игровые броски
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	particles := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.X += p.VX * deltaTime * particleDrag
		p.Y += p.VY * deltaTime * particleDrag
		p.Life -= particleDecay * deltaTime
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(s.ecs.Particles[len(particles):])
	s.ecs.Particles = particles

	waves := s.ecs.Shockwaves[:0]
	for _, w := range s.ecs.Shockwaves {
		w.Radius += shockwaveGrowth * deltaTime
		w.Life -= shockwaveDecay * deltaTime
		if w.Life > 0 && w.Radius < w.MaxRadius {
			waves = append(waves, w)
		}
	}
	clear(s.ecs.Shockwaves[len(waves):])
	s.ecs.Shockwaves = waves

	numbers := s.ecs.DamageNumbers[:0]
	for _, d := range s.ecs.DamageNumbers {
		d.Y -= damageNumberRise * deltaTime
		d.Life -= damageNumberDecay * deltaTime
		if d.Life > 0 {
			numbers = append(numbers, d)
		}
	}
	clear(s.ecs.DamageNumbers[len(numbers):])
	s.ecs.DamageNumbers = numbers
}

// Explosion разбрасывает count частиц из точки.
func (s *VisualEffectSystem) Explosion(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count && len(s.ecs.Particles) < maxParticles; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Range(500, 2500) // px/s
		s.ecs.Particles = append(s.ecs.Particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed},
			Life:     1,
			Size:     s.rng.Range(1, 4),
			Color:    c,
		})
	}
}

func (s *VisualEffectSystem) Shockwave(x, y, maxRadius float64, c color.RGBA) {
	s.ecs.Shockwaves = append(s.ecs.Shockwaves, &component.Shockwave{
		Position:  component.Position{X: x, Y: y},
		MaxRadius: maxRadius,
		Life:      1,
		Color:     c,
	})
}

// DamageNumber всплывает на 20px выше точки попадания.
func (s *VisualEffectSystem) DamageNumber(x, y, value float64, isCrit bool) {
	s.ecs.DamageNumbers = append(s.ecs.DamageNumbers, &component.DamageNumber{
		Position: component.Position{X: x, Y: y - 20},
		Value:    math.Floor(value),
		IsCrit:   isCrit,
		Life:     1,
	})
}

// Label показывает текст вместо числа (например, STUNNED).
func (s *VisualEffectSystem) Label(x, y float64, text string) {
	s.ecs.DamageNumbers = append(s.ecs.DamageNumbers, &component.DamageNumber{
		Position: component.Position{X: x, Y: y - 20},
		Text:     text,
		Life:     1,
	})
}
