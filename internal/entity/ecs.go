// internal/entity/ecs.go
package entity

import (
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// ECS владеет всеми живыми сущностями боя. Враги и снаряды хранятся в
// срезах в порядке вставки, индекс по ID ускоряет поиск цели.
type ECS struct {
	NextID types.EntityID

	Enemies     []*component.Enemy
	Projectiles []*component.Projectile

	Particles     []*component.Particle
	Shockwaves    []*component.Shockwave
	DamageNumbers []*component.DamageNumber

	// StunUntil живёт отдельно от Enemy: оглушение редкое и короткое.
	StunUntil map[types.EntityID]time.Time

	enemyIndex map[types.EntityID]*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		StunUntil:  make(map[types.EntityID]time.Time),
		enemyIndex: make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy assigns a fresh id when e.ID is zero and appends the enemy.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
	return e.ID
}

func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	if p.ID == 0 {
		p.ID = ecs.NewEntity()
	}
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p.ID
}

// Enemy looks up a live enemy by id.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// RemoveEnemies drops every enemy matching pred, keeps the order of the rest
// and returns the removed ones.
func (ecs *ECS) RemoveEnemies(pred func(*component.Enemy) bool) []*component.Enemy {
	var removed []*component.Enemy
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if pred(e) {
			removed = append(removed, e)
			delete(ecs.enemyIndex, e.ID)
			delete(ecs.StunUntil, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	clear(ecs.Enemies[len(kept):])
	ecs.Enemies = kept
	return removed
}

func (ecs *ECS) RemoveProjectiles(pred func(*component.Projectile) bool) int {
	n := 0
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if pred(p) {
			n++
			continue
		}
		kept = append(kept, p)
	}
	clear(ecs.Projectiles[len(kept):])
	ecs.Projectiles = kept
	return n
}

// Stunned reports whether id is under an EMP stun at now.
func (ecs *ECS) Stunned(id types.EntityID, now time.Time) bool {
	until, ok := ecs.StunUntil[id]
	return ok && now.Before(until)
}

// Stun sets or extends the stun of id.
func (ecs *ECS) Stun(id types.EntityID, until time.Time) {
	if cur, ok := ecs.StunUntil[id]; ok && cur.After(until) {
		return
	}
	ecs.StunUntil[id] = until
}

// CountType returns the number of live enemies of type t.
func (ecs *ECS) CountType(t defs.EnemyType) int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Type == t {
			n++
		}
	}
	return n
}
