package entity

import (
	"testing"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
)

func TestIDsAreUnique(t *testing.T) {
	ecs := NewECS()
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		id := ecs.AddEnemy(&component.Enemy{Type: defs.EnemyCircle})
		if seen[uint64(id)] {
			t.Fatalf("Duplicate id %d", id)
		}
		seen[uint64(id)] = true
	}
	pid := ecs.AddProjectile(&component.Projectile{})
	if seen[uint64(pid)] {
		t.Errorf("Projectile id %d collides with an enemy id", pid)
	}
}

func TestRemoveEnemiesKeepsOrder(t *testing.T) {
	ecs := NewECS()
	var ids []uint64
	for i := 0; i < 5; i++ {
		e := &component.Enemy{HP: float64(i)}
		ids = append(ids, uint64(ecs.AddEnemy(e)))
	}
	ecs.Stun(ecs.Enemies[0].ID, time.Now().Add(time.Second))

	removed := ecs.RemoveEnemies(func(e *component.Enemy) bool { return e.Dead() })
	if len(removed) != 1 {
		t.Fatalf("Expected 1 removed, got %d", len(removed))
	}
	if len(ecs.Enemies) != 4 {
		t.Fatalf("Expected 4 left, got %d", len(ecs.Enemies))
	}
	for i, e := range ecs.Enemies {
		if uint64(e.ID) != ids[i+1] {
			t.Errorf("Expected id %d at %d, got %d", ids[i+1], i, e.ID)
		}
	}
	if _, ok := ecs.Enemy(removed[0].ID); ok {
		t.Errorf("Expected removed enemy to leave the index")
	}
	if len(ecs.StunUntil) != 0 {
		t.Errorf("Expected stun entry to be dropped with the enemy")
	}
}

func TestStun(t *testing.T) {
	ecs := NewECS()
	now := time.Unix(1000, 0)
	id := ecs.AddEnemy(&component.Enemy{HP: 1})

	if ecs.Stunned(id, now) {
		t.Errorf("Expected fresh enemy not to be stunned")
	}
	ecs.Stun(id, now.Add(2*time.Second))
	ecs.Stun(id, now.Add(time.Second))
	if !ecs.Stunned(id, now.Add(1500*time.Millisecond)) {
		t.Errorf("Expected shorter stun not to shorten an existing one")
	}
	if ecs.Stunned(id, now.Add(2*time.Second)) {
		t.Errorf("Expected stun to expire at its deadline")
	}
}

func TestCountTypeAndRemoveProjectiles(t *testing.T) {
	ecs := NewECS()
	ecs.AddEnemy(&component.Enemy{Type: defs.EnemyBoss, HP: 1})
	ecs.AddEnemy(&component.Enemy{Type: defs.EnemyCircle, HP: 1})
	if got := ecs.CountType(defs.EnemyBoss); got != 1 {
		t.Errorf("Expected 1 boss, got %d", got)
	}

	ecs.AddProjectile(&component.Projectile{Remove: true})
	ecs.AddProjectile(&component.Projectile{})
	if n := ecs.RemoveProjectiles(func(p *component.Projectile) bool { return p.Remove }); n != 1 {
		t.Errorf("Expected 1 projectile removed, got %d", n)
	}
	if len(ecs.Projectiles) != 1 {
		t.Errorf("Expected 1 projectile left, got %d", len(ecs.Projectiles))
	}
}
