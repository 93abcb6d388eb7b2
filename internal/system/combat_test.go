package system

import (
	"math"
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func TestCircleReachesBase(t *testing.T) {
	w := newWorld(1)
	combat := NewCombatSystem(w.ecs, w.dispatcher, w.visuals)
	w.enemy(defs.EnemyCircle, w.base.X, w.base.Y-50, 150)

	combat.Update(&component.Wave{Number: 1}, w.base, 0, false)

	if w.base.HP != 2925 {
		t.Errorf("Expected base hp 2925, got %v", w.base.HP)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("Expected enemy removed, got %d left", len(w.ecs.Enemies))
	}
	hits := w.rec.of(event.BaseHit)
	if len(hits) != 1 || hits[0].Data.(event.BaseHitData).Damage != 75 {
		t.Errorf("Expected one 75 damage hit event, got %+v", hits)
	}
}

func TestShieldBlocksCollision(t *testing.T) {
	w := newWorld(1)
	combat := NewCombatSystem(w.ecs, w.dispatcher, w.visuals)
	w.enemy(defs.EnemyTank, w.base.X+10, w.base.Y, 600)

	combat.Update(&component.Wave{Number: 1}, w.base, 0, true)

	if w.base.HP != 3000 {
		t.Errorf("Expected shield to negate damage, got hp %v", w.base.HP)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("Expected enemy removed even when blocked")
	}
	if hit := w.rec.of(event.BaseHit)[0].Data.(event.BaseHitData); !hit.Blocked {
		t.Errorf("Expected blocked hit, got %+v", hit)
	}
}

func TestCollisionOutsideRadius(t *testing.T) {
	w := newWorld(1)
	combat := NewCombatSystem(w.ecs, w.dispatcher, w.visuals)
	w.enemy(defs.EnemyCircle, w.base.X, w.base.Y-55, 150)

	combat.Update(&component.Wave{Number: 1}, w.base, 0, false)
	if len(w.ecs.Enemies) != 1 || w.base.HP != 3000 {
		t.Errorf("Expected no collision at exactly radius+baseRadius")
	}
}

func TestAggressiveMultipliersStack(t *testing.T) {
	e := &component.Enemy{Type: defs.EnemyCircle, Behavior: defs.BehaviorAggressive}
	got := CollisionDamage(e, &component.Wave{Number: 1, Modifier: defs.ModifierAggressive}, 0)
	if math.Abs(got-75*1.5*1.3) > 1e-9 {
		t.Errorf("Expected %v, got %v", 75*1.5*1.3, got)
	}

	e.Behavior = defs.BehaviorStandard
	if got := CollisionDamage(e, &component.Wave{Number: 1}, 1000); got != 7 {
		t.Errorf("Expected defense floor 7, got %v", got)
	}
}
