package system

import (
	"time"

	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) of(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rec        *recorder
	clock      *clock.Mock
	rng        *utils.PRNGService
	visuals    *VisualEffectSystem
	base       *component.Base
}

func newWorld(seed int64) *world {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeMany(rec,
		event.EnemyKilled, event.EnemySpawned, event.BaseHit, event.ProjectileFired,
		event.AbilityActivated, event.WaveAdvanced, event.BattleOver)
	ecs := entity.NewECS()
	bx, by := config.BasePosition(config.ScreenWidth, config.ScreenHeight)
	return &world{
		ecs:        ecs,
		dispatcher: d,
		rec:        rec,
		clock:      clock.NewMock(time.Unix(1_700_000_000, 0)),
		rng:        utils.NewPRNGService(seed),
		visuals:    NewVisualEffectSystem(ecs, utils.NewPRNGService(seed+1)),
		base:       &component.Base{Position: component.Position{X: bx, Y: by}, HP: 3000, MaxHP: 3000},
	}
}

func (w *world) enemy(t defs.EnemyType, x, y, hp float64) *component.Enemy {
	def := defs.Enemy(t)
	e := &component.Enemy{
		Type:         t,
		Behavior:     defs.BehaviorStandard,
		Position:     component.Position{X: x, Y: y},
		Renderable:   component.Renderable{Color: def.Visuals.Color, Radius: def.Radius},
		HP:           hp,
		MaxHP:        hp,
		BaseSpeed:    def.BaseSpeed,
		CurrentSpeed: def.BaseSpeed,
		DamageTaken:  1,
	}
	w.ecs.AddEnemy(e)
	return e
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
