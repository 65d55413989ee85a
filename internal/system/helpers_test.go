// internal/system/helpers_test.go
package system

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

// testSetup собирает минимальный мир для юнит-тестов систем.
func testSetup(seed int64) (*entity.ECS, *event.Dispatcher, *utils.PRNGService, config.Tuning) {
	return entity.NewECS(), event.NewDispatcher(), utils.NewPRNGService(seed), config.DefaultTuning()
}

// spawnTestEnemy кладёт в арену врага класса class в точке at.
func spawnTestEnemy(ecs *entity.ECS, class defs.EnemyClass, at utils.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Enemies[id] = component.NewEnemy(defs.LookupEnemy(class))
	return id
}

// spawnTestObstacle кладёт в арену препятствие в точке at.
func spawnTestObstacle(ecs *entity.ECS, at utils.Vec2, radius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Obstacles[id] = &component.Obstacle{Radius: radius}
	return id
}

// eventRecorder копит все события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) subscribeAll(d *event.Dispatcher, ts ...event.EventType) {
	for _, t := range ts {
		d.Subscribe(t, r)
	}
}

// fixedPlayer — неподвижный игрок для тестов AI.
type fixedPlayer struct {
	pos utils.Vec2
}

func (p *fixedPlayer) Position() utils.Vec2 { return p.pos }
