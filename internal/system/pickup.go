// internal/system/pickup.go
package system

import (
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/utils"
)

// HealTarget — то, что системе аптечек нужно от игрока.
type HealTarget interface {
	Position() utils.Vec2
	Health() int
	MaxHealth() int
	StartHealing(amount int, duration float64)
}

// HealthPackSystem спавнит аптечки на смертях врагов (бросок лута) и
// отдаёт их игроку при касании. Невостребованные аптечки истлевают.
type HealthPackSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	combat     *CombatSystem
	player     HealTarget
	tuning     config.Tuning
}

func NewHealthPackSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, combat *CombatSystem, player HealTarget, tuning config.Tuning) *HealthPackSystem {
	s := &HealthPackSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		combat:     combat,
		player:     player,
		tuning:     tuning,
	}
	dispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent реализует event.Listener: на смерти врага кидаем лут.
func (s *HealthPackSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	payload, ok := e.Data.(event.EnemyPayload)
	if !ok {
		return
	}
	if !s.combat.RollLootDrop(payload.Class) {
		return
	}
	s.spawnPack(payload.Position)
}

func (s *HealthPackSystem) spawnPack(at utils.Vec2) {
	def := defs.HealthPackDef
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec2: at}
	s.ecs.HealthPacks[id] = &component.HealthPack{
		HealAmount:   def.HealAmount,
		HealDuration: def.HealDuration,
		Radius:       s.tuning.PackPickupRadius,
		SpawnedAt:    s.ecs.GameTime,
		DespawnAt:    s.ecs.GameTime + s.tuning.PackDespawnTime,
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.PickupSpawned,
		Data: event.PickupPayload{ID: id, Position: at},
	})
}

// Update подбирает и истлевает аптечки. Подбор на полном здоровье не
// происходит: аптечка остаётся лежать, лечение на полном здоровье — no-op.
func (s *HealthPackSystem) Update() {
	playerPos := s.player.Position()
	atFullHealth := s.player.Health() >= s.player.MaxHealth()

	for id, pack := range s.ecs.HealthPacks {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			s.ecs.RemoveHealthPack(id)
			continue
		}

		if s.ecs.GameTime >= pack.DespawnAt {
			packPos := pos.Vec2
			s.ecs.RemoveHealthPack(id)
			s.dispatcher.Dispatch(event.Event{
				Type: event.PickupConsumed,
				Data: event.PickupPayload{ID: id, Position: packPos, Used: false},
			})
			continue
		}

		if atFullHealth {
			continue
		}
		if Distance2D(playerPos, pos.Vec2) > pack.Radius {
			continue
		}

		packPos := pos.Vec2
		s.player.StartHealing(pack.HealAmount, pack.HealDuration)
		s.ecs.RemoveHealthPack(id)
		s.dispatcher.Dispatch(event.Event{
			Type: event.PickupConsumed,
			Data: event.PickupPayload{ID: id, Position: packPos, Used: true},
		})
		// За тик можно подобрать только одну аптечку.
		atFullHealth = true
	}
}
