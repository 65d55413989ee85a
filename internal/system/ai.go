// internal/system/ai.go
package system

import (
	"log"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

// PlayerContext определяет, что AI нужно знать об игроке. Интерфейс вместо
// прямой зависимости: игрок принадлежит внешнему коллаборатору.
type PlayerContext interface {
	Position() utils.Vec2
}

// EnemyAISystem гоняет конечный автомат каждого врага:
// Chasing ⇄ Attacking → Dead. Движение делегируется SteeringSystem.
type EnemyAISystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	steering   *SteeringSystem
	player     PlayerContext
	tuning     config.Tuning
}

func NewEnemyAISystem(ecs *entity.ECS, dispatcher *event.Dispatcher, steering *SteeringSystem, player PlayerContext, tuning config.Tuning) *EnemyAISystem {
	return &EnemyAISystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		steering:   steering,
		player:     player,
		tuning:     tuning,
	}
}

// Update продвигает всех врагов на один тик. Итерация идёт по снапшоту id:
// трупы, дожившие до конца последовательности смерти, убираются из ростера
// прямо по ходу обхода. Битая запись врага выкидывается с предупреждением и
// не валит тик для остальных.
func (s *EnemyAISystem) Update(deltaTime float64) {
	playerPos := s.player.Position()

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy == nil {
			log.Printf("EnemyAISystem: enemy %d has nil record, dropping from roster", id)
			s.ecs.RemoveEnemy(id)
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			log.Printf("EnemyAISystem: enemy %d has no position, dropping from roster", id)
			s.ecs.RemoveEnemy(id)
			continue
		}

		if enemy.State == component.StateDead {
			s.tickDeath(id, enemy, pos, deltaTime)
			continue
		}

		// Стаггер от попадания: пока мигает — стоит.
		if enemy.HitFlashTimer > 0 {
			enemy.HitFlashTimer -= deltaTime
			if enemy.HitFlashTimer <= 0 {
				enemy.HitFlashTimer = 0
				enemy.IsHit = false
			}
			continue
		}

		if enemy.AvoidanceTimer > 0 {
			enemy.AvoidanceTimer -= deltaTime
			if enemy.AvoidanceTimer < 0 {
				enemy.AvoidanceTimer = 0
			}
		}
		if enemy.ScanCooldown > 0 {
			enemy.ScanCooldown -= deltaTime
			if enemy.ScanCooldown < 0 {
				enemy.ScanCooldown = 0
			}
		}

		// Переходы Chasing ⇄ Attacking только по дистанции до игрока.
		if Distance2D(pos.Vec2, playerPos) <= enemy.AttackRange {
			enemy.State = component.StateAttacking
		} else {
			enemy.State = component.StateChasing
		}

		switch enemy.State {
		case component.StateChasing:
			s.tickChase(enemy, pos, playerPos, deltaTime)
		case component.StateAttacking:
			s.tickAttack(id, enemy, pos, playerPos)
		}
	}
}

func (s *EnemyAISystem) tickDeath(id types.EntityID, enemy *component.Enemy, pos *component.Position, deltaTime float64) {
	enemy.DeathTimer += deltaTime
	if enemy.DeathTimer < s.tuning.DeathDuration {
		return
	}
	s.ecs.RemoveEnemy(id)
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyRemoved,
		Data: event.EnemyPayload{ID: id, Class: enemy.Class, Position: pos.Vec2},
	})
}

func (s *EnemyAISystem) tickChase(enemy *component.Enemy, pos *component.Position, playerPos utils.Vec2, deltaTime float64) {
	move := s.steering.ComputeMove(enemy, pos.Vec2, playerPos)
	if move.LenSq() == 0 {
		return
	}
	pos.Vec2 = pos.Vec2.Add(move.Scale(enemy.Speed * deltaTime))
	if move.LenSq() > 0.0001 {
		enemy.Facing = move.Heading()
	}
}

func (s *EnemyAISystem) tickAttack(id types.EntityID, enemy *component.Enemy, pos *component.Position, playerPos utils.Vec2) {
	// В атаке стиринг не нужен: враг просто разворачивается на игрока.
	toPlayer := playerPos.Sub(pos.Vec2)
	if toPlayer.LenSq() > 0 {
		enemy.Facing = toPlayer.Heading()
	}

	now := s.ecs.GameTime
	if now-enemy.LastAttackTime < enemy.AttackCooldown {
		return
	}
	enemy.LastAttackTime = now

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyAttack,
		Data: event.AttackPayload{ID: id, Class: enemy.Class, Damage: enemy.Damage},
	})
}
