// internal/entity/ecs.go
package entity

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/types"
)

// ECS — явно владеемая арена сущностей со стабильными id.
// Все мутации происходят из владеющего тика; конкурентного доступа нет.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Enemies     map[types.EntityID]*component.Enemy
	Obstacles   map[types.EntityID]*component.Obstacle
	HealthPacks map[types.EntityID]*component.HealthPack
	PlayerState map[types.EntityID]*component.PlayerStateComponent

	Wave  *component.Wave
	Phase component.GamePhase
}

// NewECS создаёт пустую арену.
func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Obstacles:   make(map[types.EntityID]*component.Obstacle),
		HealthPacks: make(map[types.EntityID]*component.HealthPack),
		PlayerState: make(map[types.EntityID]*component.PlayerStateComponent),
		Wave:        nil,
		Phase:       component.PhasePlaying,
	}
}

// NewEntity выделяет следующий стабильный id.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs возвращает снапшот id врагов. Итерация по снапшоту позволяет
// удалять врагов из ростера прямо во время обхода.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	return ids
}

// LivingEnemyCount возвращает число живых (не Dead) врагов.
func (ecs *ECS) LivingEnemyCount() int {
	count := 0
	for _, enemy := range ecs.Enemies {
		if enemy.State != component.StateDead {
			count++
		}
	}
	return count
}

// RemoveEnemy убирает врага и его компоненты из ростера.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Enemies, id)
}

// RemoveHealthPack убирает аптечку из ростера.
func (ecs *ECS) RemoveHealthPack(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.HealthPacks, id)
}
