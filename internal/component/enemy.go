// internal/component/enemy.go
package component

import (
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/utils"
)

// EnemyState — состояние конечного автомата врага.
type EnemyState int

const (
	StateChasing EnemyState = iota
	StateAttacking
	StateDead
)

func (s EnemyState) String() string {
	switch s {
	case StateChasing:
		return "chasing"
	case StateAttacking:
		return "attacking"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy представляет вражескую сущность. Класс выбирается при спавне и
// дальше не мутирует; всё остальное — живое состояние симуляции.
type Enemy struct {
	Class defs.EnemyClass

	// Кинематика
	Facing float64 // atan2(x, z)
	Speed  float64
	Scale  float64

	// Бой
	Health         int
	MaxHealth      int
	Damage         int
	AttackRange    float64
	AttackCooldown float64
	HitRange       float64
	LastAttackTime float64 // игровое время последнего удара

	// AI
	State      EnemyState
	DeathTimer float64 // сколько идёт последовательность смерти

	// Подсостояние обхода препятствий
	IsAvoiding     bool
	AvoidDir       utils.Vec2
	AvoidanceTimer float64
	ScanCooldown   float64 // троттлинг скана препятствий

	// Обратная связь от попаданий: пока мигает — стоит на месте.
	IsHit         bool
	HitFlashTimer float64
}

// NewEnemy создаёт врага по определению класса.
func NewEnemy(def defs.EnemyDefinition) *Enemy {
	return &Enemy{
		Class:          def.Class,
		Speed:          def.Speed,
		Scale:          def.Scale,
		Health:         def.Health,
		MaxHealth:      def.Health,
		Damage:         def.Damage,
		AttackRange:    def.AttackRange,
		AttackCooldown: def.AttackCooldown,
		HitRange:       def.HitRange,
		// Первый удар не задерживаем: кулдаун считается уже истёкшим.
		LastAttackTime: -def.AttackCooldown,
		State:          StateChasing,
	}
}

// Alive сообщает, жив ли враг. Здоровье может уйти в минус — "жив"
// определяется строго как health > 0.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
