// internal/component/player.go
package component

// PlayerStateComponent хранит состояние игрока, которое читает симуляция:
// здоровье и прогресс лечения. Позиция лежит в обычном Position.
type PlayerStateComponent struct {
	Health    int
	MaxHealth int
	Facing    float64 // atan2(x, z), как у врагов

	// Лечение поверх времени: аптечка запускает процесс, PlayerSystem
	// докручивает его по тикам.
	IsHealing    bool
	HealProgress float64 // [0,1]
	HealAmount   int     // сколько всего здоровья даст текущее лечение
	HealApplied  int     // сколько из HealAmount уже начислено
	HealDuration float64
}
