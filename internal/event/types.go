// internal/event/types.go
package event

import (
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг создан (рендер создаёт визуал)
	EnemyAttack    EventType = "EnemyAttack"    // Враг ударил игрока
	EnemyHit       EventType = "EnemyHit"       // Враг получил урон
	EnemyKilled    EventType = "EnemyKilled"    // Враг умер (счёт, лут)
	EnemyRemoved   EventType = "EnemyRemoved"   // Труп убран из ростера
	WaveStarted    EventType = "WaveStarted"    // Объявлена новая волна
	WaveCleared    EventType = "WaveCleared"    // Волна зачищена
	ScoreChanged   EventType = "ScoreChanged"   // Изменился счёт
	PlayerDamaged  EventType = "PlayerDamaged"  // Игрок получил урон
	PlayerDied     EventType = "PlayerDied"     // Игрок погиб
	PickupSpawned  EventType = "PickupSpawned"  // Выпала аптечка
	PickupConsumed EventType = "PickupConsumed" // Аптечка подобрана или истлела
)

// EnemyPayload сопровождает события жизненного цикла врага.
type EnemyPayload struct {
	ID       types.EntityID
	Class    defs.EnemyClass
	Position utils.Vec2
}

// AttackPayload сопровождает удар врага по игроку.
type AttackPayload struct {
	ID     types.EntityID
	Class  defs.EnemyClass
	Damage int
}

// WavePayload сопровождает события волны.
type WavePayload struct {
	Number int
	Score  int
}

// ScorePayload сопровождает изменение счёта.
type ScorePayload struct {
	Delta int
	Total int
}

// PickupPayload сопровождает события аптечек.
type PickupPayload struct {
	ID       types.EntityID
	Position utils.Vec2
	Used     bool // true — подобрана, false — истекла по таймауту
}
