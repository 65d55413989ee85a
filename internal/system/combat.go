// internal/system/combat.go
package system

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

// DamageResult — структурированный результат ApplyDamage. Слушатели счёта
// и лута подписываются на EnemyKilled, а не перехватывают вызовы.
type DamageResult struct {
	Killed bool
	Class  defs.EnemyClass
}

// CombatSystem разрешает удар игрока по врагам и применяет урон.
//
// Контракт одного замаха: ResolvePlayerAttack возвращает максимум одну цель
// за вызов; "не более одного попадания за замах" обеспечивает вызывающая
// сторона защёлкой на время замаха, не этот модуль.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	hitFlash   float64
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService, hitFlashDuration float64) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		rng:        rng,
		hitFlash:   hitFlashDuration,
	}
}

// ResolvePlayerAttack возвращает ближайшего живого врага, который находится
// в пределах своего HitRange от атакующего и внутри конуса замаха.
// Если таких нет — ok=false.
func (s *CombatSystem) ResolvePlayerAttack(attackerPos, attackerForward utils.Vec2, cosThreshold float64) (types.EntityID, bool) {
	var bestID types.EntityID
	var bestDist float64
	found := false

	for id, enemy := range s.ecs.Enemies {
		if enemy == nil || !enemy.Alive() {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		dist := Distance2D(attackerPos, pos.Vec2)
		if dist > enemy.HitRange {
			continue
		}
		if !IsInCone(attackerPos, attackerForward, pos.Vec2, cosThreshold) {
			continue
		}

		if !found || dist < bestDist {
			bestID = id
			bestDist = dist
			found = true
		}
	}

	return bestID, found
}

// ApplyDamage снимает amount здоровья с врага. Здоровье может уйти в минус,
// "жив" определяется как health > 0. Вызов на уже мёртвом враге — безопасный
// no-op с Killed=false, двойного сигнала смерти не бывает.
func (s *CombatSystem) ApplyDamage(id types.EntityID, amount int) DamageResult {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy == nil {
		return DamageResult{}
	}
	if enemy.State == component.StateDead {
		return DamageResult{Killed: false, Class: enemy.Class}
	}

	enemy.Health -= amount
	enemy.IsHit = true
	enemy.HitFlashTimer = s.hitFlash

	var pos utils.Vec2
	if p, hasPos := s.ecs.Positions[id]; hasPos {
		pos = p.Vec2
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyHit,
		Data: event.EnemyPayload{ID: id, Class: enemy.Class, Position: pos},
	})

	if enemy.Health > 0 {
		return DamageResult{Killed: false, Class: enemy.Class}
	}

	// Переход в Dead терминальный: гасим все боевые и обходные флаги,
	// труп доигрывает последовательность смерти в AI и уходит из ростера.
	enemy.State = component.StateDead
	enemy.DeathTimer = 0
	enemy.IsAvoiding = false
	enemy.AvoidanceTimer = 0
	enemy.AvoidDir = utils.Vec2{}
	enemy.IsHit = false
	enemy.HitFlashTimer = 0

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyPayload{ID: id, Class: enemy.Class, Position: pos},
	})

	return DamageResult{Killed: true, Class: enemy.Class}
}

// RollLootDrop — бросок Бернулли на выпадение аптечки. Вероятность берётся
// из определения класса; неизвестный класс играет по ставке regular.
func (s *CombatSystem) RollLootDrop(class defs.EnemyClass) bool {
	def := defs.LookupEnemy(class)
	return s.rng.Bernoulli(def.LootChance)
}
