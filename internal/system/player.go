// internal/system/player.go
package system

import (
	"math"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

// PlayerSystem владеет сущностью игрока: позиция, направление взгляда,
// здоровье, лечение поверх времени. Для ядра симуляции это "внешний"
// коллаборатор — AI и бой видят его только через узкие интерфейсы.
type PlayerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	playerID   types.EntityID
}

func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PlayerSystem {
	id := ecs.NewEntity()
	ecs.Positions[id] = component.NewPosition(0, 0)
	ecs.PlayerState[id] = &component.PlayerStateComponent{
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
	}

	s := &PlayerSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		playerID:   id,
	}
	// Удары врагов приходят событиями, а не прямым вызовом из AI.
	dispatcher.Subscribe(event.EnemyAttack, s)
	return s
}

func (s *PlayerSystem) state() *component.PlayerStateComponent {
	return s.ecs.PlayerState[s.playerID]
}

// OnEvent реализует event.Listener: входящий урон от врага.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyAttack {
		return
	}
	payload, ok := e.Data.(event.AttackPayload)
	if !ok {
		return
	}
	s.TakeDamage(payload.Damage)
}

// Update продвигает лечение поверх времени.
func (s *PlayerSystem) Update(deltaTime float64) {
	st := s.state()
	if st == nil || !st.IsHealing {
		return
	}

	if st.HealDuration <= 0 {
		st.HealProgress = 1
	} else {
		st.HealProgress += deltaTime / st.HealDuration
	}
	if st.HealProgress > 1 {
		st.HealProgress = 1
	}

	// Начисляем здоровье пропорционально прогрессу, целыми единицами.
	target := int(math.Round(float64(st.HealAmount) * st.HealProgress))
	if target > st.HealApplied {
		delta := target - st.HealApplied
		st.HealApplied = target
		st.Health += delta
		if st.Health > st.MaxHealth {
			st.Health = st.MaxHealth
		}
	}

	if st.HealProgress >= 1 || st.Health >= st.MaxHealth {
		st.IsHealing = false
		st.HealProgress = 0
		st.HealAmount = 0
		st.HealApplied = 0
	}
}

// Move смещает игрока, зажимая его внутри арены.
func (s *PlayerSystem) Move(delta utils.Vec2) {
	pos := s.ecs.Positions[s.playerID]
	if pos == nil {
		return
	}
	next := pos.Vec2.Add(delta)
	if next.Len() > config.ArenaRadius {
		next = next.Normalized().Scale(config.ArenaRadius)
	}
	pos.Vec2 = next
}

// Turn доворачивает взгляд игрока.
func (s *PlayerSystem) Turn(deltaAngle float64) {
	st := s.state()
	if st == nil {
		return
	}
	st.Facing = utils.NormalizeAngle(st.Facing + deltaAngle)
}

// Position возвращает позицию игрока (PlayerContext).
func (s *PlayerSystem) Position() utils.Vec2 {
	if pos := s.ecs.Positions[s.playerID]; pos != nil {
		return pos.Vec2
	}
	return utils.Vec2{}
}

// Facing возвращает единичный вектор взгляда на плоскости XZ.
func (s *PlayerSystem) Facing() utils.Vec2 {
	st := s.state()
	if st == nil {
		return utils.Vec2{Z: 1}
	}
	return utils.Vec2{X: math.Sin(st.Facing), Z: math.Cos(st.Facing)}
}

// FacingAngle возвращает угол взгляда.
func (s *PlayerSystem) FacingAngle() float64 {
	if st := s.state(); st != nil {
		return st.Facing
	}
	return 0
}

// Health возвращает текущее здоровье игрока.
func (s *PlayerSystem) Health() int {
	if st := s.state(); st != nil {
		return st.Health
	}
	return 0
}

// MaxHealth возвращает максимум здоровья игрока.
func (s *PlayerSystem) MaxHealth() int {
	if st := s.state(); st != nil {
		return st.MaxHealth
	}
	return 0
}

// Healing возвращает флаг и прогресс текущего лечения (для HUD).
func (s *PlayerSystem) Healing() (bool, float64) {
	if st := s.state(); st != nil {
		return st.IsHealing, st.HealProgress
	}
	return false, 0
}

// Alive сообщает, жив ли игрок.
func (s *PlayerSystem) Alive() bool {
	return s.Health() > 0
}

// TakeDamage наносит игроку урон и рассылает уведомления. Урон по трупу
// игрока — no-op, повторного PlayerDied не бывает.
func (s *PlayerSystem) TakeDamage(amount int) {
	st := s.state()
	if st == nil || st.Health <= 0 {
		return
	}

	st.Health -= amount
	if st.Health < 0 {
		st.Health = 0
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: amount})

	if st.Health == 0 {
		s.ecs.Phase = component.PhaseGameOver
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// StartHealing запускает лечение поверх времени. На полном здоровье — no-op;
// повторный вызов во время лечения перезапускает его с новым объёмом.
func (s *PlayerSystem) StartHealing(amount int, duration float64) {
	st := s.state()
	if st == nil || st.Health >= st.MaxHealth || amount <= 0 {
		return
	}
	st.IsHealing = true
	st.HealProgress = 0
	st.HealAmount = amount
	st.HealApplied = 0
	st.HealDuration = duration
}
