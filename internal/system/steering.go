// internal/system/steering.go
package system

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/utils"
)

// SteeringSystem вычисляет локальный вектор движения к цели с обходом
// ближайшего мешающего препятствия. Это реактивная эвристика, а не
// поиск пути: выбранное направление обхода кэшируется на короткий случайный
// интервал, чтобы враг не дёргался между двумя перпендикулярами.
type SteeringSystem struct {
	ecs    *entity.ECS
	rng    *utils.PRNGService
	tuning config.Tuning
}

func NewSteeringSystem(ecs *entity.ECS, rng *utils.PRNGService, tuning config.Tuning) *SteeringSystem {
	return &SteeringSystem{ecs: ecs, rng: rng, tuning: tuning}
}

// ComputeMove возвращает единичный (или нулевой) вектор движения врага к
// target. Таймеры AvoidanceTimer и ScanCooldown декрементирует вызывающий
// тик AI, здесь они только читаются и взводятся.
//
// Инвариант: результат либо нулевой, либо единичной длины, и никогда не
// направлен сквозь выбранный blocker.
func (s *SteeringSystem) ComputeMove(e *component.Enemy, pos, target utils.Vec2) utils.Vec2 {
	// Пока держится прошлое направление обхода — повторяем его.
	if e.IsAvoiding && e.AvoidanceTimer > 0 {
		return e.AvoidDir
	}

	direct := target.Sub(pos)
	if direct.LenSq() == 0 {
		// Враг и цель в одной точке: двигаться некуда.
		return utils.Vec2{}
	}
	direct = direct.Normalized()

	// Скан препятствий дорогой, гоняем его не чаще ~10 Гц на врага.
	if e.ScanCooldown > 0 {
		return direct
	}
	e.ScanCooldown = s.tuning.ObstacleScanInterval

	blockerPos, blockerFound := s.findBlocker(e, pos, direct)
	if !blockerFound {
		e.IsAvoiding = false
		return direct
	}

	toBlocker := blockerPos.Sub(pos).Normalized()
	// Из двух перпендикуляров берём тот, что меньше уводит с прямого курса.
	left := toBlocker.Perp()
	right := left.Scale(-1)
	chosen := left
	if right.Dot(direct) > left.Dot(direct) {
		chosen = right
	}

	e.IsAvoiding = true
	e.AvoidanceTimer = s.rng.InRange(s.tuning.AvoidanceTimerMin, s.tuning.AvoidanceTimerMax)
	e.AvoidDir = chosen
	return chosen
}

// findBlocker ищет ближайшее препятствие примерно по курсу движения.
// Кандидатов смотрим не больше AvoidanceCandidateCap — скан обязан быть
// ограничен по стоимости.
func (s *SteeringSystem) findBlocker(e *component.Enemy, pos, direct utils.Vec2) (utils.Vec2, bool) {
	detectionRange := s.tuning.AvoidanceDetectionRange * e.Scale

	var blockerPos utils.Vec2
	blockerDist := detectionRange + 1
	found := false
	checked := 0

	for id, obstacle := range s.ecs.Obstacles {
		if obstacle == nil {
			continue
		}
		obsPos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		toObs := obsPos.Vec2.Sub(pos)
		dist := toObs.Len()
		if dist > detectionRange || dist == 0 {
			continue
		}
		// Интересны только препятствия примерно впереди.
		if direct.Dot(toObs.Normalized()) < 0.5 {
			continue
		}

		checked++
		if dist < blockerDist {
			blockerDist = dist
			blockerPos = obsPos.Vec2
			found = true
		}
		if checked >= s.tuning.AvoidanceCandidateCap {
			break
		}
	}

	return blockerPos, found
}
