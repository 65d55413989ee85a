// internal/system/spatial.go
package system

import (
	"go-wave-survival/internal/utils"
)

// Геометрические помощники для AI и боя. Все проверки дистанций в геймплее
// планарные (XZ); никакого состояния и побочных эффектов здесь нет.

// Distance2D возвращает планарную дистанцию между двумя точками.
func Distance2D(a, b utils.Vec2) float64 {
	return a.Sub(b).Len()
}

// IsInCone сообщает, находится ли target внутри конуса обзора origin.
// Истина, когда нормализованный вектор origin→target имеет скалярное
// произведение с forward не меньше cosThreshold. Совпадающие точки конусом
// не считаются.
func IsInCone(originPos, originForward, targetPos utils.Vec2, cosThreshold float64) bool {
	toTarget := targetPos.Sub(originPos)
	if toTarget.LenSq() == 0 {
		return false
	}
	return toTarget.Normalized().Dot(originForward.Normalized()) >= cosThreshold
}

// Candidate — кандидат для поиска ближайшего: стабильный ключ и позиция.
type Candidate struct {
	ID       uint64
	Position utils.Vec2
}

// NearestInRadius линейно сканирует кандидатов и возвращает ближайшего,
// прошедшего predicate, в радиусе maxRadius. При равной дистанции побеждает
// первый найденный (стабильность по порядку обхода). Возвращает nil, если
// никого нет.
func NearestInRadius(origin utils.Vec2, candidates []Candidate, maxRadius float64, predicate func(Candidate) bool) *Candidate {
	var best *Candidate
	bestDist := maxRadius
	for i := range candidates {
		c := &candidates[i]
		if predicate != nil && !predicate(*c) {
			continue
		}
		d := Distance2D(origin, c.Position)
		if d > maxRadius {
			continue
		}
		if best == nil || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
