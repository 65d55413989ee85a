// internal/utils/math.go
package utils

import "math"

// Vec2 — вектор на плоскости XZ. Ось Y в геймплейной математике не участвует.
type Vec2 struct {
	X, Z float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Z + o.Z}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Z - o.Z}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Z*o.Z
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Z*v.Z
}

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор возвращается как есть.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Z / l}
}

// Perp возвращает перпендикуляр (поворот на +90° на плоскости XZ).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Z, v.X}
}

// Heading возвращает угол поворота по atan2(x, z) — ноль смотрит вдоль +Z.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.X, v.Z)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to float64, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}
