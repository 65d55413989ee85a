// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// InRange возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) InRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*s.rng.Float64()
}

// Bernoulli возвращает true с вероятностью p.
func (s *PRNGService) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// Annulus выбирает случайную точку в кольце [minRadius, maxRadius) вокруг center.
// Угол равномерный; дистанция равномерная по радиусу, как в исходной механике спавна.
func (s *PRNGService) Annulus(center Vec2, minRadius, maxRadius float64) Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := s.InRange(minRadius, maxRadius)
	return Vec2{
		X: center.X + math.Sin(angle)*dist,
		Z: center.Z + math.Cos(angle)*dist,
	}
}
