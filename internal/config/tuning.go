// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning собирает "магические" константы симуляции в одном месте.
// Значения подобраны на глаз в исходной балансировке; файл tuning.yaml
// позволяет менять их без пересборки.
type Tuning struct {
	// WaveMinDuration — минимальное время жизни волны в секундах. Пока оно
	// не истекло, волна не может считаться зачищенной, даже если живых
	// врагов нет (защита от гонки с отложенным спавном).
	WaveMinDuration float64 `yaml:"wave_min_duration"`

	// WaveSpawnDelay — пауза между объявлением волны и спавном врагов,
	// чтобы успел отыграть баннер волны.
	WaveSpawnDelay float64 `yaml:"wave_spawn_delay"`

	// ObstacleScanInterval — троттлинг скана препятствий в стиринге,
	// на одного врага.
	ObstacleScanInterval float64 `yaml:"obstacle_scan_interval"`

	// AvoidanceTimerMin/Max — сколько секунд враг держится выбранного
	// направления обхода, прежде чем пересчитать его.
	AvoidanceTimerMin float64 `yaml:"avoidance_timer_min"`
	AvoidanceTimerMax float64 `yaml:"avoidance_timer_max"`

	// AvoidanceDetectionRange — базовая дальность обнаружения препятствий,
	// умножается на масштаб врага.
	AvoidanceDetectionRange float64 `yaml:"avoidance_detection_range"`

	// AvoidanceCandidateCap — максимум кандидатов-препятствий,
	// рассматриваемых за один скан.
	AvoidanceCandidateCap int `yaml:"avoidance_candidate_cap"`

	// DeathDuration — длительность последовательности смерти, после которой
	// труп убирается из ростера.
	DeathDuration float64 `yaml:"death_duration"`

	// HitFlashDuration — пока враг "мигает" от попадания, он не двигается.
	HitFlashDuration float64 `yaml:"hit_flash_duration"`

	// PackDespawnTime — через сколько секунд невостребованная аптечка исчезает.
	PackDespawnTime float64 `yaml:"pack_despawn_time"`

	// PackPickupRadius — радиус подбора аптечки.
	PackPickupRadius float64 `yaml:"pack_pickup_radius"`
}

// DefaultTuning возвращает значения из исходной балансировки.
func DefaultTuning() Tuning {
	return Tuning{
		WaveMinDuration:         5.0,
		WaveSpawnDelay:          2.0,
		ObstacleScanInterval:    0.1,
		AvoidanceTimerMin:       0.3,
		AvoidanceTimerMax:       0.5,
		AvoidanceDetectionRange: 2.0,
		AvoidanceCandidateCap:   5,
		DeathDuration:           2.0,
		HitFlashDuration:        0.15,
		PackDespawnTime:         20.0,
		PackPickupRadius:        1.5,
	}
}

// LoadTuning читает tuning.yaml поверх дефолтов. Отсутствующий файл — не
// ошибка: игра запускается на дефолтной балансировке.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate отсекает бессмысленные значения, которые молча ломают симуляцию.
func (t Tuning) Validate() error {
	if t.WaveMinDuration < 0 {
		return fmt.Errorf("tuning: wave_min_duration must be >= 0, got %f", t.WaveMinDuration)
	}
	if t.ObstacleScanInterval <= 0 {
		return fmt.Errorf("tuning: obstacle_scan_interval must be > 0, got %f", t.ObstacleScanInterval)
	}
	if t.AvoidanceTimerMax < t.AvoidanceTimerMin {
		return fmt.Errorf("tuning: avoidance_timer_max < avoidance_timer_min")
	}
	if t.AvoidanceCandidateCap <= 0 {
		return fmt.Errorf("tuning: avoidance_candidate_cap must be > 0, got %d", t.AvoidanceCandidateCap)
	}
	if t.DeathDuration <= 0 {
		return fmt.Errorf("tuning: death_duration must be > 0, got %f", t.DeathDuration)
	}
	return nil
}
