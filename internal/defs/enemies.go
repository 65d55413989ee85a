// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific class of enemy.
type EnemyDefinition struct {
	Class          EnemyClass `json:"class"`
	Name           string     `json:"name"`
	Health         int        `json:"health"`
	Speed          float64    `json:"speed"`
	Damage         int        `json:"damage"`
	Scale          float64    `json:"scale"`
	LootChance     float64    `json:"loot_chance"`
	AttackRange    float64    `json:"attack_range"`
	AttackCooldown float64    `json:"attack_cooldown"`
	HitRange       float64    `json:"hit_range"`
	SpawnMinRadius float64    `json:"spawn_min_radius"`
	SpawnMaxRadius float64    `json:"spawn_max_radius"`
	ScoreValue     int        `json:"score_value"`
}

// DefaultEnemyLibrary возвращает авторскую таблицу классов. Танки спавнятся
// дальше всех, бегуны ближе — так задан темп сложности.
func DefaultEnemyLibrary() map[EnemyClass]EnemyDefinition {
	return map[EnemyClass]EnemyDefinition{
		ClassRegular: {
			Class:          ClassRegular,
			Name:           "Shambler",
			Health:         100,
			Speed:          2.4,
			Damage:         10,
			Scale:          1.0,
			LootChance:     0.15,
			AttackRange:    2.2,
			AttackCooldown: 1.0,
			HitRange:       2.6,
			SpawnMinRadius: 40,
			SpawnMaxRadius: 60,
			ScoreValue:     10,
		},
		ClassTank: {
			Class:          ClassTank,
			Name:           "Brute",
			Health:         280,
			Speed:          1.4,
			Damage:         25,
			Scale:          1.4,
			LootChance:     0.30,
			AttackRange:    2.8,
			AttackCooldown: 1.6,
			HitRange:       3.2,
			SpawnMinRadius: 50,
			SpawnMaxRadius: 70,
			ScoreValue:     30,
		},
		ClassRunner: {
			Class:          ClassRunner,
			Name:           "Sprinter",
			Health:         60,
			Speed:          4.2,
			Damage:         6,
			Scale:          0.85,
			LootChance:     0.20,
			AttackRange:    2.0,
			AttackCooldown: 0.7,
			HitRange:       2.3,
			SpawnMinRadius: 35,
			SpawnMaxRadius: 55,
			ScoreValue:     15,
		},
	}
}

// EnemyLibrary is the library of all enemy definitions, mapped by class.
var EnemyLibrary = DefaultEnemyLibrary()

// LookupEnemy возвращает определение класса. Неизвестный класс падает на
// regular: это запасной tier для лута и статов, а не ошибка.
func LookupEnemy(class EnemyClass) EnemyDefinition {
	if def, ok := EnemyLibrary[class]; ok {
		return def
	}
	return EnemyLibrary[ClassRegular]
}
