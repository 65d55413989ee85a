// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads the enemy configuration file and replaces the
// EnemyLibrary. The file holds a flat array of definitions.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyClass]EnemyDefinition)
	for _, def := range enemyDefs {
		library[def.Class] = def
	}
	if err := validateEnemyLibrary(library); err != nil {
		return err
	}

	EnemyLibrary = library
	return nil
}

// LoadWaveDefinitions reads the wave table file and replaces WavePatterns.
// The file holds an ordered array; wave numbers are assigned from 1.
func LoadWaveDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waves []WaveDefinition
	if err := json.Unmarshal(file, &waves); err != nil {
		return fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}

	patterns := make(map[int]WaveDefinition, len(waves))
	for i, def := range waves {
		patterns[i+1] = def
	}
	if err := ValidateWavePatterns(patterns); err != nil {
		return err
	}

	WavePatterns = patterns
	return nil
}

// Validate проверяет все активные таблицы определений. Вызывается на старте:
// пустая или битая конфигурация должна валить запуск, а не молча спавнить
// ноль врагов.
func Validate() error {
	if err := validateEnemyLibrary(EnemyLibrary); err != nil {
		return err
	}
	return ValidateWavePatterns(WavePatterns)
}

func validateEnemyLibrary(library map[EnemyClass]EnemyDefinition) error {
	if len(library) == 0 {
		return fmt.Errorf("enemy library is empty")
	}
	// regular — запасной tier для неизвестных классов, он обязан существовать.
	if _, ok := library[ClassRegular]; !ok {
		return fmt.Errorf("enemy library has no %q definition (fallback tier)", ClassRegular)
	}
	for class, def := range library {
		if def.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be > 0, got %d", class, def.Health)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("enemy %q: speed must be > 0, got %f", class, def.Speed)
		}
		if def.Scale <= 0 {
			return fmt.Errorf("enemy %q: scale must be > 0, got %f", class, def.Scale)
		}
		if def.LootChance < 0 || def.LootChance > 1 {
			return fmt.Errorf("enemy %q: loot_chance must be in [0,1], got %f", class, def.LootChance)
		}
		if def.SpawnMaxRadius <= def.SpawnMinRadius {
			return fmt.Errorf("enemy %q: spawn annulus is degenerate: [%f, %f]",
				class, def.SpawnMinRadius, def.SpawnMaxRadius)
		}
	}
	return nil
}

// ValidateWavePatterns проверяет таблицу волн: непустая, нумерация сплошная
// с единицы, каждая волна кого-то спавнит.
func ValidateWavePatterns(patterns map[int]WaveDefinition) error {
	if len(patterns) == 0 {
		return fmt.Errorf("wave table is empty")
	}
	for n := 1; n <= len(patterns); n++ {
		def, ok := patterns[n]
		if !ok {
			return fmt.Errorf("wave table has a gap at wave %d", n)
		}
		if def.Regular < 0 || def.Tank < 0 || def.Runner < 0 {
			return fmt.Errorf("wave %d: negative enemy count", n)
		}
		if def.Total() == 0 {
			return fmt.Errorf("wave %d: spawns no enemies", n)
		}
	}
	return nil
}
