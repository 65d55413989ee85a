// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, Validate())
	assert.Len(t, WavePatterns, 7)
}

func TestLookupEnemyFallsBackToRegular(t *testing.T) {
	def := LookupEnemy(EnemyClass("ghost"))
	assert.Equal(t, ClassRegular, def.Class)

	tank := LookupEnemy(ClassTank)
	assert.Equal(t, ClassTank, tank.Class)
}

func TestLoadEnemyDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enemies.json")
	data := `[
		{"class": "regular", "name": "Crawler", "health": 50, "speed": 3.0, "damage": 5,
		 "scale": 1.0, "loot_chance": 0.1, "attack_range": 2.0, "attack_cooldown": 1.0,
		 "hit_range": 2.5, "spawn_min_radius": 30, "spawn_max_radius": 50, "score_value": 5}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	saved := EnemyLibrary
	defer func() { EnemyLibrary = saved }()

	require.NoError(t, LoadEnemyDefinitions(path))
	assert.Equal(t, "Crawler", EnemyLibrary[ClassRegular].Name)
	assert.Equal(t, 50, EnemyLibrary[ClassRegular].Health)
}

func TestLoadEnemyDefinitionsRejectsMissingRegular(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enemies.json")
	data := `[
		{"class": "tank", "name": "Brute", "health": 280, "speed": 1.4, "damage": 25,
		 "scale": 1.4, "loot_chance": 0.3, "attack_range": 2.8, "attack_cooldown": 1.6,
		 "hit_range": 3.2, "spawn_min_radius": 50, "spawn_max_radius": 70, "score_value": 30}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	err := LoadEnemyDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback")
}

func TestLoadEnemyDefinitionsMissingFile(t *testing.T) {
	err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadWaveDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	data := `[{"regular": 3}, {"regular": 4, "tank": 1}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	saved := WavePatterns
	defer func() { WavePatterns = saved }()

	require.NoError(t, LoadWaveDefinitions(path))
	assert.Len(t, WavePatterns, 2)
	assert.Equal(t, WaveDefinition{Regular: 3}, WavePatterns[1])
	assert.Equal(t, WaveDefinition{Regular: 4, Tank: 1}, WavePatterns[2])
}

func TestValidateWavePatterns(t *testing.T) {
	assert.Error(t, ValidateWavePatterns(map[int]WaveDefinition{}), "empty table")

	assert.Error(t, ValidateWavePatterns(map[int]WaveDefinition{
		2: {Regular: 5},
	}), "table must start at wave 1")

	assert.Error(t, ValidateWavePatterns(map[int]WaveDefinition{
		1: {Regular: 5},
		3: {Regular: 7},
	}), "table must be contiguous")

	assert.Error(t, ValidateWavePatterns(map[int]WaveDefinition{
		1: {Regular: -1, Tank: 5},
	}), "negative counts")

	assert.Error(t, ValidateWavePatterns(map[int]WaveDefinition{
		1: {},
	}), "empty wave")

	assert.NoError(t, ValidateWavePatterns(map[int]WaveDefinition{
		1: {Regular: 5},
		2: {Regular: 8, Tank: 1, Runner: 2},
	}))
}

func TestWaveDefinitionTotal(t *testing.T) {
	assert.Equal(t, 11, WaveDefinition{Regular: 8, Tank: 1, Runner: 2}.Total())
}
