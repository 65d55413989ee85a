// internal/system/wave_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/utils"
)

func TestWaveSpawnsAfterDelay(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	rec := &eventRecorder{}
	rec.subscribeAll(dispatcher, event.WaveStarted, event.EnemySpawned)

	wave := ws.StartNextWave()
	assert.Equal(t, 1, wave.Number)
	assert.Equal(t, component.WaveSpawning, wave.State)
	assert.Equal(t, 1, rec.count(event.WaveStarted))
	assert.Empty(t, ecs.Enemies, "spawn is delayed")

	// До задержки спавна врагов нет.
	ecs.GameTime += tuning.WaveSpawnDelay / 2
	scheduler.Advance(tuning.WaveSpawnDelay / 2)
	assert.Empty(t, ecs.Enemies)

	ecs.GameTime += tuning.WaveSpawnDelay
	scheduler.Advance(tuning.WaveSpawnDelay)
	assert.Equal(t, component.WaveActive, wave.State)
	// Волна 1: 5 regular.
	assert.Len(t, ecs.Enemies, 5)
	assert.Equal(t, 5, rec.count(event.EnemySpawned))
}

func TestWaveClearRequiresMinDuration(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	wave := ws.StartNextWave()
	ecs.GameTime += tuning.WaveSpawnDelay
	scheduler.Advance(tuning.WaveSpawnDelay)
	require.Equal(t, component.WaveActive, wave.State)

	// Мгновенно убиваем всех: волна моложе минимального срока, зачистки нет.
	for _, id := range ecs.EnemyIDs() {
		ecs.RemoveEnemy(id)
	}
	assert.False(t, ws.Update(), "cleared before min duration must not complete the wave")
	assert.Equal(t, component.WaveActive, wave.State)

	// Возраст дорос до минимума: зачистка фиксируется ровно один раз.
	ecs.GameTime = wave.StartedAt + tuning.WaveMinDuration
	assert.True(t, ws.Update())
	assert.Equal(t, component.WaveCleared, wave.State)
	assert.False(t, ws.Update(), "completion reported exactly once")
}

func TestWaveNotClearedWhileEnemiesAlive(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	wave := ws.StartNextWave()
	ecs.GameTime += tuning.WaveSpawnDelay
	scheduler.Advance(tuning.WaveSpawnDelay)

	ecs.GameTime = wave.StartedAt + tuning.WaveMinDuration + 10
	assert.False(t, ws.Update(), "living enemies keep the wave active")

	// Мёртвые, но ещё не убранные из ростера трупы зачистке не мешают.
	for _, id := range ecs.EnemyIDs() {
		ecs.Enemies[id].Health = 0
		ecs.Enemies[id].State = component.StateDead
	}
	assert.True(t, ws.Update())
}

func TestWaveTableComposition(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(7)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	// Прокручиваем до волны 3: авторская запись {8, 1, 2}.
	var wave *component.Wave
	for i := 0; i < 3; i++ {
		wave = ws.StartNextWave()
		ecs.GameTime += tuning.WaveSpawnDelay
		scheduler.Advance(tuning.WaveSpawnDelay)
	}

	assert.Equal(t, 3, wave.Number)
	assert.Equal(t, defs.WaveDefinition{Regular: 8, Tank: 1, Runner: 2}, wave.Config)

	counts := map[defs.EnemyClass]int{}
	for _, enemy := range ecs.Enemies {
		counts[enemy.Class]++
	}
	assert.Equal(t, 8, counts[defs.ClassRegular])
	assert.Equal(t, 1, counts[defs.ClassTank])
	assert.Equal(t, 2, counts[defs.ClassRunner])
}

// Волны дальше авторской таблицы синтезируются масштабированием и только
// растут.
func TestWaveScalingBeyondTable(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	// Волна 8 — первая синтезированная: от {16, 6, 9} это
	// {floor(16×1.2), floor(6×1.2)+1, floor(9×1.3)+2} = {19, 8, 13}.
	def8 := ws.configFor(8)
	assert.Equal(t, defs.WaveDefinition{Regular: 19, Tank: 8, Runner: 13}, def8)

	prev := def8
	for n := 9; n <= 30; n++ {
		def := ws.configFor(n)
		assert.GreaterOrEqual(t, def.Regular, prev.Regular, "wave %d regular", n)
		assert.GreaterOrEqual(t, def.Tank, prev.Tank, "wave %d tank", n)
		assert.GreaterOrEqual(t, def.Runner, prev.Runner, "wave %d runner", n)
		assert.Greater(t, def.Total(), 0, "wave %d", n)
		prev = def
	}

	// Повторный запрос отдаёт тот же конфиг.
	assert.Equal(t, def8, ws.configFor(8))
}

// Дистанции спавна лежат в авторском кольце класса.
func TestSpawnDistancesWithinClassAnnulus(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(99)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	origin := utils.Vec2{}
	for _, tc := range []struct {
		class    defs.EnemyClass
		min, max float64
	}{
		{defs.ClassRegular, 40, 60},
		{defs.ClassTank, 50, 70},
		{defs.ClassRunner, 35, 55},
	} {
		for i := 0; i < 1000; i++ {
			ws.spawnEnemy(tc.class)
		}
		for id, enemy := range ecs.Enemies {
			if enemy.Class != tc.class {
				continue
			}
			d := Distance2D(origin, ecs.Positions[id].Vec2)
			require.GreaterOrEqual(t, d, tc.min, "class %s", tc.class)
			require.LessOrEqual(t, d, tc.max, "class %s", tc.class)
		}
		for _, id := range ecs.EnemyIDs() {
			ecs.RemoveEnemy(id)
		}
	}
}

// Отложенный спавн старой волны не стреляет после рестарта.
func TestStaleWaveSpawnSuppressed(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	scheduler := NewScheduler()
	ws, err := NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	require.NoError(t, err)

	first := ws.StartNextWave()
	// Волна сменилась до того, как созрел спавн первой.
	second := ws.StartNextWave()
	require.NotEqual(t, first, second)

	ecs.GameTime += tuning.WaveSpawnDelay
	scheduler.Advance(tuning.WaveSpawnDelay)

	// Спавнился только второй конфиг (волна 2: 8 regular).
	assert.Equal(t, component.WaveSpawning, first.State)
	assert.Equal(t, component.WaveActive, second.State)
	assert.Len(t, ecs.Enemies, 8)
}

func TestNewWaveSystemRejectsBrokenTables(t *testing.T) {
	savedWaves := defs.WavePatterns
	defs.WavePatterns = map[int]defs.WaveDefinition{}
	defer func() { defs.WavePatterns = savedWaves }()

	ecs, dispatcher, rng, tuning := testSetup(1)
	_, err := NewWaveSystem(ecs, dispatcher, rng, NewScheduler(), tuning)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wave system configuration")
}
