// internal/system/combat_test.go
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

func TestApplyDamageKillsOnce(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	rec := &eventRecorder{}
	rec.subscribeAll(dispatcher, event.EnemyHit, event.EnemyKilled)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	id := spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{X: 1})
	ecs.Enemies[id].Health = 10

	// Урон больше остатка здоровья: смерть, здоровье уходит в минус.
	result := combat.ApplyDamage(id, 25)
	assert.True(t, result.Killed)
	assert.Equal(t, defs.ClassRegular, result.Class)
	assert.Equal(t, -15, ecs.Enemies[id].Health)
	assert.Equal(t, component.StateDead, ecs.Enemies[id].State)
	assert.False(t, ecs.Enemies[id].Alive())

	// Повторный удар по трупу — no-op, второго EnemyKilled нет.
	result = combat.ApplyDamage(id, 25)
	assert.False(t, result.Killed)
	assert.Equal(t, -15, ecs.Enemies[id].Health)

	assert.Equal(t, 1, rec.count(event.EnemyKilled))
	assert.Equal(t, 1, rec.count(event.EnemyHit))
}

func TestApplyDamageNonLethal(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	rec := &eventRecorder{}
	rec.subscribeAll(dispatcher, event.EnemyHit, event.EnemyKilled)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	id := spawnTestEnemy(ecs, defs.ClassTank, utils.Vec2{X: 1})
	before := ecs.Enemies[id].Health

	result := combat.ApplyDamage(id, 34)
	assert.False(t, result.Killed)
	assert.Equal(t, before-34, ecs.Enemies[id].Health)
	assert.True(t, ecs.Enemies[id].IsHit)
	assert.Greater(t, ecs.Enemies[id].HitFlashTimer, 0.0)
	assert.Equal(t, 1, rec.count(event.EnemyHit))
	assert.Equal(t, 0, rec.count(event.EnemyKilled))
}

func TestApplyDamageUnknownID(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	result := combat.ApplyDamage(12345, 50)
	assert.False(t, result.Killed)
}

func TestResolvePlayerAttackPicksNearestInCone(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	origin := utils.Vec2{}
	forward := utils.Vec2{Z: 1}
	cos45 := 0.70710678

	near := spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{Z: 1.5})
	spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{Z: 2.2})

	id, ok := combat.ResolvePlayerAttack(origin, forward, cos45)
	require.True(t, ok)
	assert.Equal(t, near, id)
}

func TestResolvePlayerAttackRespectsConeAndRange(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	origin := utils.Vec2{}
	forward := utils.Vec2{Z: 1}
	cos45 := 0.70710678

	// Позади игрока.
	spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{Z: -1.5})
	// В конусе, но дальше своего HitRange.
	spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{Z: 10})

	_, ok := combat.ResolvePlayerAttack(origin, forward, cos45)
	assert.False(t, ok)

	// Дистанция попадания у каждого класса своя: танк с HitRange 3.2
	// достаётся там, где regular уже не достался бы.
	tank := spawnTestEnemy(ecs, defs.ClassTank, utils.Vec2{Z: 3.0})
	id, ok := combat.ResolvePlayerAttack(origin, forward, cos45)
	require.True(t, ok)
	assert.Equal(t, tank, id)
}

func TestResolvePlayerAttackIgnoresDead(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(1)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	id := spawnTestEnemy(ecs, defs.ClassRegular, utils.Vec2{Z: 1.5})
	ecs.Enemies[id].Health = 0
	ecs.Enemies[id].State = component.StateDead

	_, ok := combat.ResolvePlayerAttack(utils.Vec2{}, utils.Vec2{Z: 1}, 0.70710678)
	assert.False(t, ok)
}

// Сходимость лута: на большой выборке частота выпадения должна сойтись к
// вероятности класса с точностью до процента.
func TestRollLootDropConvergence(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(42)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	const trials = 100000
	for _, tc := range []struct {
		class defs.EnemyClass
		want  float64
	}{
		{defs.ClassRegular, 0.15},
		{defs.ClassRunner, 0.20},
		{defs.ClassTank, 0.30},
	} {
		drops := 0
		for i := 0; i < trials; i++ {
			if combat.RollLootDrop(tc.class) {
				drops++
			}
		}
		got := float64(drops) / trials
		assert.InDelta(t, tc.want, got, 0.01, "class %s", tc.class)
	}
}

// Неизвестный класс играет по ставке regular.
func TestRollLootDropUnknownClassFallsBack(t *testing.T) {
	ecs, dispatcher, rng, tuning := testSetup(42)
	combat := NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	const trials = 100000
	drops := 0
	for i := 0; i < trials; i++ {
		if combat.RollLootDrop(defs.EnemyClass("ghost")) {
			drops++
		}
	}
	assert.InDelta(t, 0.15, float64(drops)/trials, 0.01)
}
