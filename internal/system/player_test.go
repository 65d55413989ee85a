// internal/system/player_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/utils"
)

func TestPlayerMoveClampedToArena(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	player.Move(utils.Vec2{X: config.ArenaRadius * 3})
	assert.InDelta(t, config.ArenaRadius, player.Position().Len(), 1e-9)

	player.Move(utils.Vec2{X: -1})
	assert.Less(t, player.Position().Len(), float64(config.ArenaRadius))
}

func TestPlayerFacing(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	// По умолчанию взгляд вдоль +Z.
	f := player.Facing()
	assert.InDelta(t, 0.0, f.X, 1e-9)
	assert.InDelta(t, 1.0, f.Z, 1e-9)

	player.Turn(math.Pi / 2)
	f = player.Facing()
	assert.InDelta(t, 1.0, f.X, 1e-9)
	assert.InDelta(t, 0.0, f.Z, 1e-9)

	// Угол нормализуется, полный оборот возвращает исходный взгляд.
	player.Turn(2 * math.Pi)
	assert.InDelta(t, math.Pi/2, player.FacingAngle(), 1e-9)
}

func TestPlayerTakeDamageAndDeath(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	rec := &eventRecorder{}
	rec.subscribeAll(dispatcher, event.PlayerDamaged, event.PlayerDied)

	player.TakeDamage(30)
	assert.Equal(t, config.PlayerMaxHealth-30, player.Health())
	assert.True(t, player.Alive())
	assert.Equal(t, component.PhasePlaying, ecs.Phase)

	// Добиваем с запасом: здоровье зажато нулём, смерть ровно одна.
	player.TakeDamage(1000)
	assert.Equal(t, 0, player.Health())
	assert.False(t, player.Alive())
	assert.Equal(t, component.PhaseGameOver, ecs.Phase)
	assert.Equal(t, 1, rec.count(event.PlayerDied))

	// Урон по трупу — no-op.
	player.TakeDamage(10)
	assert.Equal(t, 0, player.Health())
	assert.Equal(t, 1, rec.count(event.PlayerDied))
	assert.Equal(t, 2, rec.count(event.PlayerDamaged))
}

func TestPlayerTakesDamageFromAttackEvents(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	dispatcher.Dispatch(event.Event{
		Type: event.EnemyAttack,
		Data: event.AttackPayload{ID: 7, Damage: 25},
	})
	assert.Equal(t, config.PlayerMaxHealth-25, player.Health())
}

func TestPlayerHealOverTime(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	player.TakeDamage(50)
	player.StartHealing(25, 2.0)

	healing, _ := player.Healing()
	require.True(t, healing)

	// Половина длительности — примерно половина объёма.
	player.Update(1.0)
	assert.InDelta(t, 50+12, player.Health(), 1.0)

	player.Update(1.0)
	assert.Equal(t, 75, player.Health())
	healing, _ = player.Healing()
	assert.False(t, healing, "heal finished")

	// Дальше здоровье не растёт.
	player.Update(1.0)
	assert.Equal(t, 75, player.Health())
}

func TestPlayerHealClampsAtMax(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	player.TakeDamage(10)
	player.StartHealing(25, 1.0)
	player.Update(1.0)
	assert.Equal(t, config.PlayerMaxHealth, player.Health())
}

func TestStartHealingNoOpAtFullHealth(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	player.StartHealing(25, 2.0)
	healing, _ := player.Healing()
	assert.False(t, healing)
}

func TestStartHealingRestartsActiveHeal(t *testing.T) {
	ecs, dispatcher, _, _ := testSetup(1)
	player := NewPlayerSystem(ecs, dispatcher)

	player.TakeDamage(60)
	player.StartHealing(20, 2.0)
	player.Update(1.0)
	healthMid := player.Health()

	// Новая аптечка перезапускает лечение с полным объёмом.
	player.StartHealing(20, 2.0)
	player.Update(2.0)
	assert.Equal(t, healthMid+20, player.Health())
}
