package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/event"
)

func newCombat(env *testEnv) *CombatSystem {
	economy := NewEconomySystem(env.world, env.dispatcher)
	return NewCombatSystem(env.world, economy, env.dispatcher, env.cfg.Combat)
}

func TestCombatRespectsFireRate(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.WaterCannon, component.Position{X: 50, Y: 50})
	env.addEnemy(component.Position{X: 50, Y: 0}, 10000)
	s := newCombat(env)

	s.Update(0)
	s.Update(400 * time.Millisecond)
	s.Update(499 * time.Millisecond)
	assert.Equal(t, 1, env.count(event.ShotFired))

	s.Update(500 * time.Millisecond)
	assert.Equal(t, 2, env.count(event.ShotFired))
}

func TestCombatNoTargetKeepsTowerReady(t *testing.T) {
	env := newTestEnv(t)
	tw := env.addTower(defs.FireTower, component.Position{X: 500, Y: 500})
	env.addEnemy(component.Position{X: 0, Y: 0}, 100)
	s := newCombat(env)

	s.Update(time.Second)
	assert.False(t, tw.HasFired)
	assert.Zero(t, env.count(event.ShotFired))
}

func TestCombatTargetsNearestWithStableTieBreak(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.LightningRod, component.Position{X: 50, Y: 50})
	first := env.addEnemy(component.Position{X: 50, Y: 0}, 100)
	second := env.addEnemy(component.Position{X: 50, Y: 100}, 100)
	s := newCombat(env)

	s.Update(0)
	assert.Equal(t, 75.0, first.Health)
	assert.Equal(t, 100.0, second.Health)

	nearer := env.addEnemy(component.Position{X: 60, Y: 50}, 100)
	s.Update(10 * time.Second)
	assert.Equal(t, 75.0, nearer.Health)
}

func TestCombatRangeIsInclusive(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.WaterCannon, component.Position{X: 0, Y: 150})
	e := env.addEnemy(component.Position{X: 0, Y: 0}, 100)

	newCombat(env).Update(0)
	assert.Equal(t, 85.0, e.Health)
}

func TestCombatKillCreditsReward(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.FireTower, component.Position{X: 50, Y: 50})
	e := env.addEnemy(component.Position{X: 50, Y: 0}, 30)
	s := newCombat(env)

	s.Update(0)

	assert.Empty(t, env.world.Enemies)
	assert.Equal(t, 325, env.world.Tokens)
	assert.Equal(t, 25, env.world.Score)
	require.Equal(t, 1, env.count(event.EnemyKilled))
	killed := env.events[len(env.events)-1].Data.(event.EnemyKilledData)
	assert.Equal(t, e.ID, killed.EnemyID)
	assert.Equal(t, 25, killed.Reward)
}

func TestCombatPoisonKillIsCredited(t *testing.T) {
	env := newTestEnv(t)
	e := env.addEnemy(component.Position{X: 50, Y: 0}, 1)
	e.ApplyPoison(5, 10)

	NewStatusEffectSystem(env.world).Update()
	require.False(t, e.Alive())

	newCombat(env).Update(0)
	assert.Empty(t, env.world.Enemies)
	assert.Equal(t, 25, env.world.Score)
	assert.Equal(t, 1, env.count(event.EnemyKilled))
}

func TestCombatAppliesTowerEffects(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.PoisonSprayer, component.Position{X: 50, Y: 50})
	env.addTower(defs.IceTower, component.Position{X: 50, Y: 50})
	e := env.addEnemy(component.Position{X: 50, Y: 0}, 1000)

	newCombat(env).Update(0)

	assert.Equal(t, component.PoisonEffect{Active: true, DamagePerTick: 1, RemainingTicks: 50}, e.Poison)
	assert.Equal(t, component.SlowEffect{Active: true, Factor: 0.5, RemainingTicks: 30}, e.Slow)
	assert.Equal(t, 985.0, e.Health)
}

func TestCombatOneTargetPerTowerPerTick(t *testing.T) {
	env := newTestEnv(t)
	env.addTower(defs.WaterCannon, component.Position{X: 50, Y: 50})
	env.addTower(defs.WaterCannon, component.Position{X: 50, Y: 50})
	a := env.addEnemy(component.Position{X: 50, Y: 40}, 10)
	b := env.addEnemy(component.Position{X: 50, Y: 0}, 100)

	newCombat(env).Update(0)

	// Первая башня убивает ближнего, вторая переключается на следующего.
	_, ok := env.world.Enemy(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 85.0, b.Health)
	assert.Equal(t, 2, env.count(event.ShotFired))
}
