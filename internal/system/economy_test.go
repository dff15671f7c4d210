package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/event"
)

func TestDebit(t *testing.T) {
	env := newTestEnv(t)
	s := NewEconomySystem(env.world, env.dispatcher)

	assert.NoError(t, s.Debit(250))
	assert.Equal(t, 50, env.world.Tokens)
	assert.ErrorIs(t, s.Debit(100), ErrInsufficientFunds)
	assert.Equal(t, 50, env.world.Tokens)
	assert.NoError(t, s.Debit(50))
	assert.Zero(t, env.world.Tokens)
}

func TestSweepArrivalsTakesOneLifeEach(t *testing.T) {
	env := newTestEnv(t)
	s := NewEconomySystem(env.world, env.dispatcher)
	for i := 0; i < 3; i++ {
		e := env.addEnemy(env.path.Last(), 100)
		e.PathIndex = env.path.Len() - 1
	}
	walking := env.addEnemy(component.Position{X: 10}, 100)

	assert.Equal(t, 3, s.SweepArrivals())
	assert.Equal(t, 7, env.world.Lives)
	assert.Equal(t, 3, env.count(event.EnemyLeaked))
	assert.Len(t, env.world.Enemies, 1)
	assert.Equal(t, walking.ID, env.world.Enemies[0].ID)
	assert.Zero(t, env.world.Score)
}

func TestCheckGameOverLatchesOnce(t *testing.T) {
	env := newTestEnv(t)
	s := NewEconomySystem(env.world, env.dispatcher)

	assert.False(t, s.CheckGameOver())
	env.world.Lives = -2
	assert.True(t, s.CheckGameOver())
	assert.True(t, s.CheckGameOver())
	assert.Equal(t, 1, env.count(event.GameOver))
}
