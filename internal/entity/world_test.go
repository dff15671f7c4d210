package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

func newEnemies(t *testing.T, w *World, n int) []types.EntityID {
	t.Helper()
	path, err := config.Default().PathModel()
	require.NoError(t, err)
	ids := make([]types.EntityID, n)
	for i := range ids {
		e := component.NewEnemy(w.NewEntity(), path, defs.EnemyStats{Health: 10, Speed: 1, Reward: 1})
		w.AddEnemy(e)
		ids[i] = e.ID
	}
	return ids
}

func enemyIDs(w *World) []types.EntityID {
	ids := make([]types.EntityID, len(w.Enemies))
	for i, e := range w.Enemies {
		ids[i] = e.ID
	}
	return ids
}

func TestNewWorldStartsFresh(t *testing.T) {
	w := NewWorld(config.Default())
	assert.Equal(t, 300, w.Tokens)
	assert.Equal(t, 10, w.Lives)
	assert.Equal(t, 1, w.Wave)
	assert.Zero(t, w.Score)
	assert.True(t, w.WaveReady)
	assert.False(t, w.IsGameOver)
	assert.Equal(t, types.EntityID(1), w.NewEntity())
	assert.Equal(t, types.EntityID(2), w.NewEntity())
}

func TestRemoveEnemyKeepsOrder(t *testing.T) {
	w := NewWorld(config.Default())
	ids := newEnemies(t, w, 4)

	assert.True(t, w.RemoveEnemy(ids[1]))
	assert.False(t, w.RemoveEnemy(ids[1]))
	assert.Equal(t, []types.EntityID{ids[0], ids[2], ids[3]}, enemyIDs(w))
}

func TestRemoveEnemiesWhere(t *testing.T) {
	w := NewWorld(config.Default())
	ids := newEnemies(t, w, 5)
	w.Enemies[0].Health = 0
	w.Enemies[3].Health = 0

	removed := w.RemoveEnemiesWhere(func(e *component.Enemy) bool { return !e.Alive() })
	require.Len(t, removed, 2)
	assert.Equal(t, ids[0], removed[0].ID)
	assert.Equal(t, ids[3], removed[1].ID)
	assert.Equal(t, []types.EntityID{ids[1], ids[2], ids[4]}, enemyIDs(w))

	_, ok := w.Enemy(ids[3])
	assert.False(t, ok)
	e, ok := w.Enemy(ids[4])
	require.True(t, ok)
	assert.Equal(t, ids[4], e.ID)
}

func TestResetClearsEverything(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg)
	newEnemies(t, w, 3)
	w.Tokens, w.Lives, w.Score, w.Wave = 1, 0, 99, 7
	w.IsGameOver = true
	w.Towers = append(w.Towers, &component.Tower{})

	w.Reset(cfg)
	assert.Equal(t, NewWorld(cfg), w)
}
