package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTowerKind(t *testing.T) {
	for _, kind := range AllTowerKinds() {
		got, err := ParseTowerKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseTowerKind("lightning-rod")
	require.NoError(t, err)
	assert.Equal(t, LightningRod, got)

	_, err = ParseTowerKind("CATAPULT")
	assert.ErrorIs(t, err, ErrUnknownTowerKind)
}

func TestTowerKindEffect(t *testing.T) {
	assert.Equal(t, EffectPoison, PoisonSprayer.Effect())
	assert.Equal(t, EffectSlow, IceTower.Effect())
	assert.Equal(t, EffectNone, WaterCannon.Effect())
	assert.Equal(t, EffectNone, FireTower.Effect())
	assert.Equal(t, EffectNone, LightningRod.Effect())
}

func TestBaseStatsAreValidCopies(t *testing.T) {
	stats := BaseStats()
	require.Len(t, stats, len(AllTowerKinds()))
	for kind, s := range stats {
		assert.NoError(t, s.Validate(), kind.String())
	}

	stats[WaterCannon] = TowerStats{}
	assert.Equal(t, 100, BaseStats()[WaterCannon].Cost)
}

func TestTowerStatsValidate(t *testing.T) {
	assert.Error(t, TowerStats{Damage: -1, Range: 1, FireRate: 1}.Validate())
	assert.Error(t, TowerStats{Range: 0, FireRate: 1}.Validate())
	assert.Error(t, TowerStats{Range: 1, Cost: -5, FireRate: 1}.Validate())
	assert.Error(t, TowerStats{Range: 1, FireRate: 0}.Validate())
	assert.NoError(t, TowerStats{Range: 1, FireRate: 0.1}.Validate())
}

func TestWaveScalingEnemyCount(t *testing.T) {
	w := DefaultWaveScaling()
	assert.Equal(t, 6, w.EnemyCount(1))
	assert.Equal(t, 8, w.EnemyCount(2))
	assert.Equal(t, 9, w.EnemyCount(3))
	assert.Equal(t, 20, w.EnemyCount(10))
}

func TestWaveScalingEnemyStats(t *testing.T) {
	w := DefaultWaveScaling()

	first := w.EnemyStats(1)
	assert.Equal(t, 100.0, first.Health)
	assert.Equal(t, 0.5, first.Speed)
	assert.Equal(t, 25, first.Reward)

	third := w.EnemyStats(3)
	assert.InDelta(t, 140.0, third.Health, 1e-9)
	assert.InDelta(t, 0.55, third.Speed, 1e-9)
	assert.Equal(t, 32, third.Reward)
}

func TestWaveScalingValidate(t *testing.T) {
	require.NoError(t, DefaultWaveScaling().Validate())

	w := DefaultWaveScaling()
	w.BaseSpeed = -3
	w.BaseHealth = -10
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_speed")
	assert.Contains(t, err.Error(), "base_health")

	w = DefaultWaveScaling()
	w.CountBase, w.CountGrowth = 0, 1
	assert.NoError(t, w.Validate())
	w.RewardGrowth = -0.01
	assert.Error(t, w.Validate())
}
