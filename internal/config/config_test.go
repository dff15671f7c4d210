package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 300, cfg.Economy.InitialTokens)
	assert.Equal(t, 10, cfg.Economy.InitialLives)
	assert.Len(t, cfg.Path, 8)

	stats, ok := cfg.Stats(defs.FireTower)
	require.True(t, ok)
	assert.Equal(t, 200, stats.Cost)

	_, ok = cfg.Stats(defs.TowerKind(99))
	assert.False(t, ok)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := `
economy:
  initial_tokens: 1000
waves:
  spawn_gap: 500ms
towers:
  ICE_TOWER:
    damage: 1
    range: 50
    cost: 10
    fire_rate: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Economy.InitialTokens)
	assert.Equal(t, 10, cfg.Economy.InitialLives)
	assert.Equal(t, 500*time.Millisecond, cfg.Waves.SpawnGap)
	assert.Equal(t, 5*time.Second, cfg.Waves.Cooldown)

	ice, _ := cfg.Stats(defs.IceTower)
	assert.Equal(t, 10, ice.Cost)
	water, _ := cfg.Stats(defs.WaterCannon)
	assert.Equal(t, 100, water.Cost)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := `
path:
  - {x: 0, y: 0}
economy:
  initial_lives: 0
towers:
  CATAPULT: {damage: 1, range: 1, cost: 1, fire_rate: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, component.ErrPathTooShort)
	assert.ErrorIs(t, err, defs.ErrUnknownTowerKind)
	assert.Contains(t, err.Error(), "initial_lives")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInField(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.InField(component.Position{X: 400, Y: 300}))
	assert.True(t, cfg.InField(component.Position{X: 800, Y: 600}))
	assert.False(t, cfg.InField(component.Position{X: -1, Y: 10}))
	assert.False(t, cfg.InField(component.Position{X: 10, Y: 601}))
	assert.False(t, cfg.InField(component.Position{X: math.Inf(1), Y: 0}))

	cfg.Field = FieldConfig{}
	assert.True(t, cfg.InField(component.Position{X: 5000, Y: -30}))
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadNormalizesTowerKeys(t *testing.T) {
	path := writeConfig(t, `
towers:
  fire-tower: {damage: 99, range: 10, cost: 1, fire_rate: 1}
  ice_tower: {damage: 2, range: 20, cost: 3, fire_rate: 4}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	fire, ok := cfg.Stats(defs.FireTower)
	require.True(t, ok)
	assert.Equal(t, defs.TowerStats{Damage: 99, Range: 10, Cost: 1, FireRate: 1}, fire)
	ice, _ := cfg.Stats(defs.IceTower)
	assert.Equal(t, 3, ice.Cost)

	assert.NotContains(t, cfg.Towers, "fire-tower")
	assert.NotContains(t, cfg.Towers, "ice_tower")
	assert.Len(t, cfg.Towers, len(defs.AllTowerKinds()))
}

func TestLoadRejectsTwoSpellingsOfOneKind(t *testing.T) {
	path := writeConfig(t, `
towers:
  fire-tower: {damage: 1, range: 1, cost: 1, fire_rate: 1}
  FIRE_TOWER: {damage: 2, range: 1, cost: 1, fire_rate: 1}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both configure FIRE_TOWER")
}

func TestValidateRejectsNonCanonicalTowerKey(t *testing.T) {
	cfg := Default()
	cfg.Towers["water-cannon"] = defs.TowerStats{Damage: 1, Range: 1, FireRate: 1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"water-cannon"`)
}

func TestLoadRejectsBadWaveScaling(t *testing.T) {
	cases := map[string]string{
		"base_speed":   "waves: {scaling: {base_speed: -3}}",
		"base_health":  "waves: {scaling: {base_health: -10}}",
		"base_reward":  "waves: {scaling: {base_reward: -1}}",
		"count_base":   "waves: {scaling: {count_base: 0, count_growth: 0.5}}",
		"growth rates": "waves: {scaling: {speed_growth: -0.1}}",
	}
	for want, data := range cases {
		t.Run(want, func(t *testing.T) {
			_, err := Load(writeConfig(t, data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "waves.scaling")
			assert.Contains(t, err.Error(), want)
		})
	}
}
