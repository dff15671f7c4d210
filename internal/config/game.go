// internal/config/game.go
package config

import (
	"time"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
)

// Config is everything the embedding application hands to the simulation.
type Config struct {
	Seed    int64                      `yaml:"seed"`
	Field   FieldConfig                `yaml:"field"`
	Path    []Point                    `yaml:"path"`
	Economy EconomyConfig              `yaml:"economy"`
	Waves   WaveConfig                 `yaml:"waves"`
	Combat  CombatConfig               `yaml:"combat"`
	Towers  map[string]defs.TowerStats `yaml:"towers"` // Ключ — имя вида башни, например WATER_CANNON
}

// FieldConfig bounds tower placement. Zero width or height disables the check.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a YAML-friendly waypoint.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EconomyConfig holds the starting balance.
type EconomyConfig struct {
	InitialTokens int `yaml:"initial_tokens"`
	InitialLives  int `yaml:"initial_lives"`
}

// WaveConfig drives the spawner timings and difficulty curve.
type WaveConfig struct {
	AutoStart bool             `yaml:"auto_start"`
	SpawnGap  time.Duration    `yaml:"spawn_gap"`
	Cooldown  time.Duration    `yaml:"cooldown"`
	Scaling   defs.WaveScaling `yaml:"scaling"`
}

// CombatConfig holds the status effect parameters applied by tower hits.
type CombatConfig struct {
	PoisonDivisor float64 `yaml:"poison_divisor"` // Урон яда за тик = урон башни / делитель
	PoisonTicks   int     `yaml:"poison_ticks"`
	SlowFactor    float64 `yaml:"slow_factor"`
	SlowTicks     int     `yaml:"slow_ticks"`
}

// Default returns the stock game: 800x600 field, 300 tokens, 10 lives.
func Default() *Config {
	towers := make(map[string]defs.TowerStats)
	for kind, stats := range defs.BaseStats() {
		towers[kind.String()] = stats
	}
	return &Config{
		Field: FieldConfig{Width: 800, Height: 600},
		Path: []Point{
			{0, 100},
			{200, 100},
			{200, 300},
			{400, 300},
			{400, 500},
			{600, 500},
			{600, 100},
			{800, 100},
		},
		Economy: EconomyConfig{InitialTokens: 300, InitialLives: 10},
		Waves: WaveConfig{
			AutoStart: true,
			SpawnGap:  time.Second,
			Cooldown:  5 * time.Second,
			Scaling:   defs.DefaultWaveScaling(),
		},
		Combat: CombatConfig{
			PoisonDivisor: 5,
			PoisonTicks:   50,
			SlowFactor:    0.5,
			SlowTicks:     30,
		},
		Towers: towers,
	}
}

// Stats looks up the base stats for kind.
func (c *Config) Stats(kind defs.TowerKind) (defs.TowerStats, bool) {
	if !kind.Valid() {
		return defs.TowerStats{}, false
	}
	s, ok := c.Towers[kind.String()]
	return s, ok
}

// PathModel builds the shared immutable path.
func (c *Config) PathModel() (*component.Path, error) {
	wps := make([]component.Position, len(c.Path))
	for i, p := range c.Path {
		wps[i] = component.Position{X: p.X, Y: p.Y}
	}
	return component.NewPath(wps)
}

// InField reports whether pos lies inside the placement bounds.
func (c *Config) InField(pos component.Position) bool {
	if !pos.IsFinite() {
		return false
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return true
	}
	return pos.X >= 0 && pos.Y >= 0 && pos.X <= c.Field.Width && pos.Y <= c.Field.Height
}
