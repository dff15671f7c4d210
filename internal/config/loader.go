// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-cactus-defense/internal/defs"
)

// Load reads a YAML file and overlays it on Default(). An empty path returns
// the defaults. Tower entries replace the whole stat block of that kind.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var overlay struct {
		Towers map[string]defs.TowerStats `yaml:"towers"`
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.normalizeTowers(overlay.Towers); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// normalizeTowers rewrites the tower keys the file spelled loosely
// ("fire-tower", "ice_tower") to their canonical names. Two spellings of one
// kind in the same file are rejected.
func (c *Config) normalizeTowers(fromFile map[string]defs.TowerStats) error {
	seen := make(map[defs.TowerKind]string, len(fromFile))
	for name := range fromFile {
		kind, err := defs.ParseTowerKind(name)
		if err != nil {
			// Неизвестный вид сообщит Validate.
			continue
		}
		if prev, ok := seen[kind]; ok {
			return fmt.Errorf("towers: %q and %q both configure %s", prev, name, kind)
		}
		seen[kind] = name
	}
	for kind, name := range seen {
		if name == kind.String() {
			continue
		}
		c.Towers[kind.String()] = c.Towers[name]
		delete(c.Towers, name)
	}
	return nil
}

// Validate checks every invariant the simulation relies on.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.PathModel(); err != nil {
		errs = append(errs, fmt.Errorf("path: %w", err))
	}
	if c.Economy.InitialTokens < 0 {
		errs = append(errs, fmt.Errorf("economy.initial_tokens must be >= 0"))
	}
	if c.Economy.InitialLives <= 0 {
		errs = append(errs, fmt.Errorf("economy.initial_lives must be > 0"))
	}
	if c.Waves.SpawnGap < 0 || c.Waves.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("waves: spawn_gap and cooldown must be >= 0"))
	}
	if err := c.Waves.Scaling.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("waves.scaling: %w", err))
	}
	if c.Combat.PoisonDivisor <= 0 {
		errs = append(errs, fmt.Errorf("combat.poison_divisor must be > 0"))
	}
	if c.Combat.SlowFactor <= 0 || c.Combat.SlowFactor > 1 {
		errs = append(errs, fmt.Errorf("combat.slow_factor must be in (0, 1]"))
	}
	if c.Combat.PoisonTicks <= 0 || c.Combat.SlowTicks <= 0 {
		errs = append(errs, fmt.Errorf("combat: effect durations must be > 0"))
	}

	for name, stats := range c.Towers {
		kind, err := defs.ParseTowerKind(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("towers: %w", err))
			continue
		}
		if name != kind.String() {
			// Stats ищет только по каноническому имени.
			errs = append(errs, fmt.Errorf("towers: key %q must be spelled %s", name, kind))
			continue
		}
		if err := stats.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("towers.%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
