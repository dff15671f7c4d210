// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// TowerKind is the closed set of placeable towers.
type TowerKind int

const (
	WaterCannon   TowerKind = iota // Высокая скорострельность, средний урон
	PoisonSprayer                  // Урон со временем
	FireTower                      // Большой урон, низкая скорострельность
	IceTower                       // Замедляет врагов
	LightningRod                   // Дальнобойная, только урон
)

var towerKindNames = [...]string{
	WaterCannon:   "WATER_CANNON",
	PoisonSprayer: "POISON_SPRAYER",
	FireTower:     "FIRE_TOWER",
	IceTower:      "ICE_TOWER",
	LightningRod:  "LIGHTNING_ROD",
}

// AllTowerKinds returns every tower kind in display order.
func AllTowerKinds() []TowerKind {
	return []TowerKind{WaterCannon, PoisonSprayer, FireTower, IceTower, LightningRod}
}

// Valid reports whether k is one of the known kinds.
func (k TowerKind) Valid() bool {
	return k >= WaterCannon && k <= LightningRod
}

func (k TowerKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TowerKind(%d)", int(k))
	}
	return towerKindNames[k]
}

// ErrUnknownTowerKind is returned for names and values outside the closed set.
var ErrUnknownTowerKind = errors.New("unknown tower kind")

// ParseTowerKind accepts "WATER_CANNON", "water-cannon" and "water_cannon".
func ParseTowerKind(s string) (TowerKind, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for k, n := range towerKindNames {
		if n == name {
			return TowerKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTowerKind, s)
}

// EffectKind — статус-эффект, который башня накладывает при попадании.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectPoison
	EffectSlow
)

// Effect returns the status effect a hit from this kind applies.
func (k TowerKind) Effect() EffectKind {
	switch k {
	case PoisonSprayer:
		return EffectPoison
	case IceTower:
		return EffectSlow
	default:
		return EffectNone
	}
}

// TowerStats holds the base stats for one tower kind.
type TowerStats struct {
	Damage   float64 `yaml:"damage"`
	Range    float64 `yaml:"range"`
	Cost     int     `yaml:"cost"`
	FireRate float64 `yaml:"fire_rate"` // Выстрелов в секунду
}

// Validate checks the stat invariants: damage >= 0, range > 0, cost >= 0, fire rate > 0.
func (s TowerStats) Validate() error {
	switch {
	case s.Damage < 0:
		return fmt.Errorf("damage must be >= 0, got %v", s.Damage)
	case s.Range <= 0:
		return fmt.Errorf("range must be > 0, got %v", s.Range)
	case s.Cost < 0:
		return fmt.Errorf("cost must be >= 0, got %d", s.Cost)
	case s.FireRate <= 0:
		return fmt.Errorf("fire_rate must be > 0, got %v", s.FireRate)
	}
	return nil
}

var baseTowerStats = map[TowerKind]TowerStats{
	WaterCannon:   {Damage: 15, Range: 150, Cost: 100, FireRate: 2},
	PoisonSprayer: {Damage: 5, Range: 120, Cost: 150, FireRate: 1},
	FireTower:     {Damage: 40, Range: 130, Cost: 200, FireRate: 0.5},
	IceTower:      {Damage: 10, Range: 140, Cost: 175, FireRate: 1},
	LightningRod:  {Damage: 25, Range: 160, Cost: 250, FireRate: 0.8},
}

// BaseStats returns a copy of the built-in stat table.
func BaseStats() map[TowerKind]TowerStats {
	out := make(map[TowerKind]TowerStats, len(baseTowerStats))
	for k, v := range baseTowerStats {
		out[k] = v
	}
	return out
}
