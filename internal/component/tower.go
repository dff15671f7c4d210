// internal/component/tower.go
package component

import (
	"time"

	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

// Tower is immutable after placement except for its shot bookkeeping.
type Tower struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Position Position
	Damage   float64
	Range    float64
	Cost     int
	FireRate float64 // Выстрелов в секунду

	LastShot time.Duration // Время симуляции последнего выстрела
	HasFired bool
}

// NewTower builds a tower from its kind's base stats.
func NewTower(id types.EntityID, kind defs.TowerKind, pos Position, stats defs.TowerStats) *Tower {
	return &Tower{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Damage:   stats.Damage,
		Range:    stats.Range,
		Cost:     stats.Cost,
		FireRate: stats.FireRate,
	}
}

// Cooldown is the minimum interval between two shots.
func (t *Tower) Cooldown() time.Duration {
	return time.Duration(float64(time.Second) / t.FireRate)
}

// Ready reports whether the tower may fire at simulation time now.
func (t *Tower) Ready(now time.Duration) bool {
	return !t.HasFired || now-t.LastShot >= t.Cooldown()
}
