// internal/app/tower_management.go
package app

import (
	"errors"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/event"
	"go-cactus-defense/internal/types"
)

// ErrOutOfBounds is returned for positions outside the field or not finite.
var ErrOutOfBounds = errors.New("position outside the field")

// PlaceTower buys a tower of kind at pos. On any error nothing changes.
func (g *Game) PlaceTower(kind defs.TowerKind, pos component.Position) (types.EntityID, error) {
	if g.World.IsGameOver {
		return 0, ErrGameOver
	}
	stats, ok := g.Config.Stats(kind)
	if !ok {
		return 0, defs.ErrUnknownTowerKind
	}
	if !g.Config.InField(pos) {
		return 0, ErrOutOfBounds
	}
	if err := g.EconomySystem.Debit(stats.Cost); err != nil {
		return 0, err
	}

	tower := component.NewTower(g.World.NewEntity(), kind, pos, stats)
	g.World.Towers = append(g.World.Towers, tower)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower.ID})
	g.logger.Debug("tower placed", "id", tower.ID, "kind", kind, "x", pos.X, "y", pos.Y, "tokens", g.World.Tokens)
	return tower.ID, nil
}

// CanAfford reports whether the current balance covers a tower of kind.
func (g *Game) CanAfford(kind defs.TowerKind) bool {
	stats, ok := g.Config.Stats(kind)
	return ok && g.World.Tokens >= stats.Cost
}

// GetTowerAt возвращает башню, в круг которой попадает pos, если она существует.
func (g *Game) GetTowerAt(pos component.Position, radius float64) (*component.Tower, bool) {
	for _, tower := range g.World.Towers {
		if tower.Position.DistanceTo(pos) <= radius {
			return tower, true
		}
	}
	return nil, false
}
