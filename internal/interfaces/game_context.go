// internal/interfaces/game_context.go
package interfaces

import (
	"go-cactus-defense/internal/app"
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

// GameContext — то, что фронтенду нужно от симуляции.
type GameContext interface {
	Update(deltaTime float64)
	Submit(cmd app.Command)
	Snapshot() *app.Snapshot
	PlaceTower(kind defs.TowerKind, pos component.Position) (types.EntityID, error)
	CanAfford(kind defs.TowerKind) bool
	SetPaused(paused bool)
}

var _ GameContext = (*app.Game)(nil)
