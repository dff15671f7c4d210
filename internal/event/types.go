// internal/event/types.go
package event

import (
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

const (
	WaveStarted  EventType = "WaveStarted"  // Data: int — номер волны
	WaveEnded    EventType = "WaveEnded"    // Data: int — номер завершённой волны
	EnemySpawned EventType = "EnemySpawned" // Data: types.EntityID
	EnemyKilled  EventType = "EnemyKilled"  // Data: EnemyKilledData
	EnemyLeaked  EventType = "EnemyLeaked"  // Data: types.EntityID — враг дошёл до конца пути
	ShotFired    EventType = "ShotFired"    // Data: ShotData
	TowerPlaced  EventType = "TowerPlaced"  // Data: types.EntityID
	GameOver     EventType = "GameOver"     // Data: int — итоговый счёт
	GameReset    EventType = "GameReset"
)

// EnemyKilledData describes a kill credited to the player.
type EnemyKilledData struct {
	EnemyID  types.EntityID
	Reward   int
	Position component.Position
}

// ShotData describes one tower shot at the instant it lands.
type ShotData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	From    component.Position
	To      component.Position
}
