// internal/entity/world.go
package entity

import (
	"time"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/types"
)

// World — единственное изменяемое состояние игры. Писать в него может только
// тот, кто ведёт тики (app.Game); все остальные читают снимки.
type World struct {
	Tokens int
	Wave   int
	Lives  int
	Score  int

	Towers  []*component.Tower
	Enemies []*component.Enemy // Порядок появления, важен для выбора цели при равных дистанциях

	IsGameOver bool
	IsPaused   bool
	WaveReady  bool

	Time   time.Duration // Время симуляции, идёт только пока игра не на паузе
	NextID types.EntityID
}

// NewWorld creates the initial state for cfg.
func NewWorld(cfg *config.Config) *World {
	w := &World{}
	w.Reset(cfg)
	return w
}

// Reset restores every field to its start-of-game value.
func (w *World) Reset(cfg *config.Config) {
	*w = World{
		Tokens:    cfg.Economy.InitialTokens,
		Wave:      1,
		Lives:     cfg.Economy.InitialLives,
		WaveReady: true,
		NextID:    1,
	}
}

// NewEntity allocates the next id.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy appends e, keeping spawn order.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// RemoveEnemy deletes the enemy with id, keeping the order of the rest.
func (w *World) RemoveEnemy(id types.EntityID) bool {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEnemiesWhere drops every enemy matching pred and returns them in order.
func (w *World) RemoveEnemiesWhere(pred func(*component.Enemy) bool) []*component.Enemy {
	var removed []*component.Enemy
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if pred(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённых врагов.
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return removed
}

// Enemy returns the enemy with id, if present.
func (w *World) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}
