// internal/system/economy.go
package system

import (
	"errors"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/entity"
	"go-cactus-defense/internal/event"
)

// ErrInsufficientFunds is returned when a purchase costs more than the balance.
var ErrInsufficientFunds = errors.New("insufficient tokens")

// EconomySystem ведёт токены, счёт и жизни и фиксирует конец игры.
type EconomySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(world *entity.World, eventDispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{world: world, eventDispatcher: eventDispatcher}
}

// Debit takes cost from the balance, or changes nothing if it is not affordable.
func (s *EconomySystem) Debit(cost int) error {
	if cost < 0 || s.world.Tokens < cost {
		return ErrInsufficientFunds
	}
	s.world.Tokens -= cost
	return nil
}

// CreditKill pays out a kill reward as both tokens and score.
func (s *EconomySystem) CreditKill(reward int) {
	if reward <= 0 {
		return
	}
	s.world.Tokens += reward
	s.world.Score += reward
}

// SweepArrivals removes every enemy standing on the terminal waypoint and
// takes one life for each of them.
func (s *EconomySystem) SweepArrivals() int {
	arrived := s.world.RemoveEnemiesWhere(func(e *component.Enemy) bool {
		return e.AtEnd()
	})
	for _, enemy := range arrived {
		s.world.Lives--
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: enemy.ID})
	}
	return len(arrived)
}

// CheckGameOver latches IsGameOver once lives run out and reports the flag.
func (s *EconomySystem) CheckGameOver() bool {
	if !s.world.IsGameOver && s.world.Lives <= 0 {
		s.world.IsGameOver = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.world.Score})
	}
	return s.world.IsGameOver
}
