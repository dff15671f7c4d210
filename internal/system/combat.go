// internal/system/combat.go
package system

import (
	"time"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/entity"
	"go-cactus-defense/internal/event"
)

// CombatSystem управляет атакой башен. Урон наносится мгновенно в момент
// выстрела; снаряды, которые видит игрок, — только анимация.
type CombatSystem struct {
	world           *entity.World
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
	cfg             config.CombatConfig
}

func NewCombatSystem(world *entity.World, economy *EconomySystem, eventDispatcher *event.Dispatcher, cfg config.CombatConfig) *CombatSystem {
	return &CombatSystem{
		world:           world,
		economy:         economy,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// Update resolves every tower once, in placement order, at simulation time now.
func (s *CombatSystem) Update(now time.Duration) {
	// Враги, добитые ядом на этапе эффектов, засчитываются как убитые.
	for _, enemy := range s.world.RemoveEnemiesWhere(func(e *component.Enemy) bool { return !e.Alive() }) {
		s.credit(enemy)
	}

	for _, tower := range s.world.Towers {
		if !tower.Ready(now) {
			continue
		}

		target := findNearestEnemyInRange(s.world.Enemies, tower.Position, tower.Range)
		if target == nil {
			// Перезарядка не сбрасывается, если стрелять не в кого.
			continue
		}

		tower.LastShot = now
		tower.HasFired = true
		s.applyTowerEffect(tower, target)
		ApplyDamage(target, tower.Damage)

		s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{
			TowerID: tower.ID,
			Kind:    tower.Kind,
			From:    tower.Position,
			To:      target.Position,
		}})

		if !target.Alive() {
			s.world.RemoveEnemy(target.ID)
			s.credit(target)
		}
	}
}

// applyTowerEffect overwrites the target's effect of the tower's kind.
func (s *CombatSystem) applyTowerEffect(tower *component.Tower, target *component.Enemy) {
	switch tower.Kind.Effect() {
	case defs.EffectPoison:
		target.ApplyPoison(tower.Damage/s.cfg.PoisonDivisor, s.cfg.PoisonTicks)
	case defs.EffectSlow:
		target.ApplySlow(s.cfg.SlowFactor, s.cfg.SlowTicks)
	}
}

func (s *CombatSystem) credit(enemy *component.Enemy) {
	s.economy.CreditKill(enemy.Reward)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		EnemyID:  enemy.ID,
		Reward:   enemy.Reward,
		Position: enemy.Position,
	}})
}
