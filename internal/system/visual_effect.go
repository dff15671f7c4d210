// internal/system/visual_effect.go
package system

import (
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/event"
	"go-cactus-defense/internal/types"
	"go-cactus-defense/internal/utils"
)

const (
	projectileStep = 0.1 // Прирост прогресса снаряда за тик
	flickerMin     = 0.6
	flickerMax     = 1.0
)

// VisualEffectSystem управляет декоративными снарядами. Урон уже нанесён
// в CombatSystem, здесь только анимация для рендера.
type VisualEffectSystem struct {
	rng         *utils.PRNGService
	projectiles []*component.Projectile
	nextID      types.EntityID
}

// NewVisualEffectSystem создает новую систему визуальных эффектов и подписывает её на выстрелы.
func NewVisualEffectSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{rng: rng, nextID: 1}
	eventDispatcher.Subscribe(event.ShotFired, s)
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	shot, ok := e.Data.(event.ShotData)
	if !ok {
		return
	}
	s.projectiles = append(s.projectiles, &component.Projectile{
		ID:       s.nextID,
		Kind:     shot.Kind,
		Position: shot.From,
		Target:   shot.To,
		Speed:    projectileStep,
		Flicker:  flickerMax,
	})
	s.nextID++
}

// Update двигает снаряды к точке попадания и убирает долетевшие.
func (s *VisualEffectSystem) Update() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Progress += p.Speed
		if p.Progress >= 1 {
			continue
		}
		p.Position.X = utils.Lerp(p.Position.X, p.Target.X, p.Speed)
		p.Position.Y = utils.Lerp(p.Position.Y, p.Target.Y, p.Speed)
		if p.Kind == defs.LightningRod {
			p.Flicker = s.rng.Range(flickerMin, flickerMax)
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = kept
}

// Projectiles returns copies of the live projectiles.
func (s *VisualEffectSystem) Projectiles() []component.Projectile {
	out := make([]component.Projectile, len(s.projectiles))
	for i, p := range s.projectiles {
		out[i] = *p
	}
	return out
}

// Reset убирает все снаряды.
func (s *VisualEffectSystem) Reset() {
	s.projectiles = nil
}
