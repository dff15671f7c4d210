// internal/system/status_effect.go
package system

import (
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом эффектов: яд и замедление.
// Работает раз в тик, до движения.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update() {
	for _, enemy := range s.world.Enemies {
		if poison := &enemy.Poison; poison.Active {
			ApplyDamage(enemy, poison.DamagePerTick)
			poison.RemainingTicks--
			if poison.RemainingTicks <= 0 {
				enemy.Poison = component.PoisonEffect{}
			}
		}

		if slow := &enemy.Slow; slow.Active {
			// Пересчитываем каждый тик, чтобы новое замедление действовало сразу.
			enemy.Speed = enemy.BaseSpeed * slow.Factor
			slow.RemainingTicks--
			if slow.RemainingTicks <= 0 {
				enemy.Slow = component.SlowEffect{}
				enemy.Speed = enemy.BaseSpeed
			}
		}
	}
}
