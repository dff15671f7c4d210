// internal/system/movement.go
package system

import "go-cactus-defense/internal/entity"

// MovementSystem продвигает врагов по пути, один шаг за тик.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive() || enemy.AtEnd() {
			// Дошедших до конца убирает EconomySystem.SweepArrivals.
			continue
		}

		next := enemy.Path.At(enemy.PathIndex + 1)
		dx := next.X - enemy.Position.X
		dy := next.Y - enemy.Position.Y
		dist := enemy.Position.DistanceTo(next)

		// Остаток шага на углу отбрасывается, а не переносится на следующий отрезок.
		if dist == 0 || dist < enemy.Speed {
			enemy.Position = next
			enemy.PathIndex++
			continue
		}

		enemy.Position.X += dx / dist * enemy.Speed
		enemy.Position.Y += dy / dist * enemy.Speed
	}
}
