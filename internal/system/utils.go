// internal/system/utils.go
package system

import (
	"math"

	"go-cactus-defense/internal/component"
)

// ApplyDamage снимает здоровье с врага. Отрицательный урон игнорируется,
// поэтому здоровье между попаданиями только убывает.
func ApplyDamage(enemy *component.Enemy, damage float64) {
	if damage <= 0 {
		return
	}
	enemy.Health -= damage
}

// findNearestEnemyInRange returns the closest living enemy within rangeRadius of
// pos. Equal distances keep the enemy seen first, i.e. the earliest spawned.
func findNearestEnemyInRange(enemies []*component.Enemy, pos component.Position, rangeRadius float64) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	for _, enemy := range enemies {
		if !enemy.Alive() {
			continue
		}
		distance := pos.DistanceTo(enemy.Position)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = enemy
		}
	}
	return nearest
}
