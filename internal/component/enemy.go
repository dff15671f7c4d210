// internal/component/enemy.go
package component

import (
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

// Enemy — кактус, идущий по пути к базе игрока.
type Enemy struct {
	ID        types.EntityID
	Position  Position
	Health    float64
	MaxHealth float64
	Speed     float64 // Текущая скорость (пикселей за тик), меняется замедлением
	BaseSpeed float64 // Скорость при появлении, восстанавливается после замедления
	Reward    int
	Path      *Path
	PathIndex int // Индекс последнего достигнутого вейпоинта, только растёт

	// Не больше одного эффекта каждого вида; новое наложение заменяет старое.
	Poison PoisonEffect
	Slow   SlowEffect
}

// NewEnemy places a fresh enemy on the first waypoint of path.
func NewEnemy(id types.EntityID, path *Path, stats defs.EnemyStats) *Enemy {
	return &Enemy{
		ID:        id,
		Position:  path.First(),
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Speed:     stats.Speed,
		BaseSpeed: stats.Speed,
		Reward:    stats.Reward,
		Path:      path,
	}
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// AtEnd reports whether the enemy stands on the terminal waypoint.
func (e *Enemy) AtEnd() bool { return e.PathIndex >= e.Path.Len()-1 }

// ApplyPoison replaces any active poison with a fresh one.
func (e *Enemy) ApplyPoison(damagePerTick float64, ticks int) {
	if ticks <= 0 {
		return
	}
	e.Poison = PoisonEffect{Active: true, DamagePerTick: damagePerTick, RemainingTicks: ticks}
}

// ApplySlow replaces any active slow with a fresh one.
func (e *Enemy) ApplySlow(factor float64, ticks int) {
	if ticks <= 0 || factor <= 0 || factor > 1 {
		return
	}
	e.Slow = SlowEffect{Active: true, Factor: factor, RemainingTicks: ticks}
}
