// internal/component/status_effect.go
package component

// PoisonEffect deals DamagePerTick every tick while Active.
type PoisonEffect struct {
	Active         bool
	DamagePerTick  float64
	RemainingTicks int
}

// SlowEffect scales the enemy's base speed by Factor while Active.
type SlowEffect struct {
	Active         bool
	Factor         float64 // (0, 1]
	RemainingTicks int
}
