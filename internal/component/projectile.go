// internal/component/projectile.go
package component

import (
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/types"
)

// Projectile is a purely decorative shot. Damage is applied at the moment the
// tower fires; a projectile only animates from the tower to where the target was.
type Projectile struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Position Position
	Target   Position
	Progress float64 // 0..1
	Speed    float64 // Прирост Progress за тик
	Flicker  float64 // Яркость для молнии, 0.6..1
}
