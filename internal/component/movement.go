// internal/component/movement.go
package component

import (
	"errors"
	"fmt"

	"go-cactus-defense/pkg/utils"
)

// Position — координаты в пикселях игрового поля.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to o.
func (p Position) DistanceTo(o Position) float64 {
	return utils.Distance(p.X, p.Y, o.X, o.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Position) IsFinite() bool {
	return utils.IsFinite(p.X) && utils.IsFinite(p.Y)
}

// ErrPathTooShort is returned when a path has fewer than two waypoints.
var ErrPathTooShort = errors.New("path needs at least 2 waypoints")

// Path is the immutable route every enemy follows. One Path is shared by
// pointer between all enemies of a run; nothing mutates it after NewPath.
type Path struct {
	waypoints []Position
}

// NewPath copies the waypoints and validates them.
func NewPath(waypoints []Position) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, ErrPathTooShort
	}
	for i, wp := range waypoints {
		if !wp.IsFinite() {
			return nil, fmt.Errorf("waypoint %d is not finite: %v", i, wp)
		}
	}
	cp := make([]Position, len(waypoints))
	copy(cp, waypoints)
	return &Path{waypoints: cp}, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int { return len(p.waypoints) }

// At returns waypoint i.
func (p *Path) At(i int) Position { return p.waypoints[i] }

// First returns the spawn waypoint.
func (p *Path) First() Position { return p.waypoints[0] }

// Last returns the terminal waypoint.
func (p *Path) Last() Position { return p.waypoints[len(p.waypoints)-1] }

// Waypoints returns a copy of the route.
func (p *Path) Waypoints() []Position {
	cp := make([]Position, len(p.waypoints))
	copy(cp, p.waypoints)
	return cp
}
