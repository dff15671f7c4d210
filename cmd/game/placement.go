// cmd/game/placement.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
)

// placement — одна башня из флага --place в форме KIND@X,Y.
type placement struct {
	Kind     defs.TowerKind
	Position component.Position
}

func parsePlacement(s string) (placement, error) {
	kindPart, posPart, ok := strings.Cut(s, "@")
	if !ok {
		return placement{}, fmt.Errorf("placement %q: want KIND@X,Y", s)
	}
	kind, err := defs.ParseTowerKind(kindPart)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: %w", s, err)
	}
	xs, ys, ok := strings.Cut(posPart, ",")
	if !ok {
		return placement{}, fmt.Errorf("placement %q: want KIND@X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad y: %w", s, err)
	}
	return placement{Kind: kind, Position: component.Position{X: x, Y: y}}, nil
}
