package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/event"
	"go-cactus-defense/internal/utils"
)

func shot(kind defs.TowerKind) event.Event {
	return event.Event{Type: event.ShotFired, Data: event.ShotData{
		Kind: kind,
		From: component.Position{X: 0, Y: 0},
		To:   component.Position{X: 100, Y: 0},
	}}
}

func TestProjectileFliesTowardTargetAndExpires(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(utils.NewPRNGService(1), d)

	d.Dispatch(shot(defs.WaterCannon))
	require.Len(t, s.Projectiles(), 1)

	s.Update()
	p := s.Projectiles()[0]
	assert.InDelta(t, 10.0, p.Position.X, 1e-9)
	assert.InDelta(t, 0.1, p.Progress, 1e-9)

	for i := 0; i < 12; i++ {
		s.Update()
	}
	assert.Empty(t, s.Projectiles())
}

func TestLightningFlicker(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(utils.NewPRNGService(7), d)
	d.Dispatch(shot(defs.LightningRod))

	for i := 0; i < 5; i++ {
		s.Update()
		for _, p := range s.Projectiles() {
			assert.GreaterOrEqual(t, p.Flicker, 0.6)
			assert.Less(t, p.Flicker, 1.0)
		}
	}
}

func TestProjectilesAreCopies(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(utils.NewPRNGService(1), d)
	d.Dispatch(shot(defs.FireTower))

	ps := s.Projectiles()
	ps[0].Position.X = 500
	assert.Zero(t, s.Projectiles()[0].Position.X)

	s.Reset()
	assert.Empty(t, s.Projectiles())
}
