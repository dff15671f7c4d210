// internal/app/snapshot.go
package app

import (
	"time"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/system"
)

// Snapshot is an immutable copy of the world taken at the end of a tick.
// Renderers and other goroutines read it without touching live state.
type Snapshot struct {
	Tokens     int
	Wave       int
	Lives      int
	Score      int
	IsGameOver bool
	IsPaused   bool
	WaveReady  bool
	WavePhase  system.WavePhase
	Time       time.Duration

	Path        []component.Position
	Towers      []component.Tower
	Enemies     []component.Enemy
	Projectiles []component.Projectile
}

// Snapshot returns the state published by the most recent tick.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot.Load()
}

func (g *Game) publish() {
	w := g.World
	s := &Snapshot{
		Tokens:      w.Tokens,
		Wave:        w.Wave,
		Lives:       w.Lives,
		Score:       w.Score,
		IsGameOver:  w.IsGameOver,
		IsPaused:    w.IsPaused,
		WaveReady:   w.WaveReady,
		WavePhase:   g.WaveSystem.Phase(),
		Time:        w.Time,
		Path:        g.Path.Waypoints(),
		Towers:      make([]component.Tower, len(w.Towers)),
		Enemies:     make([]component.Enemy, len(w.Enemies)),
		Projectiles: g.VisualEffectSystem.Projectiles(),
	}
	for i, t := range w.Towers {
		s.Towers[i] = *t
	}
	for i, e := range w.Enemies {
		s.Enemies[i] = *e
	}
	g.snapshot.Store(s)
}
