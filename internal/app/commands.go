// internal/app/commands.go
package app

import (
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/defs"
)

// Command is a player request applied at the start of the next Update.
type Command interface {
	apply(g *Game) error
}

// PlaceTowerCmd buys a tower.
type PlaceTowerCmd struct {
	Kind     defs.TowerKind
	Position component.Position
}

func (c PlaceTowerCmd) apply(g *Game) error {
	_, err := g.PlaceTower(c.Kind, c.Position)
	return err
}

// StartWaveCmd starts the given wave.
type StartWaveCmd struct {
	Wave int
}

func (c StartWaveCmd) apply(g *Game) error {
	return g.StartWave(c.Wave)
}

// SetPausedCmd pauses or resumes.
type SetPausedCmd struct {
	Paused bool
}

func (c SetPausedCmd) apply(g *Game) error {
	g.SetPaused(c.Paused)
	return nil
}

// ResetCmd restarts the run.
type ResetCmd struct{}

func (ResetCmd) apply(g *Game) error {
	g.Reset()
	return nil
}

// Submit queues cmd for the next tick. Safe for concurrent use.
func (g *Game) Submit(cmd Command) {
	g.queueMu.Lock()
	g.queue = append(g.queue, cmd)
	g.queueMu.Unlock()
}

// drainCommands applies queued commands in arrival order. Rejected commands
// leave state untouched and are only logged.
func (g *Game) drainCommands() {
	g.queueMu.Lock()
	pending := g.queue
	g.queue = nil
	g.queueMu.Unlock()

	for _, cmd := range pending {
		if err := cmd.apply(g); err != nil {
			g.logger.Debug("command rejected", "cmd", cmd, "err", err)
		}
	}
}
