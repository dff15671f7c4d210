// internal/app/run.go
package app

import (
	"context"
	"time"
)

// Run drives Update from a ticker until ctx is cancelled or the game is over.
// It is the headless counterpart of the ebiten loop; only Run's goroutine
// touches World.
func (g *Game) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			g.Update(now.Sub(last).Seconds())
			last = now
			if g.World.IsGameOver {
				return nil
			}
		}
	}
}
