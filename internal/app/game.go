// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/entity"
	"go-cactus-defense/internal/event"
	"go-cactus-defense/internal/system"
	"go-cactus-defense/internal/utils"
)

// ErrGameOver is returned by commands that make no sense after the game ended.
var ErrGameOver = errors.New("game is over")

// Game holds the main game state and logic. Update is the only writer of
// World: call Update and the direct command methods from one goroutine, and
// use Submit from any other.
type Game struct {
	Config *config.Config
	Path   *component.Path
	World  *entity.World

	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	EconomySystem      *system.EconomySystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher

	logger *log.Logger

	queueMu sync.Mutex
	queue   []Command

	snapshot atomic.Pointer[Snapshot]
}

// NewGame initializes a new game instance. A nil logger logs to stderr.
func NewGame(cfg *config.Config, logger *log.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	path, err := cfg.PathModel()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	}

	world := entity.NewWorld(cfg)
	eventDispatcher := event.NewDispatcher()
	economy := system.NewEconomySystem(world, eventDispatcher)

	g := &Game{
		Config:             cfg,
		Path:               path,
		World:              world,
		StatusEffectSystem: system.NewStatusEffectSystem(world),
		MovementSystem:     system.NewMovementSystem(world),
		EconomySystem:      economy,
		CombatSystem:       system.NewCombatSystem(world, economy, eventDispatcher, cfg.Combat),
		WaveSystem:         system.NewWaveSystem(world, path, eventDispatcher, cfg.Waves),
		VisualEffectSystem: system.NewVisualEffectSystem(utils.NewPRNGService(cfg.Seed), eventDispatcher),
		EventDispatcher:    eventDispatcher,
		logger:             logger,
	}

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{event.WaveStarted, event.WaveEnded, event.GameOver, event.GameReset} {
		eventDispatcher.Subscribe(t, listener)
	}

	g.publish()
	return g, nil
}

// Update progresses the game state by one tick of deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	g.drainCommands()

	if g.World.IsPaused || g.World.IsGameOver {
		g.publish()
		return
	}

	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	} else if deltaTime < 0 || math.IsNaN(deltaTime) {
		deltaTime = 0
	}
	g.World.Time += time.Duration(deltaTime * float64(time.Second))
	now := g.World.Time

	// Порядок важен: эффекты и движение, затем бой, затем уход врагов и проверка жизней.
	g.StatusEffectSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update(now)
	g.EconomySystem.SweepArrivals()
	if g.EconomySystem.CheckGameOver() {
		g.publish()
		return
	}

	g.WaveSystem.Update(now)
	g.autoStartWave()
	g.VisualEffectSystem.Update()
	g.publish()
}

// autoStartWave запускает следующую волну сразу, как только спавнер свободен.
func (g *Game) autoStartWave() {
	if !g.Config.Waves.AutoStart || !g.World.WaveReady || g.World.IsGameOver {
		return
	}
	if err := g.WaveSystem.StartWave(g.World.Wave); err != nil {
		g.logger.Debug("auto start skipped", "wave", g.World.Wave, "err", err)
	}
}

// StartWave begins the enemy wave waveNumber.
func (g *Game) StartWave(waveNumber int) error {
	if g.World.IsGameOver {
		return ErrGameOver
	}
	return g.WaveSystem.StartWave(waveNumber)
}

// SetPaused suspends or resumes the simulation. Repeating the current value is a no-op.
func (g *Game) SetPaused(paused bool) {
	if g.World.IsPaused == paused {
		return
	}
	g.World.IsPaused = paused
	g.logger.Info("pause toggled", "paused", paused, "time", g.World.Time)
}

// Reset starts a fresh run with the same config. Any wave in flight is dropped.
func (g *Game) Reset() {
	g.World.Reset(g.Config)
	g.WaveSystem.Reset()
	g.VisualEffectSystem.Reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	g.publish()
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.World.IsPaused
}

// GameEventListener пишет в лог события, важные для игрока, и двигает счётчик волн.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		g.logger.Info("wave started", "wave", e.Data, "enemies", g.WaveSystem.Remaining())
	case event.WaveEnded:
		g.World.Wave++
		g.logger.Info("wave ended", "wave", e.Data, "next", g.World.Wave)
	case event.GameOver:
		g.logger.Warn("game over", "score", e.Data, "wave", g.World.Wave)
	case event.GameReset:
		g.logger.Info("game reset")
	}
}
