// cmd/game/play.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-cactus-defense/internal/app"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/state"
)

var (
	flagPprof       string
	flagSkipMenu    bool
	flagManualWaves bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Start the game in a window.

Controls:
  1-5        - Select tower kind
  Left click - Place the selected tower
  Right click- Clear selection
  Space      - Start the next wave (with --manual-waves)
  P/Esc      - Pause
  R          - Restart (after game over)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPprof, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start straight in the game")
	playCmd.Flags().BoolVar(&flagManualWaves, "manual-waves", false, "Disable automatic wave start")
}

// AppGame адаптирует машину состояний к ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("play")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagManualWaves {
		cfg.Waves.AutoStart = false
	}

	if flagPprof != "" {
		go func() {
			logger.Warn("pprof server stopped", "err", http.ListenAndServe(flagPprof, nil))
		}()
	}

	g, err := app.NewGame(cfg, logger.WithPrefix("sim"))
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, g, cfg, logger)
	if flagSkipMenu {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, func() state.State { return gameState }))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cactus Defense")
	logger.Info("starting", "tokens", cfg.Economy.InitialTokens, "lives", cfg.Economy.InitialLives, "auto_start", cfg.Waves.AutoStart)
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}
