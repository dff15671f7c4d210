// cmd/game/main.go

// cactus-defense is a tower defense game: towers shoot cacti walking along a
// fixed path, and every cactus that reaches the end costs a life.
//
// Usage:
//
//	cactus-defense play      - Open the game window
//	cactus-defense sim       - Run the simulation headless and print a summary
//	cactus-defense towers    - Show tower stats
//
// Global flags:
//
//	--config <path>     - YAML overrides for the default game
//	--seed <value>      - Seed for cosmetic randomness (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-cactus-defense/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cactus-defense",
	Short: "Cactus Defense - stop the cacti before they reach your base",
	Long: `Cactus Defense is a real-time tower defense game.

Place towers next to the path, earn tokens for every cactus destroyed and
survive as many waves as you can.

Examples:
  cactus-defense play
  cactus-defense play --config ./easy.yaml
  cactus-defense sim --ticks 3000 --place FIRE_TOWER@200,200
  cactus-defense towers`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for visual effects (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(towersCmd)
}

// newLogger строит логгер с уровнем из флага.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig читает конфиг и применяет глобальные флаги.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}
