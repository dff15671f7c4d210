// cmd/game/towers.go
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go-cactus-defense/internal/defs"
)

var towersCmd = &cobra.Command{
	Use:   "towers",
	Short: "Show tower stats",
	Long:  `Prints the stats of every tower kind after applying --config.`,
	Args:  cobra.NoArgs,
	RunE:  runTowers,
}

func runTowers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%-16s %7s %6s %5s %10s  %s", "KIND", "DAMAGE", "RANGE", "COST", "SHOTS/SEC", "EFFECT")
	lines := []string{header}
	for _, kind := range defs.AllTowerKinds() {
		s, ok := cfg.Stats(kind)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-16s %7.1f %6.0f %5d %10.2f  %s", kind, s.Damage, s.Range, s.Cost, s.FireRate, effectName(kind.Effect())))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	}

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fmt.Println(headStyle.Render(lines[0]))
	for _, l := range lines[1:] {
		fmt.Println(l)
	}
	return nil
}

func effectName(e defs.EffectKind) string {
	switch e {
	case defs.EffectPoison:
		return "poison"
	case defs.EffectSlow:
		return "slow"
	default:
		return "-"
	}
}
