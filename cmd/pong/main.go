// pong is a terminal Pong game with a CPU opponent, a local versus mode and
// an SSH server for remote play.
//
// Usage:
//
//	pong list              - List available modes
//	pong play [mode]       - Play a mode (default: pong)
//	pong menu              - Pick a mode interactively
//	pong serve             - Start SSH server for remote play
//	pong scores [mode]     - Show match history for a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.pong/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "pong",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong is a terminal version of the classic game.

Play against the CPU or against a friend on the same keyboard,
or start an SSH server so others can play remotely.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View match history

Examples:
  pong play
  pong play pong_versus
  pong menu
  pong serve --ssh :2222
  pong scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags and wires the logger into the game.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("invalid --fps %d: must be between 1 and 240", flagFPS)
	}

	pong.SetLogger(logger)
	return nil
}

// addGameFlags registers the flags that tune a match.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	pong.SetConfigPath(flagConfig)
	pong.SetDifficultyPreset(flagDifficulty)
	return nil
}
