package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (pong when omitted).

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle in pong_versus, left paddle against the CPU
  P          - Pause
  Esc/B      - Pause, or leave a paused or finished game
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start and taller paddles, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with shorter paddles
  fixed  - No progression, stays at config's initial level

Examples:
  pong play
  pong play pong_versus
  pong play --difficulty hard
  pong play --config ./my-pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "pong"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'pong list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	defer closeStore(store)

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
