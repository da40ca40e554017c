package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show match history for a mode",
	Long: `Display the most recent matches and totals for a mode (pong when omitted).

Examples:
  pong scores
  pong scores pong_versus --limit 20
  pong scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored history of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "pong"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'pong list' to see available modes", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared history of %s.\n", game.Title())
		return nil
	}

	matches, err := store.RecentMatches(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Matches - %s\n\n", game.Title())

	if len(matches) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'pong play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-6s  %-7s  %-7s  %s\n", "Score", "Winner", "Rallies", "Longest", "Date")
	fmt.Fprintf(out, "  %-5s  %-6s  %-7s  %-7s  %s\n", "-----", "------", "-------", "-------", "----")
	for _, m := range matches {
		fmt.Fprintf(out, "  %-5s  %-6s  %-7d  %-7d  %s\n",
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			winnerLabel(gameID, m.Winner),
			m.Rallies, m.LongestRally,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Played %d, won %d, lost %d. Longest rally: %d hits.\n",
		stats.Matches, stats.Wins, stats.Losses, stats.LongestRally)

	if best, err := store.HighScore(gameID); err == nil && best > 0 {
		fmt.Fprintf(out, "Most points in a match: %d\n", best)
	}
	return nil
}

func winnerLabel(gameID string, winner int) string {
	switch {
	case winner == 1:
		return "P1"
	case winner == 2 && gameID == "pong_versus":
		return "P2"
	case winner == 2:
		return "CPU"
	default:
		return "-"
	}
}
