package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores or best times for a mode",
	Long: `Display the best results for the specified mode.

Marathon is ranked by score. Sprint is ranked by the time taken to clear
40 lines; unfinished sprints are not listed.

Examples:
  tetris scores tetris
  tetris scores tetris_sprint --limit 20
  tetris scores tetris --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored results for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all results for %s.\n", title)
		return nil
	}

	timed := gameID == tetris.IDSprint
	var entries []storage.ScoreEntry
	if timed {
		entries, err = store.FastestRuns(gameID, flagScoresLimit)
	} else {
		entries, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if timed {
		fmt.Printf("Best Times - %s\n", title)
	} else {
		fmt.Printf("High Scores - %s\n", title)
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first one!\n", gameID)
		return nil
	}

	if timed {
		fmt.Printf("  %-4s  %-9s  %-8s  %s\n", "Rank", "Time", "Score", "Date")
		fmt.Printf("  %-4s  %-9s  %-8s  %s\n", "----", "----", "-----", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-9s  %-8d  %s\n", i+1, formatFrames(e.Frames), e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Lines: %d  Tetrises: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines, stats.Tetrises)
	}
	return nil
}

// formatFrames renders a frame count as mm:ss.cc.
func formatFrames(frames int) string {
	secs := frames / engine.FrameRate
	cs := frames % engine.FrameRate * 100 / engine.FrameRate
	return fmt.Sprintf("%02d:%02d.%02d", secs/60, secs%60, cs)
}
