package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker menu",
	Long: `Start in interactive menu mode.

Use Up/Down to pick a mode, Left/Right to pick the start level and Enter
to play. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k      - Choose mode
  Left/Right/h/l   - Choose start level
  Enter/Space      - Play
  Tab              - Scores
  Q                - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	level := max(flagLevel, 0)
	if flagLevel < 0 {
		if loaded, err := config.LoadTetris(flagConfig); err == nil {
			level = loaded.Gameplay.StartLevel
			if start, ok := config.StartLevelForPreset(config.DifficultyPreset(flagDifficulty)); ok {
				level = start
			}
		}
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config
		level = menuResult.StartLevel

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if g, ok := game.(*tetris.Game); ok {
			g.SetStartLevel(level)
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game started", "game", menuResult.GameID, "level", level, "seed", cfg.Seed)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
