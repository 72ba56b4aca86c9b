// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start menu to pick a mode and start level
//	tetris list              - List available modes
//	tetris play <mode>       - Play a mode directly
//	tetris menu              - Start menu to pick a mode and start level
//	tetris serve             - Start SSH server for remote play
//	tetris scores <mode>     - Show high scores or best sprint times
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Path to custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--level <n>           - Start level 0-29
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured in the root command's pre-run hook.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Modes:
  tetris         - Marathon: play until the stack reaches the top
  tetris_sprint  - Sprint 40: clear 40 lines as fast as possible

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View high scores and best times

Examples:
  tetris
  tetris play tetris --level 9
  tetris play tetris_sprint
  tetris serve --ssh :2222
  tetris scores tetris_sprint`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", -1, "Start level 0-29 (overrides config and difficulty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags, builds the logger and passes the game
// settings on to the tetris package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagLevel > config.MaxStartLevel {
		return fmt.Errorf("--level must be at most %d, got %d", config.MaxStartLevel, flagLevel)
	}

	l, closer, err := newLogger(cmd == serveCmd)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	tetris.SetLogger(logger)
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	tetris.SetStartLevel(flagLevel)
	return nil
}

// newLogger writes to --log-file when set. Otherwise the server logs to
// stderr and the interactive commands, which own the terminal, discard logs.
func newLogger(toStderr bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	case toStderr:
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), closer, nil
}
