package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// runReporter is implemented by games that report how a run ended and what
// it cleared.
type runReporter interface {
	Outcome() engine.Outcome
	ClearStats() [engine.MaxPendingLines]int
}

// resultFor builds the stored record of a finished run.
func resultFor(game registry.Game, state core.GameState) storage.Result {
	r := storage.Result{
		GameID:  game.ID(),
		Score:   state.Score,
		Lines:   state.Lines,
		Level:   state.Level,
		Frames:  state.Frames,
		Outcome: engine.OutcomeToppedOut.String(),
	}
	if state.Cleared {
		r.Outcome = engine.OutcomeCleared.String()
	}
	if rep, ok := game.(runReporter); ok {
		r.Outcome = rep.Outcome().String()
		r.Clears = rep.ClearStats()
	}
	return r
}
