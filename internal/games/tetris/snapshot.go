package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the adapter and engine state for determinism testing and
// replay.
type Snapshot struct {
	Tick     uint64
	Paused   bool
	TooSmall bool
	engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.machine == nil {
		return Snapshot{}
	}
	return Snapshot{
		Tick:     g.tick,
		Paused:   g.paused,
		TooSmall: g.view.tooSmall,
		Snapshot: g.machine.Snapshot(),
	}
}
