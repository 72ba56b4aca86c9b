// Package tetris adapts the falling-block engine to the platform's Game
// interface: it turns input frames into engine events, one Timeout per tick,
// and draws the engine's display fragments onto a core.Screen.
package tetris

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Registered game IDs.
const (
	IDMarathon = "tetris"
	IDSprint   = "tetris_sprint"
)

// actionOrder is the order in which one frame's actions become engine events.
// Hold goes first so the swapped-in piece receives the rest of the frame.
var actionOrder = []struct {
	action core.Action
	event  engine.Event
}{
	{core.ActionHold, engine.EventHold},
	{core.ActionRotate, engine.EventRotate},
	{core.ActionLeft, engine.EventMoveLeft},
	{core.ActionRight, engine.EventMoveRight},
	{core.ActionDown, engine.EventMoveDown},
	{core.ActionHardDrop, engine.EventHardDrop},
}

// Game implements registry.Game on top of engine.Machine.
type Game struct {
	mode    engine.Mode
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	machine *engine.Machine
	view    *screenSink
	log     *log.Logger

	startLevel int // -1 uses the package setting
	tick       uint64
	paused     bool
	exited     bool
	phase      engine.Phase
	announced  bool // game over logged
}

// Settings chosen on the command line or in a menu before a game is created.
// They apply to every game created afterwards.
var (
	settingsMu         sync.Mutex
	configPath         string
	difficultyPreset   string
	selectedStartLevel = -1
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the YAML config file used by Reset.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset selects easy, normal or hard. Empty keeps the config's.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetStartLevel overrides the configured start level. Negative clears it.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a marathon game.
func New() *Game {
	return newGame(engine.ModeMarathon)
}

// NewSprint creates a 40-line sprint game.
func NewSprint() *Game {
	return newGame(engine.ModeSprint)
}

func newGame(mode engine.Mode) *Game {
	settingsMu.Lock()
	l := logger
	settingsMu.Unlock()
	return &Game{
		mode:       mode,
		log:        l.WithPrefix(idFor(mode)),
		view:       newScreenSink(),
		startLevel: -1,
	}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDSprint, func() registry.Game {
		return NewSprint()
	})
}

func idFor(mode engine.Mode) string {
	if mode == engine.ModeSprint {
		return IDSprint
	}
	return IDMarathon
}

// IDForMode returns the registry ID of the variant playing mode.
func IDForMode(mode string) string {
	if mode == config.ModeSprint {
		return IDSprint
	}
	return IDMarathon
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return idFor(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeSprint {
		return "Tetris (Sprint 40)"
	}
	return "Tetris (Marathon)"
}

// Mode returns the engine mode of this variant.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settingsMu.Lock()
	path, preset, start := configPath, difficultyPreset, selectedStartLevel
	settingsMu.Unlock()
	if g.startLevel >= 0 {
		start = g.startLevel
	}

	cfg, err := config.LoadTetris(path)
	if err != nil {
		g.log.Warn("using default config", "path", path, "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	if p, err := config.ParsePreset(preset); err != nil {
		g.log.Warn("ignoring difficulty preset", "preset", preset, "err", err)
	} else if p != config.DifficultyNone {
		config.ApplyPreset(&cfg, p)
	}
	if start >= 0 {
		cfg.Gameplay.StartLevel = core.Clamp(start, 0, config.MaxStartLevel)
	}

	g.cfg = cfg
	g.runtime = runtime
	g.machine = engine.New(engine.Config{
		StartLevel: cfg.Gameplay.StartLevel,
		Ghost:      cfg.Gameplay.Ghost,
		Preview:    cfg.Gameplay.Preview,
		Mode:       g.mode,
	}, rand.New(rand.NewSource(runtime.Seed)))
	g.view = newScreenSink()
	g.view.resize(runtime.ScreenW, runtime.ScreenH)
	g.tick = 0
	g.paused = false
	g.exited = false
	g.announced = false
	g.phase = g.machine.Phase()
	g.machine.ShowAll(g.view)

	g.log.Debug("new game",
		"seed", runtime.Seed,
		"start_level", cfg.Gameplay.StartLevel,
		"preview", cfg.Gameplay.Preview,
		"ghost", cfg.Gameplay.Ghost)
}

// SetStartLevel overrides the start level for this game only, taking
// precedence over the package setting. Negative clears it.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.view.resize(width, height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionQuit) && !g.exited {
		g.exited = true
		g.machine.Feed(engine.EventExit)
		g.afterEvents()
		return core.StepResult{State: g.State(), Exit: true}
	}
	if g.machine.Finished() {
		return core.StepResult{State: g.State(), Exit: g.exited}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.log.Debug("pause", "paused", g.paused)
	}
	if g.paused || g.view.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, m := range actionOrder {
		for i := in.Count(m.action); i > 0; i-- {
			g.machine.Feed(m.event)
		}
	}
	g.machine.Feed(engine.EventTimeout)
	g.afterEvents()

	return core.StepResult{State: g.State()}
}

// afterEvents pulls changed fragments into the view and logs phase changes.
func (g *Game) afterEvents() {
	g.machine.Show(g.view)

	if p := g.machine.Phase(); p != g.phase {
		g.log.Debug("phase", "from", g.phase, "to", p, "tick", g.tick)
		g.phase = p
	}
	if g.machine.Finished() && !g.announced {
		g.announced = true
		s := g.view.score
		g.log.Info("game over",
			"outcome", g.machine.Outcome(),
			"score", s.Score,
			"lines", s.Lines,
			"level", s.Level,
			"frames", g.machine.Frames())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	s := g.view.score
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		Frames:   g.machine.Frames(),
		GameOver: g.machine.Finished(),
		Cleared:  g.machine.Outcome() == engine.OutcomeCleared,
		Paused:   g.paused,
	}
}

// Outcome returns how the game ended.
func (g *Game) Outcome() engine.Outcome {
	if g.machine == nil {
		return engine.OutcomeNone
	}
	return g.machine.Outcome()
}

// ClearStats returns how many singles, doubles, triples and tetrises were cleared.
func (g *Game) ClearStats() [engine.MaxPendingLines]int {
	return g.view.score.Stats
}
