package engine

import (
	"errors"
	"math/rand"
)

// Phase is a state of the game loop.
type Phase uint8

const (
	// PhaseCompletion clears pending rows, scores them and spawns the next piece.
	PhaseCompletion Phase = iota
	PhaseFalling
	PhaseLocked
	// PhasePattern locks the piece and looks for filled rows.
	PhasePattern
	// PhaseAnimation flashes the filled rows before they are removed.
	PhaseAnimation
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCompletion:
		return "completion"
	case PhaseFalling:
		return "falling"
	case PhaseLocked:
		return "locked"
	case PhasePattern:
		return "pattern"
	case PhaseAnimation:
		return "animation"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single input to the machine.
type Event uint8

const (
	// EventNone drives a self-scheduled transition; it carries no input.
	EventNone Event = iota
	EventTimeout
	EventMoveLeft
	EventMoveRight
	EventMoveDown
	EventRotate
	EventHardDrop
	EventHold
	EventExit
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventTimeout:
		return "timeout"
	case EventMoveLeft:
		return "left"
	case EventMoveRight:
		return "right"
	case EventMoveDown:
		return "down"
	case EventRotate:
		return "rotate"
	case EventHardDrop:
		return "hard_drop"
	case EventHold:
		return "hold"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Outcome tells how a game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// OutcomeCleared means the mode's goal was reached.
	OutcomeCleared
	// OutcomeToppedOut means a new piece could not spawn.
	OutcomeToppedOut
	// OutcomeExited means the player quit.
	OutcomeExited
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeToppedOut:
		return "topped_out"
	case OutcomeExited:
		return "exited"
	default:
		return "none"
	}
}

// AnimationFrames is the length of the line clear flash.
const AnimationFrames = FrameRate

// MaxChain bounds how many self-scheduled steps Feed runs for one event.
const MaxChain = 8

// Config is the construction-time game setup.
type Config struct {
	StartLevel int
	Ghost      bool
	Preview    int
	Mode       Mode
}

// Machine is the game state machine. It owns every component and is driven
// one event at a time by a single caller.
type Machine struct {
	cfg      Config
	grid     *Grid
	ctrl     *Controller
	queue    *Queue
	lines    LineBuffer
	fall     Fall
	score    *Score
	playtime Playtime

	phase     Phase
	outcome   Outcome
	animFrame int
	dirty     fragment
}

// New builds a machine in the Completion phase; the first event spawns the
// first piece. rng seeds the piece randomizer.
func New(cfg Config, rng *rand.Rand) *Machine {
	cfg.StartLevel = max(0, min(cfg.StartLevel, MaxLevel))
	cfg.Preview = max(0, min(cfg.Preview, MaxPreview))
	grid := NewGrid()
	return &Machine{
		cfg:   cfg,
		grid:  grid,
		ctrl:  NewController(grid),
		queue: NewQueue(rng, cfg.Preview),
		score: NewScore(cfg.StartLevel, cfg.Mode),
		phase: PhaseCompletion,
		dirty: fragAll,
	}
}

// Config returns the normalized configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Outcome returns how the game ended, or OutcomeNone while it runs.
func (m *Machine) Outcome() Outcome {
	return m.outcome
}

// Frames returns how many Timeout events were played.
func (m *Machine) Frames() int {
	return m.playtime.Frames()
}

// Finished reports whether the machine reached GameOver.
func (m *Machine) Finished() bool {
	return m.phase == PhaseGameOver
}

// Flashing reports whether cleared rows are currently highlighted.
func (m *Machine) Flashing() bool {
	return m.phase == PhaseAnimation && m.lines.Len() > 0 && m.animFrame%30 <= 15
}

// Feed processes ev and then any self-scheduled steps it requests, at most
// MaxChain of them.
func (m *Machine) Feed(ev Event) {
	again := m.Process(ev)
	for i := 0; again && i < MaxChain; i++ {
		again = m.Process(EventNone)
	}
}

// Process handles one event and reports whether the machine wants to be
// driven again with EventNone before the next external event.
func (m *Machine) Process(ev Event) bool {
	if m.phase == PhaseGameOver {
		return false
	}
	if ev == EventExit {
		m.finish(OutcomeExited)
		return false
	}
	if ev == EventTimeout && m.playtime.Advance() {
		m.dirty |= fragPlaytime
	}

	switch m.phase {
	case PhaseCompletion:
		return m.complete()
	case PhaseFalling, PhaseLocked:
		return m.control(ev)
	case PhasePattern:
		return m.pattern()
	case PhaseAnimation:
		return m.animate(ev)
	}
	return false
}

func (m *Machine) control(ev Event) bool {
	switch ev {
	case EventTimeout:
		if !m.fall.Tick(m.score.Level()) {
			return false
		}
		if m.phase == PhaseLocked {
			m.phase = PhasePattern
			return true
		}
		m.stepDown()
	case EventMoveDown:
		m.stepDown()
	case EventMoveLeft:
		m.shift(m.ctrl.Move(DirLeft))
	case EventMoveRight:
		m.shift(m.ctrl.Move(DirRight))
	case EventRotate:
		m.shift(m.ctrl.Rotate())
	case EventHardDrop:
		m.ctrl.Drop()
		m.dirty |= fragPlayfield
		m.phase = PhasePattern
		return true
	case EventHold:
		m.hold()
	}
	return false
}

// stepDown moves the piece one row or starts the lock window when it rests.
func (m *Machine) stepDown() {
	if m.ctrl.Move(DirDown) {
		m.dirty |= fragPlayfield
		if m.phase == PhaseLocked {
			m.phase = PhaseFalling
		}
		return
	}
	if m.phase == PhaseFalling {
		m.phase = PhaseLocked
		m.fall.LockDelay()
	}
}

// shift finishes a sideways move or rotation. While locked, a piece that can
// fall again resumes falling and one that still rests gets a fresh window.
func (m *Machine) shift(moved bool) {
	if !moved {
		return
	}
	m.dirty |= fragPlayfield
	if m.phase != PhaseLocked {
		return
	}
	if m.ctrl.HasFallSpace() {
		m.phase = PhaseFalling
		return
	}
	m.fall.LockDelay()
}

func (m *Machine) hold() {
	front := m.queue.Front()
	if !m.grid.CanPlace(NewTetromino(front), SpawnCoords(front)) {
		return
	}
	p, err := m.queue.Swap(m.ctrl.Piece().Shape)
	if errors.Is(err, ErrAlreadySwapped) {
		return
	}
	m.ctrl.Spawn(p)
	m.fall.Reset()
	m.phase = PhaseFalling
	m.dirty |= fragPlayfield | fragNext
}

func (m *Machine) pattern() bool {
	if err := m.ctrl.Lock(); err != nil {
		panic("engine: active piece no longer fits the grid")
	}
	m.lines.collectFilled(m.grid)
	m.animFrame = 0
	m.phase = PhaseAnimation
	m.dirty |= fragPlayfield
	return true
}

func (m *Machine) animate(ev Event) bool {
	if m.lines.Len() == 0 {
		m.phase = PhaseCompletion
		return true
	}
	if ev != EventTimeout {
		return false
	}
	before := m.Flashing()
	m.animFrame++
	if m.animFrame >= AnimationFrames {
		m.phase = PhaseCompletion
		return true
	}
	if m.Flashing() != before {
		m.dirty |= fragPlayfield
	}
	return false
}

func (m *Machine) complete() bool {
	if n := m.lines.deleteFrom(m.grid); n > 0 {
		m.score.Update(n)
		m.dirty |= fragScore | fragPlayfield
	}
	if m.score.GoalComplete() {
		m.finish(OutcomeCleared)
		return false
	}
	p := m.queue.Pop()
	m.dirty |= fragNext | fragPlayfield
	m.fall.Reset()
	if !m.ctrl.Spawn(p) {
		m.finish(OutcomeToppedOut)
		return false
	}
	m.phase = PhaseFalling
	return false
}

func (m *Machine) finish(o Outcome) {
	m.phase = PhaseGameOver
	m.outcome = o
	m.dirty |= fragEndgame | fragPlayfield
}

// pieces returns the active piece and, when enabled, its ghost. Either may be
// nil.
func (m *Machine) pieces() (active, ghost *FieldPiece) {
	if !m.ctrl.Alive() {
		return nil, nil
	}
	p := m.ctrl.Piece()
	active = &p
	if m.cfg.Ghost && m.phase != PhaseGameOver {
		g := m.ctrl.Ghost()
		ghost = &g
	}
	return active, ghost
}

// RowString renders a visible row of the playfield for logs and tests.
func (m *Machine) RowString(row int) string {
	active, ghost := m.pieces()
	return m.grid.RowString(row, active, ghost)
}
