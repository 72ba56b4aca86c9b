package engine

import "fmt"

// Mode selects the win condition.
type Mode uint8

const (
	// ModeMarathon never ends on its own; the game runs until top-out.
	ModeMarathon Mode = iota
	// ModeSprint ends once SprintGoal lines are cleared.
	ModeSprint
)

const (
	MaxLevel   = 29
	SprintGoal = 40
)

func (m Mode) String() string {
	if m == ModeSprint {
		return "sprint"
	}
	return "marathon"
}

// ParseMode converts "marathon" or "sprint" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "marathon":
		return ModeMarathon, nil
	case "sprint":
		return ModeSprint, nil
	default:
		return ModeMarathon, fmt.Errorf("engine: unknown mode %q", s)
	}
}

// lineScores is the base award for clearing 1..4 rows at once.
var lineScores = [MaxPendingLines]int{40, 100, 300, 1200}

// ScoreFor returns the points for clearing lines rows at once at level.
func ScoreFor(level, lines int) int {
	if lines <= 0 {
		return 0
	}
	return lineScores[min(lines, MaxPendingLines)-1] * (level + 1)
}

// Score tracks level, points and line statistics.
type Score struct {
	mode  Mode
	level int
	score int
	lines int
	stats [MaxPendingLines]int
}

// NewScore starts a score keeper at level, clamped to [0, MaxLevel].
func NewScore(level int, mode Mode) *Score {
	return &Score{mode: mode, level: max(0, min(level, MaxLevel))}
}

// Update records a clear of lines rows. Zero is ignored.
func (s *Score) Update(lines int) {
	if lines <= 0 {
		return
	}
	s.lines += lines
	s.level = max(s.level, s.lines/10)
	s.score += ScoreFor(s.level, lines)
	s.stats[min(lines, MaxPendingLines)-1]++
}

// GoalComplete reports whether the mode's target has been reached.
func (s *Score) GoalComplete() bool {
	switch s.mode {
	case ModeSprint:
		return s.lines >= SprintGoal
	default:
		return false
	}
}

// Level returns the current level.
func (s *Score) Level() int {
	return s.level
}

// Points returns the cumulative score.
func (s *Score) Points() int {
	return s.score
}

// Lines returns the total number of cleared rows.
func (s *Score) Lines() int {
	return s.lines
}

func (s *Score) Mode() Mode {
	return s.mode
}

// Stats returns how many singles, doubles, triples and tetrises were cleared.
func (s *Score) Stats() [MaxPendingLines]int {
	return s.stats
}
