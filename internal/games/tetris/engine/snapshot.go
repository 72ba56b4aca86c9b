package engine

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Phase    Phase
	Outcome  Outcome
	Mode     Mode
	Level    int
	Score    int
	Lines    int
	Stats    [MaxPendingLines]int
	Frames   int // Timeout events seen while playing
	Active   FieldPiece
	Next     []Shape
	HoldUsed bool
	Pending  []int // Rows flagged for clearing
	Height   int   // Stack height in rows
	Rows     []string
}

// Snapshot returns a copy of the current state. Rows holds the visible
// playfield from the top row down, rendered with RowString.
func (m *Machine) Snapshot() Snapshot {
	rows := make([]string, 0, VisibleHeight)
	for r := VisibleHeight - 1; r >= 0; r-- {
		rows = append(rows, m.RowString(r))
	}
	return Snapshot{
		Phase:    m.phase,
		Outcome:  m.outcome,
		Mode:     m.score.Mode(),
		Level:    m.score.Level(),
		Score:    m.score.Points(),
		Lines:    m.score.Lines(),
		Stats:    m.score.Stats(),
		Frames:   m.playtime.Frames(),
		Active:   m.ctrl.Piece(),
		Next:     m.queue.Peek(m.queue.PreviewSize()),
		HoldUsed: m.queue.Pushed(),
		Pending:  append([]int(nil), m.lines.Rows()...),
		Height:   m.grid.Height(),
		Rows:     rows,
	}
}
