package engine

// Sink receives the displayable fragments of a game. A renderer implements it
// and the machine pushes fragments into it from Show and ShowAll.
type Sink interface {
	ShowPlayfield(PlayfieldView)
	ShowNext(NextView)
	ShowScore(ScoreView)
	ShowPlaytime(PlaytimeView)
	ShowEndgame(EndgameView)
}

// CellView is one resolved cell of the visible playfield.
type CellView struct {
	Shape Shape
	Layer Layer
	// Flash is set on rows that are being cleared while the highlight is on.
	Flash bool
}

// PlayfieldView is the visible part of the grid with the active and ghost
// pieces composed in. Cells[0] is the floor row.
type PlayfieldView struct {
	Cells [VisibleHeight][Width]CellView
}

// NextView lists the upcoming shapes, front first.
type NextView struct {
	Shapes   []Shape
	HoldUsed bool
}

type ScoreView struct {
	Mode  Mode
	Level int
	Score int
	Lines int
	Stats [MaxPendingLines]int
}

type PlaytimeView struct {
	Minutes      int
	Seconds      int
	Centiseconds int
}

// EndgameView is emitted once the machine reaches GameOver.
type EndgameView struct {
	Outcome Outcome
	Message string
}

// fragment is a bit set of views that changed since the last Show.
type fragment uint8

const (
	fragPlayfield fragment = 1 << iota
	fragNext
	fragScore
	fragPlaytime
	fragEndgame

	fragAll = fragPlayfield | fragNext | fragScore | fragPlaytime | fragEndgame
)

// Show pushes the fragments that changed since the previous call and clears
// their updated marks.
func (m *Machine) Show(sink Sink) {
	m.emit(sink, m.dirty)
	m.dirty = 0
}

// ShowAll pushes every fragment regardless of whether it changed.
func (m *Machine) ShowAll(sink Sink) {
	m.emit(sink, fragAll)
	m.dirty = 0
}

func (m *Machine) emit(sink Sink, set fragment) {
	if set&fragPlayfield != 0 {
		sink.ShowPlayfield(m.playfieldView())
	}
	if set&fragNext != 0 {
		sink.ShowNext(NextView{Shapes: m.queue.Peek(m.queue.PreviewSize()), HoldUsed: m.queue.Pushed()})
	}
	if set&fragScore != 0 {
		sink.ShowScore(m.scoreView())
	}
	if set&fragPlaytime != 0 {
		sink.ShowPlaytime(m.playtime.Clock())
	}
	if set&fragEndgame != 0 && m.phase == PhaseGameOver {
		sink.ShowEndgame(EndgameView{Outcome: m.outcome, Message: m.endgameMessage()})
	}
}

func (m *Machine) playfieldView() PlayfieldView {
	var v PlayfieldView
	active, ghost := m.pieces()
	flash := m.Flashing()
	for row := range VisibleHeight {
		clearing := flash && m.lines.Contains(row)
		for col := range Width {
			shape, layer := m.grid.ShapeAt(Coords{Row: row, Col: col}, active, ghost)
			v.Cells[row][col] = CellView{Shape: shape, Layer: layer, Flash: clearing}
		}
	}
	return v
}

func (m *Machine) scoreView() ScoreView {
	return ScoreView{
		Mode:  m.score.Mode(),
		Level: m.score.Level(),
		Score: m.score.Points(),
		Lines: m.score.Lines(),
		Stats: m.score.Stats(),
	}
}

func (m *Machine) endgameMessage() string {
	if m.outcome == OutcomeCleared {
		return "FINISHED"
	}
	return "GAME OVER"
}
