package engine

import (
	"errors"
	"strings"
)

// Playfield dimensions. Rows above VisibleHeight are spawn and rotation headroom.
const (
	Width         = 10
	VisibleHeight = 20
	TotalHeight   = 30
)

// ErrCollision is returned when a piece would overlap a locked cell or leave the field.
var ErrCollision = errors.New("engine: piece collides or is out of bounds")

// Coords is a (row, col) position. Row 0 is the floor and rows grow upward.
type Coords struct {
	Row int
	Col int
}

// Layer tells which display layer a cell was resolved from.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerStatic
	LayerGhost
	LayerActive
)

// Grid holds the locked cells of the playfield.
type Grid struct {
	cells [TotalHeight][Width]Shape
}

// NewGrid returns an empty playfield.
func NewGrid() *Grid {
	return &Grid{}
}

// cellAt maps a layout offset to its grid position for a piece anchored at at.
// Layout row 0 sits at the anchor row; larger layout rows are lower on the field.
func cellAt(at, offset Coords) Coords {
	return Coords{Row: at.Row - offset.Row, Col: at.Col + offset.Col}
}

// CanPlace reports whether every occupied cell of t, anchored at at, lies inside
// the field and on an empty cell.
func (g *Grid) CanPlace(t Tetromino, at Coords) bool {
	for _, off := range t.Cells() {
		p := cellAt(at, off)
		if p.Col < 0 || p.Col >= Width || p.Row < 0 || p.Row >= TotalHeight {
			return false
		}
		if g.cells[p.Row][p.Col] != ShapeNone {
			return false
		}
	}
	return true
}

// Place writes the piece's cells into the grid tagged with its shape.
// Nothing is written when the piece does not fit.
func (g *Grid) Place(t Tetromino, at Coords) error {
	if !g.CanPlace(t, at) {
		return ErrCollision
	}
	for _, off := range t.Cells() {
		p := cellAt(at, off)
		g.cells[p.Row][p.Col] = t.Shape
	}
	return nil
}

// Cell returns the locked shape at (row, col), or ShapeNone outside the grid.
func (g *Grid) Cell(row, col int) Shape {
	if row < 0 || row >= TotalHeight || col < 0 || col >= Width {
		return ShapeNone
	}
	return g.cells[row][col]
}

// ShapeAt resolves what should be shown at a visible position. The active
// piece wins over the ghost, the ghost wins over locked cells. Either piece
// may be nil. Positions outside the visible field yield ShapeNone.
func (g *Grid) ShapeAt(at Coords, active, ghost *FieldPiece) (Shape, Layer) {
	if at.Col < 0 || at.Col >= Width || at.Row < 0 || at.Row >= VisibleHeight {
		return ShapeNone, LayerNone
	}
	if active != nil && active.Covers(at) {
		return active.Shape, LayerActive
	}
	if ghost != nil && ghost.Covers(at) {
		return ghost.Shape, LayerGhost
	}
	if s := g.cells[at.Row][at.Col]; s != ShapeNone {
		return s, LayerStatic
	}
	return ShapeNone, LayerNone
}

// RowFilled reports whether every column of row is occupied.
func (g *Grid) RowFilled(row int) bool {
	if row < 0 || row >= TotalHeight {
		return false
	}
	for _, s := range g.cells[row] {
		if s == ShapeNone {
			return false
		}
	}
	return true
}

// DeleteRow removes row and shifts every row above it down by one.
// The top working row becomes empty; rows below are untouched.
// When deleting several rows, delete them from the highest index down.
func (g *Grid) DeleteRow(row int) {
	if row < 0 || row >= TotalHeight {
		return
	}
	copy(g.cells[row:TotalHeight-1], g.cells[row+1:])
	g.cells[TotalHeight-1] = [Width]Shape{}
}

// Height returns one past the highest occupied row, or 0 for an empty grid.
func (g *Grid) Height() int {
	for r := TotalHeight - 1; r >= 0; r-- {
		for _, s := range g.cells[r] {
			if s != ShapeNone {
				return r + 1
			}
		}
	}
	return 0
}

// RowString renders one visible row: lower case letters for locked cells,
// upper case for the active piece, '.' for the ghost and ' ' for empty cells.
func (g *Grid) RowString(row int, active, ghost *FieldPiece) string {
	var sb strings.Builder
	sb.Grow(Width)
	for col := range Width {
		shape, layer := g.ShapeAt(Coords{Row: row, Col: col}, active, ghost)
		switch layer {
		case LayerActive:
			sb.WriteString(shape.String())
		case LayerGhost:
			sb.WriteByte('.')
		case LayerStatic:
			sb.WriteString(strings.ToLower(shape.String()))
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
