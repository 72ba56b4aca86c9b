package engine

// Dir is a movement direction for the active piece.
type Dir uint8

const (
	DirDown Dir = iota
	DirLeft
	DirRight
)

func (d Dir) delta() Coords {
	switch d {
	case DirLeft:
		return Coords{Col: -1}
	case DirRight:
		return Coords{Col: 1}
	default:
		return Coords{Row: -1}
	}
}

// FieldPiece is a tetromino anchored on the playfield. The anchor is the
// position of the layout's top-left corner.
type FieldPiece struct {
	Tetromino
	Anchor Coords
}

// NewFieldPiece anchors the spawn orientation of shape at at.
func NewFieldPiece(shape Shape, at Coords) FieldPiece {
	return FieldPiece{Tetromino: NewTetromino(shape), Anchor: at}
}

// Alive reports whether the piece holds a real shape.
func (p FieldPiece) Alive() bool {
	return p.Shape != ShapeNone
}

// Covers reports whether one of the piece's cells is at pos.
func (p FieldPiece) Covers(pos Coords) bool {
	if !p.Alive() {
		return false
	}
	r := p.Anchor.Row - pos.Row
	c := pos.Col - p.Anchor.Col
	if r < 0 || r >= LayoutSize || c < 0 || c >= LayoutSize {
		return false
	}
	return p.Layout[r][c]
}

// Positions returns the grid positions covered by the piece.
func (p FieldPiece) Positions() []Coords {
	cells := p.Cells()
	for i, off := range cells {
		cells[i] = cellAt(p.Anchor, off)
	}
	return cells
}

// Controller owns the active piece and mediates every change to it against
// the grid. Failed moves are routine and leave the piece unchanged.
type Controller struct {
	grid  *Grid
	piece FieldPiece
}

// NewController returns a controller with no active piece.
func NewController(grid *Grid) *Controller {
	return &Controller{grid: grid}
}

// Piece returns a copy of the active piece.
func (c *Controller) Piece() FieldPiece {
	return c.piece
}

// Alive reports whether there is an active piece.
func (c *Controller) Alive() bool {
	return c.piece.Alive()
}

// Spawn makes p the active piece. It returns false if p overlaps the stack;
// the piece still becomes active so the final position can be displayed.
func (c *Controller) Spawn(p FieldPiece) bool {
	c.piece = p
	return c.grid.CanPlace(p.Tetromino, p.Anchor)
}

// Move shifts the piece one cell in dir if the target is free.
func (c *Controller) Move(dir Dir) bool {
	if !c.piece.Alive() {
		return false
	}
	next, ok := c.grid.moved(c.piece, dir)
	if ok {
		c.piece = next
	}
	return ok
}

// Rotate turns the piece in place if the rotated layout fits.
func (c *Controller) Rotate() bool {
	if !c.piece.Alive() {
		return false
	}
	turned := c.piece.Tetromino.Rotate()
	if !c.grid.CanPlace(turned, c.piece.Anchor) {
		return false
	}
	c.piece.Tetromino = turned
	return true
}

// HasFallSpace reports whether the piece could move down one row.
func (c *Controller) HasFallSpace() bool {
	if !c.piece.Alive() {
		return false
	}
	_, ok := c.grid.moved(c.piece, DirDown)
	return ok
}

// Drop moves the piece down until it rests and returns the rows travelled.
func (c *Controller) Drop() int {
	rows := 0
	for c.Move(DirDown) {
		rows++
	}
	return rows
}

// Ghost returns the piece projected down to its resting position.
// The active piece is not modified.
func (c *Controller) Ghost() FieldPiece {
	if !c.piece.Alive() {
		return FieldPiece{}
	}
	ghost := c.piece
	for {
		next, ok := c.grid.moved(ghost, DirDown)
		if !ok {
			return ghost
		}
		ghost = next
	}
}

// Lock commits the active piece into the grid and clears it.
func (c *Controller) Lock() error {
	if !c.piece.Alive() {
		return nil
	}
	err := c.grid.Place(c.piece.Tetromino, c.piece.Anchor)
	c.piece = FieldPiece{}
	return err
}

// moved returns p shifted in dir and whether the shifted piece fits.
func (g *Grid) moved(p FieldPiece, dir Dir) (FieldPiece, bool) {
	d := dir.delta()
	p.Anchor = Coords{Row: p.Anchor.Row + d.Row, Col: p.Anchor.Col + d.Col}
	return p, g.CanPlace(p.Tetromino, p.Anchor)
}
