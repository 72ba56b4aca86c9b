// Package engine implements the rules of the falling-block game: playfield,
// piece movement, line clears, the 7-bag queue, scoring and the phase machine
// that sequences them. It has no dependencies on terminals, timers or storage;
// the platform feeds it one event at a time and pulls snapshots for display.
package engine

// Shape identifies one of the seven piece kinds, or the absence of a piece.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeO
	ShapeI
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// AllShapes lists the seven playable shapes in canonical order.
var AllShapes = [7]Shape{ShapeO, ShapeI, ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeO:
		return "O"
	case ShapeI:
		return "I"
	case ShapeT:
		return "T"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "-"
	}
}

// Pointed reports whether the shape is one of the three-wide T, J, L pieces.
func (s Shape) Pointed() bool {
	return s == ShapeT || s == ShapeJ || s == ShapeL
}

// LayoutSize is the side of a piece's bounding box.
const LayoutSize = 4

// Layout is a piece's occupancy matrix. Row 0 is the top of the bounding box.
type Layout [LayoutSize][LayoutSize]bool

// Tetromino pairs a shape with its current rotation state.
// It is a value type; Rotate returns a new Tetromino.
type Tetromino struct {
	Shape  Shape
	Layout Layout
}

var canonical = map[Shape]Layout{
	ShapeO: parseLayout("....", ".##.", ".##.", "...."),
	ShapeI: parseLayout("....", "....", "####", "...."),
	ShapeT: parseLayout("....", "###.", ".#..", "...."),
	ShapeJ: parseLayout("....", "###.", "..#.", "...."),
	ShapeL: parseLayout("....", "###.", "#...", "...."),
	ShapeS: parseLayout("....", ".##.", "##..", "...."),
	ShapeZ: parseLayout("....", "##..", ".##.", "...."),
}

// S and Z only have two states; these are the turned ones.
var (
	turnedS = parseLayout(".#..", ".##.", "..#.", "....")
	turnedZ = parseLayout("..#.", ".##.", ".#..", "....")
)

// parseLayout builds a Layout from four rows of '#' and '.' characters.
func parseLayout(rows ...string) Layout {
	var l Layout
	for r, row := range rows {
		for c, ch := range row {
			l[r][c] = ch == '#'
		}
	}
	return l
}

// NewTetromino returns the shape in its spawn orientation.
// ShapeNone yields an empty layout.
func NewTetromino(shape Shape) Tetromino {
	return Tetromino{Shape: shape, Layout: canonical[shape]}
}

// Rotate returns the piece turned by one step.
//
// O never changes, I transposes, S and Z toggle between two fixed layouts and
// T, J, L turn clockwise inside their top-left 3x3 block. The caller decides
// whether the result fits; there is no kick search.
func (t Tetromino) Rotate() Tetromino {
	switch t.Shape {
	case ShapeO, ShapeNone:
		return t
	case ShapeI:
		t.Layout = transpose(t.Layout)
	case ShapeS:
		t.Layout = toggle(t.Layout, canonical[ShapeS], turnedS)
	case ShapeZ:
		t.Layout = toggle(t.Layout, canonical[ShapeZ], turnedZ)
	default:
		t.Layout = turnRings(t.Layout)
	}
	return t
}

// Period returns how many rotations bring the shape back to its start layout.
func (s Shape) Period() int {
	switch s {
	case ShapeO, ShapeNone:
		return 1
	case ShapeI, ShapeS, ShapeZ:
		return 2
	default:
		return 4
	}
}

// Cells returns the occupied (row, col) offsets inside the layout.
func (t Tetromino) Cells() []Coords {
	cells := make([]Coords, 0, 4)
	for r := range LayoutSize {
		for c := range LayoutSize {
			if t.Layout[r][c] {
				cells = append(cells, Coords{Row: r, Col: c})
			}
		}
	}
	return cells
}

func transpose(l Layout) Layout {
	var out Layout
	for r := range LayoutSize {
		for c := range LayoutSize {
			out[c][r] = l[r][c]
		}
	}
	return out
}

func toggle(l, original, turned Layout) Layout {
	if l == original {
		return turned
	}
	return original
}

// turnRings moves every cell of the 3x3 block one quarter turn clockwise:
// corners (0,0)->(0,2)->(2,2)->(2,0) and edges (0,1)->(1,2)->(2,1)->(1,0).
func turnRings(l Layout) Layout {
	l[0][0], l[0][2], l[2][2], l[2][0] = l[2][0], l[0][0], l[0][2], l[2][2]
	l[0][1], l[1][2], l[2][1], l[1][0] = l[1][0], l[0][1], l[1][2], l[2][1]
	return l
}
