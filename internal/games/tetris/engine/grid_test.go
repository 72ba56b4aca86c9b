package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPlaceBounds(t *testing.T) {
	g := NewGrid()
	o := NewTetromino(ShapeO) // cells at layout (1,1) (1,2) (2,1) (2,2)

	tests := []struct {
		name string
		at   Coords
		want bool
	}{
		{"floor", Coords{Row: 2, Col: 0}, true},
		{"below floor", Coords{Row: 1, Col: 0}, false},
		{"left wall", Coords{Row: 5, Col: -1}, true},
		{"past left wall", Coords{Row: 5, Col: -2}, false},
		{"right wall", Coords{Row: 5, Col: Width - 3}, true},
		{"past right wall", Coords{Row: 5, Col: Width - 2}, false},
		{"top of buffer", Coords{Row: TotalHeight, Col: 3}, true},
		{"above buffer", Coords{Row: TotalHeight + 1, Col: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.CanPlace(o, tt.at))
		})
	}
}

func TestPlaceRejectsOverlap(t *testing.T) {
	g := NewGrid()
	o := NewTetromino(ShapeO)
	at := Coords{Row: 2, Col: 0}

	require.NoError(t, g.Place(o, at))
	assert.Equal(t, ShapeO, g.Cell(0, 1))
	assert.Equal(t, ShapeO, g.Cell(1, 2))
	assert.False(t, g.CanPlace(o, at))

	before := *g
	err := g.Place(NewTetromino(ShapeI), Coords{Row: 2, Col: 0})
	assert.ErrorIs(t, err, ErrCollision)
	assert.Equal(t, before, *g, "failed place must not write")
}

func TestPlaceOutOfBounds(t *testing.T) {
	g := NewGrid()
	err := g.Place(NewTetromino(ShapeI), Coords{Row: 5, Col: Width - 2})
	assert.ErrorIs(t, err, ErrCollision)
	assert.Equal(t, 0, g.Height())
}

func TestRowFilledAndDelete(t *testing.T) {
	g := NewGrid()
	for c := range Width {
		g.cells[0][c] = ShapeZ
	}
	g.cells[1][0] = ShapeJ
	g.cells[2][9] = ShapeL
	g.cells[TotalHeight-1][4] = ShapeT

	require.True(t, g.RowFilled(0))
	require.False(t, g.RowFilled(1))

	g.DeleteRow(0)

	assert.False(t, g.RowFilled(0))
	assert.Equal(t, ShapeJ, g.Cell(0, 0))
	assert.Equal(t, ShapeL, g.Cell(1, 9))
	assert.Equal(t, ShapeNone, g.Cell(2, 9))
	assert.Equal(t, ShapeT, g.Cell(TotalHeight-2, 4))
	for c := range Width {
		assert.Equal(t, ShapeNone, g.Cell(TotalHeight-1, c), "top row col %d", c)
	}
}

func TestDeleteRowKeepsRowsBelow(t *testing.T) {
	g := NewGrid()
	g.cells[0][3] = ShapeS
	g.cells[5][3] = ShapeO
	g.cells[6][3] = ShapeI

	g.DeleteRow(5)

	assert.Equal(t, ShapeS, g.Cell(0, 3))
	assert.Equal(t, ShapeI, g.Cell(5, 3))
	assert.Equal(t, ShapeNone, g.Cell(6, 3))
}

func TestShapeAtLayers(t *testing.T) {
	g := NewGrid()
	g.cells[0][0] = ShapeL
	g.cells[VisibleHeight][0] = ShapeL

	active := NewFieldPiece(ShapeO, Coords{Row: 10, Col: 0})
	ghost := NewFieldPiece(ShapeO, Coords{Row: 3, Col: 0})

	tests := []struct {
		at        Coords
		wantShape Shape
		wantLayer Layer
	}{
		{Coords{Row: 0, Col: 0}, ShapeL, LayerStatic},
		{Coords{Row: 9, Col: 1}, ShapeO, LayerActive},
		{Coords{Row: 2, Col: 1}, ShapeO, LayerGhost},
		{Coords{Row: 5, Col: 5}, ShapeNone, LayerNone},
		{Coords{Row: VisibleHeight, Col: 0}, ShapeNone, LayerNone},
		{Coords{Row: 0, Col: Width}, ShapeNone, LayerNone},
	}
	for _, tt := range tests {
		shape, layer := g.ShapeAt(tt.at, &active, &ghost)
		assert.Equal(t, tt.wantShape, shape, "shape at %v", tt.at)
		assert.Equal(t, tt.wantLayer, layer, "layer at %v", tt.at)
	}
}

func TestActiveWinsOverGhost(t *testing.T) {
	g := NewGrid()
	p := NewFieldPiece(ShapeT, Coords{Row: 2, Col: 0})
	shape, layer := g.ShapeAt(Coords{Row: 1, Col: 0}, &p, &p)
	assert.Equal(t, ShapeT, shape)
	assert.Equal(t, LayerActive, layer)
}

func TestRowString(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(NewTetromino(ShapeO), Coords{Row: 2, Col: 3}))
	active := NewFieldPiece(ShapeI, Coords{Row: 12, Col: 0})
	ghost := NewFieldPiece(ShapeI, Coords{Row: 4, Col: 0})

	assert.Equal(t, "    oo    ", g.RowString(0, nil, nil))
	assert.Equal(t, "IIII      ", g.RowString(10, &active, &ghost))
	assert.Equal(t, "....      ", g.RowString(2, &active, &ghost))
	assert.Equal(t, "          ", g.RowString(7, &active, &ghost))
}
