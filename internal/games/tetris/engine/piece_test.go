package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareDropsToFloor(t *testing.T) {
	g := NewGrid()
	c := NewController(g)
	require.True(t, c.Spawn(NewFieldPiece(ShapeO, SpawnCoords(ShapeO))))

	moves := 0
	for c.Move(DirDown) {
		moves++
	}
	assert.Equal(t, SpawnCoords(ShapeO).Row-2, moves)
	assert.False(t, c.HasFallSpace())

	require.NoError(t, c.Lock())
	assert.False(t, c.Alive())
	assert.Equal(t, ShapeO, g.Cell(0, 4))
	assert.Equal(t, ShapeO, g.Cell(1, 5))
	assert.Equal(t, 2, g.Height())
	for r := 0; r < TotalHeight; r++ {
		assert.False(t, g.RowFilled(r), "row %d", r)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	g := NewGrid()
	c := NewController(g)
	c.Spawn(NewFieldPiece(ShapeI, Coords{Row: 10, Col: 0}))

	assert.False(t, c.Move(DirLeft))
	assert.Equal(t, Coords{Row: 10, Col: 0}, c.Piece().Anchor)

	for c.Move(DirRight) {
	}
	assert.Equal(t, Width-4, c.Piece().Anchor.Col)
}

func TestRotateFailsInPlace(t *testing.T) {
	g := NewGrid()
	c := NewController(g)

	c.Spawn(NewFieldPiece(ShapeI, Coords{Row: 2, Col: 6}))
	before := c.Piece()
	assert.False(t, c.Rotate(), "vertical I would go below the floor")
	assert.Equal(t, before, c.Piece())

	c.Spawn(NewFieldPiece(ShapeI, SpawnCoords(ShapeI)))
	assert.True(t, c.Rotate())
	assert.Equal(t, NewTetromino(ShapeI).Rotate(), c.Piece().Tetromino)
}

func TestGhostAndDrop(t *testing.T) {
	g := NewGrid()
	g.cells[0][4] = ShapeZ
	c := NewController(g)
	c.Spawn(NewFieldPiece(ShapeO, Coords{Row: 15, Col: 3}))

	ghost := c.Ghost()
	assert.Equal(t, Coords{Row: 3, Col: 3}, ghost.Anchor)
	assert.Equal(t, Coords{Row: 15, Col: 3}, c.Piece().Anchor, "ghost must not move the piece")

	assert.Equal(t, 12, c.Drop())
	assert.Equal(t, ghost, c.Piece())
}

func TestSpawnCollision(t *testing.T) {
	g := NewGrid()
	p := NewFieldPiece(ShapeT, SpawnCoords(ShapeT))
	require.NoError(t, g.Place(p.Tetromino, p.Anchor))

	c := NewController(g)
	assert.False(t, c.Spawn(p))
	assert.True(t, c.Alive())
}

func TestDeadControllerIsInert(t *testing.T) {
	c := NewController(NewGrid())
	assert.False(t, c.Move(DirDown))
	assert.False(t, c.Rotate())
	assert.False(t, c.HasFallSpace())
	assert.NoError(t, c.Lock())
	assert.False(t, c.Ghost().Alive())
}
