package engine

import (
	"errors"
	"math/rand"
)

// ErrAlreadySwapped is returned by Swap when a hold was already used since the
// last piece was drawn normally.
var ErrAlreadySwapped = errors.New("engine: hold already used for this piece")

// MaxPreview is the largest number of upcoming shapes the queue can show.
const MaxPreview = 4

const bagSize = len(AllShapes)

// Queue is the 7-bag randomizer. It keeps two shuffled bags back to back so
// the preview window never runs dry, and supports a one-shot hold swap.
type Queue struct {
	rng     *rand.Rand
	bag     [2 * bagSize]Shape
	pos     int
	preview int
	pushed  bool
}

// NewQueue fills two bags from rng. preview is clamped to [0, MaxPreview].
func NewQueue(rng *rand.Rand, preview int) *Queue {
	q := &Queue{rng: rng, preview: max(0, min(preview, MaxPreview))}
	q.shuffleInto(q.bag[:bagSize])
	q.shuffleInto(q.bag[bagSize:])
	return q
}

func (q *Queue) shuffleInto(dst []Shape) {
	copy(dst, AllShapes[:])
	q.rng.Shuffle(len(dst), func(i, j int) {
		dst[i], dst[j] = dst[j], dst[i]
	})
}

// PreviewSize returns the configured preview window length.
func (q *Queue) PreviewSize() int {
	return q.preview
}

// Peek returns the next n shapes without consuming them.
// n is clamped to the configured preview size.
func (q *Queue) Peek(n int) []Shape {
	n = max(0, min(n, q.preview))
	out := make([]Shape, n)
	copy(out, q.bag[q.pos:q.pos+n])
	return out
}

// Front returns the shape that the next draw will produce.
func (q *Queue) Front() Shape {
	return q.bag[q.pos]
}

// Pushed reports whether a hold swap has been used since the last Pop.
func (q *Queue) Pushed() bool {
	return q.pushed
}

// DrawAdvancing consumes the front shape. When the first bag is used up the
// second bag moves forward and a fresh shuffle fills the back half.
func (q *Queue) DrawAdvancing() Shape {
	s := q.bag[q.pos]
	q.pos++
	if q.pos == bagSize {
		copy(q.bag[:bagSize], q.bag[bagSize:])
		q.shuffleInto(q.bag[bagSize:])
		q.pos = 0
	}
	return s
}

// DrawNonAdvancing takes the front shape and leaves its slot empty without
// moving the draw position, so no refill can happen. The slot must be filled
// again before the next draw.
func (q *Queue) DrawNonAdvancing() Shape {
	s := q.bag[q.pos]
	q.bag[q.pos] = ShapeNone
	return s
}

// Pop draws the next shape and anchors it at its spawn position.
// It re-enables hold.
func (q *Queue) Pop() FieldPiece {
	s := q.DrawAdvancing()
	q.pushed = false
	return NewFieldPiece(s, SpawnCoords(s))
}

// Swap exchanges shape with the front of the queue and returns the front
// shape anchored at its spawn position. Only one swap is allowed between two
// calls to Pop.
func (q *Queue) Swap(shape Shape) (FieldPiece, error) {
	if q.pushed {
		return FieldPiece{}, ErrAlreadySwapped
	}
	s := q.DrawNonAdvancing()
	q.bag[q.pos] = shape
	q.pushed = true
	return NewFieldPiece(s, SpawnCoords(s)), nil
}

// SpawnCoords returns where a freshly drawn shape enters the field.
// T, J and L sit one row lower than the other shapes.
func SpawnCoords(shape Shape) Coords {
	row := VisibleHeight + 1
	if shape.Pointed() {
		row = VisibleHeight
	}
	return Coords{Row: row, Col: Width/2 - 2}
}
