package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(seed int64) *Queue {
	return NewQueue(rand.New(rand.NewSource(seed)), MaxPreview)
}

func TestBagIsPermutation(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		q := newTestQueue(seed)
		for bag := 0; bag < 20; bag++ {
			seen := make(map[Shape]int)
			for i := 0; i < bagSize; i++ {
				seen[q.Pop().Shape]++
			}
			require.Len(t, seen, bagSize, "seed %d bag %d", seed, bag)
			for shape, n := range seen {
				assert.Equal(t, 1, n, "seed %d bag %d shape %s", seed, bag, shape)
			}
		}
	}
}

func TestPeekMatchesPop(t *testing.T) {
	q := newTestQueue(3)
	for i := 0; i < 30; i++ {
		next := q.Peek(MaxPreview)
		require.Len(t, next, MaxPreview)
		assert.Equal(t, next[0], q.Front())
		assert.Equal(t, next[0], q.Pop().Shape)
		assert.Equal(t, next[1:], q.Peek(MaxPreview)[:MaxPreview-1])
	}
}

func TestPeekClampedToPreview(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(1)), 2)
	assert.Len(t, q.Peek(4), 2)
	assert.Empty(t, NewQueue(rand.New(rand.NewSource(1)), 0).Peek(3))
	assert.Equal(t, MaxPreview, NewQueue(rand.New(rand.NewSource(1)), 9).PreviewSize())
}

func TestSwapOncePerPop(t *testing.T) {
	q := newTestQueue(11)
	front := q.Front()

	p, err := q.Swap(ShapeO)
	require.NoError(t, err)
	assert.Equal(t, front, p.Shape)
	assert.Equal(t, SpawnCoords(front), p.Anchor)
	assert.Equal(t, ShapeO, q.Front())
	assert.True(t, q.Pushed())

	_, err = q.Swap(ShapeI)
	assert.ErrorIs(t, err, ErrAlreadySwapped)
	assert.NotErrorIs(t, err, ErrCollision)
	assert.Equal(t, ShapeO, q.Front(), "rejected swap must not touch the queue")

	assert.Equal(t, ShapeO, q.Pop().Shape)
	assert.False(t, q.Pushed())

	_, err = q.Swap(ShapeT)
	assert.NoError(t, err)
}

func TestDrawNonAdvancingNeverRefills(t *testing.T) {
	q := newTestQueue(5)
	for i := 0; i < bagSize-1; i++ {
		q.DrawAdvancing()
	}
	back := q.bag[bagSize:]
	wantBack := append([]Shape(nil), back...)
	last := q.Front()

	got := q.DrawNonAdvancing()
	assert.Equal(t, last, got)
	assert.Equal(t, bagSize-1, q.pos)
	assert.Equal(t, wantBack, q.bag[bagSize:])
	assert.Equal(t, ShapeNone, q.Front())
}

func TestSwapOnLastSlotKeepsBag(t *testing.T) {
	q := newTestQueue(9)
	for i := 0; i < bagSize-1; i++ {
		q.Pop()
	}
	wantBack := append([]Shape(nil), q.bag[bagSize:]...)

	_, err := q.Swap(ShapeZ)
	require.NoError(t, err)
	assert.Equal(t, wantBack, q.bag[bagSize:])

	assert.Equal(t, ShapeZ, q.Pop().Shape)
	assert.Equal(t, 0, q.pos)
	assert.Equal(t, wantBack, q.bag[:bagSize], "second bag moves forward on refill")
}

func TestSpawnCoords(t *testing.T) {
	for _, shape := range AllShapes {
		at := SpawnCoords(shape)
		assert.Equal(t, Width/2-2, at.Col)
		if shape.Pointed() {
			assert.Equal(t, VisibleHeight, at.Row, "%s", shape)
		} else {
			assert.Equal(t, VisibleHeight+1, at.Row, "%s", shape)
		}
		assert.True(t, NewGrid().CanPlace(NewTetromino(shape), at), "%s", shape)
	}
}

func TestQueueDeterministic(t *testing.T) {
	a, b := newTestQueue(99), newTestQueue(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Pop(), b.Pop())
	}
}
