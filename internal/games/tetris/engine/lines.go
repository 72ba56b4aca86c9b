package engine

import "fmt"

// MaxPendingLines is the most rows a single piece can complete.
const MaxPendingLines = 4

// LineBuffer collects the rows found filled after a piece locks.
// It holds at most MaxPendingLines entries; more is a logic error and panics.
type LineBuffer struct {
	rows [MaxPendingLines]int
	n    int
}

// Store appends row. It panics if the buffer is already full.
func (b *LineBuffer) Store(row int) {
	if b.n == len(b.rows) {
		panic(fmt.Sprintf("engine: line buffer overflow storing row %d", row))
	}
	b.rows[b.n] = row
	b.n++
}

// Rows returns the stored rows in insertion order.
func (b *LineBuffer) Rows() []int {
	return b.rows[:b.n]
}

// Len returns the number of stored rows.
func (b *LineBuffer) Len() int {
	return b.n
}

// Contains reports whether row is pending.
func (b *LineBuffer) Contains(row int) bool {
	for _, r := range b.rows[:b.n] {
		if r == row {
			return true
		}
	}
	return false
}

// Reset empties the buffer.
func (b *LineBuffer) Reset() {
	b.n = 0
}

// collectFilled scans the grid from the top down and stores every filled row,
// so the buffer ends up in descending row order.
func (b *LineBuffer) collectFilled(g *Grid) {
	for r := TotalHeight - 1; r >= 0; r-- {
		if g.RowFilled(r) {
			b.Store(r)
		}
	}
}

// deleteFrom removes the pending rows from the grid, highest first, and
// returns how many were removed.
func (b *LineBuffer) deleteFrom(g *Grid) int {
	n := b.n
	for _, r := range b.rows[:b.n] {
		g.DeleteRow(r)
	}
	b.Reset()
	return n
}
