package model

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// GliderOffsets is the seed pattern, as (row, col) offsets from the grid
// center.
var GliderOffsets = [][2]int{
	{0, 0},
	{1, 1},
	{2, -1},
	{2, 0},
	{2, 1},
}

// Universe owns a single grid and the mutex that guards every read and
// mutation a rule pass performs on it.
type Universe struct {
	mu   sync.Mutex
	grid *Grid
	out  io.Writer
}

// Option configures a Universe at construction
type Option func(u *Universe)

// WithOutput sets where rule passes write their snapshots. Writes only
// happen while the guard is held.
func WithOutput(w io.Writer) Option {
	return func(u *Universe) {
		u.out = w
	}
}

// NewUniverse creates a rows x cols universe seeded with the glider
// pattern around its center.
func NewUniverse(rows, cols int, opts ...Option) (*Universe, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewUniverse] rows=%d cols=%d", rows, cols)
	}

	grid := NewGrid(rows, cols)
	centerRow, centerCol := rows/2, cols/2
	for _, off := range GliderOffsets {
		row, col := centerRow+off[0], centerCol+off[1]
		if !grid.inBounds(row, col) {
			return nil, errors.Wrapf(ErrDimensionTooSmall,
				"[NewUniverse] seed cell (%d,%d) outside %dx%d grid", row, col, rows, cols)
		}
		grid.Set(row, col, true)
	}

	u := &Universe{
		grid: grid,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Rows returns the fixed row count
func (u *Universe) Rows() int {
	return u.grid.rows
}

// Cols returns the fixed column count
func (u *Universe) Cols() int {
	return u.grid.cols
}

// Output returns the snapshot writer
func (u *Universe) Output() io.Writer {
	return u.out
}

// WithExclusiveAccess runs fn while holding the universe guard. The guard
// is released on every exit path, panics included. fn must not retain g
// or call other guarded Universe methods.
func (u *Universe) WithExclusiveAccess(fn func(g *Grid)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u.grid)
}

// NeighborCount returns the number of living neighbors of (row, col)
func (u *Universe) NeighborCount(row, col int) (n int) {
	u.WithExclusiveAccess(func(g *Grid) {
		n = g.CountNeighbors(row, col)
	})
	return
}

// Render returns a text snapshot of the current grid
func (u *Universe) Render() (text string) {
	u.WithExclusiveAccess(func(g *Grid) {
		text = Render(g)
	})
	return
}

// Snapshot returns a copy of the grid taken under the guard
func (u *Universe) Snapshot() (snap *Grid) {
	u.WithExclusiveAccess(func(g *Grid) {
		snap = g.Clone()
	})
	return
}

// LiveCells returns the number of living cells
func (u *Universe) LiveCells() (n int) {
	u.WithExclusiveAccess(func(g *Grid) {
		n = g.CountLivingCells()
	})
	return
}

// Hash returns the grid hash taken under the guard
func (u *Universe) Hash() (h string) {
	u.WithExclusiveAccess(func(g *Grid) {
		h = g.GetGridHash()
	})
	return
}
