package rules

import "github.com/sheikhrachel/go-gol-universe/model"

// Mode selects how a pass reads the grid it is updating
type Mode int

const (
	// Buffered reads every neighbor count from the grid as it was when the
	// pass started, then commits all new states at once.
	Buffered Mode = iota
	// InPlace updates cells while iterating, so later cells in row-major
	// order can see earlier updates from the same pass.
	InPlace
)

func (m Mode) String() string {
	if m == InPlace {
		return "in-place"
	}
	return "buffered"
}

var scratchPool = model.NewGridPool()

// Step applies r to every cell of g in row-major order. The caller must
// hold exclusive access to g.
func Step(g *model.Grid, r Rule, mode Mode) {
	rows, cols := g.GetRows(), g.GetCols()

	if mode == InPlace {
		for row := range rows {
			for col := range cols {
				g.Set(row, col, r.Next(g.Get(row, col), g.CountNeighbors(row, col)))
			}
		}
		return
	}

	next := scratchPool.Get(rows, cols)
	defer scratchPool.Put(next)

	for row := range rows {
		for col := range cols {
			if r.Next(g.Get(row, col), g.CountNeighbors(row, col)) {
				next.Set(row, col, true)
			}
		}
	}
	g.CopyFrom(next)
}
