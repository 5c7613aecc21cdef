package rules

import (
	"io"

	"github.com/sheikhrachel/go-gol-universe/model"
)

// Operation is one transition pass run against a shared universe
type Operation interface {
	Rule
	Apply(u *model.Universe)
}

// Rule decides the next state of a single cell
type Rule interface {
	Name() string
	Next(alive bool, neighbors int) bool
}

// UnderPopulation kills live cells with fewer than two live neighbors
type UnderPopulation struct{ Mode Mode }

func (UnderPopulation) Name() string { return "UnderPopulation" }

func (UnderPopulation) Next(alive bool, neighbors int) bool {
	return alive && neighbors >= 2
}

func (op UnderPopulation) Apply(u *model.Universe) { applyPass(u, op, op.Mode) }

// NextGeneration keeps live cells with two or three live neighbors and
// clears every other cell.
type NextGeneration struct{ Mode Mode }

func (NextGeneration) Name() string { return "NextGeneration" }

func (NextGeneration) Next(alive bool, neighbors int) bool {
	return alive && (neighbors == 2 || neighbors == 3)
}

func (op NextGeneration) Apply(u *model.Universe) { applyPass(u, op, op.Mode) }

// Overcrowd kills live cells with more than three live neighbors
type Overcrowd struct{ Mode Mode }

func (Overcrowd) Name() string { return "Overcrowd" }

func (Overcrowd) Next(alive bool, neighbors int) bool {
	return alive && neighbors <= 3
}

func (op Overcrowd) Apply(u *model.Universe) { applyPass(u, op, op.Mode) }

// Reproduction brings dead cells with exactly three live neighbors to life
type Reproduction struct{ Mode Mode }

func (Reproduction) Name() string { return "Reproduction" }

func (Reproduction) Next(alive bool, neighbors int) bool {
	return alive || neighbors == 3
}

func (op Reproduction) Apply(u *model.Universe) { applyPass(u, op, op.Mode) }

// Generation applies all four rules as one combined transition
type Generation struct{ Mode Mode }

func (Generation) Name() string { return "Generation" }

func (Generation) Next(alive bool, neighbors int) bool {
	return ApplyConwayRules(neighbors, alive)
}

func (op Generation) Apply(u *model.Universe) { applyPass(u, op, op.Mode) }

// FourPass returns the four classical rules as separate operations
func FourPass(mode Mode) []Operation {
	return []Operation{
		UnderPopulation{Mode: mode},
		NextGeneration{Mode: mode},
		Overcrowd{Mode: mode},
		Reproduction{Mode: mode},
	}
}

// applyPass holds the guard for the whole read, modify and render sequence
func applyPass(u *model.Universe, r Rule, mode Mode) {
	u.WithExclusiveAccess(func(g *model.Grid) {
		Step(g, r, mode)
		_, _ = io.WriteString(u.Output(), model.RenderTitled(r.Name(), g))
	})
}
