package search

import (
	"sort"

	"github.com/croatoan/tucants/internal/eval"
	"github.com/croatoan/tucants/internal/game"
)

// TucantsGame implements Game over the ant-and-food board. It holds no
// state of its own; every method is a pure function of the state it is
// given.
type TucantsGame struct{}

func (TucantsGame) Successors(s game.State) []game.Successor {
	return game.Successors(s)
}

func (TucantsGame) Evaluate(s *game.State) int {
	return eval.Evaluate(s)
}

// Order stably sorts succs in ascending evaluator value of the child
// state. Ascending order at a Max node hands alpha-beta its weakest
// successors first, which in classical alpha-beta hurts pruning rather
// than helping it - kept as-is rather than flipped to descending; see
// DESIGN.md.
func (g TucantsGame) Order(succs []game.Successor) {
	sort.SliceStable(succs, func(i, j int) bool {
		vi := g.Evaluate(&succs[i].State)
		vj := g.Evaluate(&succs[j].State)
		return vi < vj
	})
}

// Cutoff reports whether every cell is devoid of ants.
func (TucantsGame) Cutoff(s *game.State) bool {
	return s.Position.Board.AllAntsRemoved()
}
