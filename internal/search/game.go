package search

import "github.com/croatoan/tucants/internal/game"

// MinUtility and MaxUtility stand in for the trait's min_utility() and
// max_utility(): the engine's window bounds before any real evaluation
// has narrowed them.
const (
	MinUtility = -1 << 30
	MaxUtility = 1 << 30
)

// Game is the capability bundle the engine is generic over: successors,
// evaluator, ordering and cutoff. The min/max comparison helpers the
// expectiminimax dispatch needs are package-level functions below, not
// interface methods, since Utility is always int. It is written as a plain interface
// rather than a type-parameterized one, matching the pre-generics style
// of the codebase this engine is descended from - a second Game
// implementation is pluggable without touching Engine as long as it
// satisfies this interface.
type Game interface {
	// Successors expands s into its (action, child, probability) list,
	// already including capture precedence / chance-node tagging.
	Successors(s game.State) []game.Successor
	// Evaluate scores a state from the searching agent's perspective.
	Evaluate(s *game.State) int
	// Order reorders succs in place to improve alpha-beta cuts.
	Order(succs []game.Successor)
	// Cutoff reports whether s is a terminal state.
	Cutoff(s *game.State) bool
}

// maxCmp and minCmp stand in for the trait's max_cmp/min_cmp: plain
// integer max/min, since Utility is always a scalar int here.
func maxCmp(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minCmp(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// cmp is the trait's three-way cmp, used only for the alpha/beta
// crossover tests in value().
func cmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
