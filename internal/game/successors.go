package game

import (
	"github.com/croatoan/tucants/internal/board"
	"github.com/croatoan/tucants/internal/rules"
)

// Successor is one (action, successor state, probability) triple
// produced by the move generator.
type Successor struct {
	Move        board.Move
	State       State
	Probability float64
}

// Successors expands s according to its node kind: ordinary move
// generation with food-tagging for non-chance nodes, or stochastic food
// resolution for chance nodes.
func Successors(s State) []Successor {
	if s.Kind() == ChanceNode {
		return chanceSuccessors(s)
	}
	return moveSuccessors(s)
}

// moveSuccessors implements the non-chance expansion: every legal move
// for the side to move, each tagged as a chance node if its path
// crosses Food.
func moveSuccessors(s State) []Successor {
	moves := rules.LegalMoves(&s.Position, s.Position.Turn)
	out := make([]Successor, 0, len(moves))
	for _, m := range moves {
		foodCells := rules.FoodCellsOnPath(&s.Position, m)

		child := s
		child.Position = rules.Apply(s.Position, m)
		child.ChanceNode = false
		child.FoodObtained = 0
		child.PendingMove = board.Move{}
		child.pendingFoodCells = 0

		if foodCells > 0 {
			child.ChanceNode = true
			child.PendingMove = m
			child.pendingFoodCells = foodCells
		}

		out = append(out, Successor{Move: m, State: child, Probability: 0})
	}
	return out
}

// chanceSuccessors implements the chance expansion: the pending move
// crossed 1 or 2 Food tiles, each resolved independently at 1/3 odds.
func chanceSuccessors(s State) []Successor {
	switch s.pendingFoodCells {
	case 1:
		return []Successor{
			resolvedChild(s, 1, 1.0/3.0),
			resolvedChild(s, 0, 2.0/3.0),
		}
	case 2:
		return []Successor{
			resolvedChild(s, 0, 4.0/9.0),
			resolvedChild(s, 1, 4.0/9.0),
			resolvedChild(s, 2, 1.0/9.0),
		}
	default:
		// A chance node always has 1 or 2 food cells on its pending
		// move's path; this branch is unreachable for any state
		// produced by moveSuccessors.
		return nil
	}
}

func resolvedChild(s State, foodObtained int, probability float64) Successor {
	child := s
	child.ChanceNode = false
	child.FoodObtained = foodObtained
	child.pendingFoodCells = 0
	return Successor{Move: s.PendingMove, State: child, Probability: probability}
}
