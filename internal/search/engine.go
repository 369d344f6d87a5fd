package search

import (
	"time"

	"github.com/croatoan/tucants/internal/board"
	"github.com/croatoan/tucants/internal/game"
)

// Engine runs iterative-deepening alpha-beta expectiminimax over a
// Game. It carries no per-search mutable state beyond the Game it was
// built with, so one Engine can be reused across many moves without
// being rebuilt.
type Engine struct {
	Game Game
}

// NewEngine returns an Engine over g.
func NewEngine(g Game) *Engine {
	return &Engine{Game: g}
}

// Decide runs iterative deepening under a budgetMs millisecond
// deadline and returns the best move found at the deepest depth that
// completed.
func (e *Engine) Decide(s game.State, budgetMs int) board.Move {
	clock := NewDeadlineClock(time.Duration(budgetMs) * time.Millisecond)

	var stack []board.Move
	for depth := 0; ; depth++ {
		action := e.decideToDepth(s, depth, clock)
		if clock.Expired() {
			if len(stack) > 0 {
				return stack[len(stack)-1]
			}
			return action
		}
		stack = append(stack, action)
	}
}

// decideToDepth expands and orders the root's successors (the root is
// always treated as a Max node for action selection, regardless of its
// actual node kind) and picks the one with the greatest depth-limited
// value.
func (e *Engine) decideToDepth(s game.State, depth int, clock *DeadlineClock) board.Move {
	succs := e.Game.Successors(s)
	if len(succs) == 0 {
		return board.NullMove(s.Position.Turn)
	}
	e.Game.Order(succs)

	best := succs[0].Move
	bestValue := MinUtility
	for _, succ := range succs {
		child := succ.State
		v := e.value(&child, MinUtility, MaxUtility, depth, clock)
		if v > bestValue {
			bestValue = v
			best = succ.Move
		}
	}
	return best
}

// value implements the recursive expectiminimax with alpha-beta
// pruning.
func (e *Engine) value(s *game.State, alpha, beta, depth int, clock *DeadlineClock) int {
	if depth == 0 || e.Game.Cutoff(s) || clock.Expired() {
		return e.Game.Evaluate(s)
	}

	switch s.Kind() {
	case game.MaxNode:
		succs := e.Game.Successors(*s)
		e.Game.Order(succs)
		a := alpha
		for _, succ := range succs {
			child := succ.State
			v := e.value(&child, a, beta, depth-1, clock)
			a = maxCmp(a, v)
			if cmp(a, beta) >= 0 {
				return beta
			}
		}
		return a

	case game.MinNode:
		succs := e.Game.Successors(*s)
		e.Game.Order(succs)
		b := beta
		for _, succ := range succs {
			child := succ.State
			v := e.value(&child, alpha, b, depth-1, clock)
			b = minCmp(b, v)
			if cmp(b, alpha) <= 0 {
				return alpha
			}
		}
		return b

	case game.ChanceNode:
		succs := e.Game.Successors(*s)
		e.Game.Order(succs)
		total := 0.0
		for _, succ := range succs {
			child := succ.State
			v := e.value(&child, alpha, beta, depth-1, clock)
			total += succ.Probability * float64(v)
		}
		return int(total)

	default:
		// Node kind is a three-variant derived value; any other
		// result means Kind() itself is broken, not that the search
		// hit a real game state.
		panic("search: unreachable node kind")
	}
}
