// Package game assembles board.Position and rules.LegalMoves into the
// search's GameState and implements the stochastic chance-node
// expansion for food tiles. It plays the role a chess engine's position
// plus search glue would play (engine/basic.go's Position combined with
// engine/moves.go's successor assembly), generalized here to
// expectiminimax over a chance node instead of a plain two-player
// minimax tree.
package game

import "github.com/croatoan/tucants/internal/board"

// NodeKind is the derived kind of a GameState.
type NodeKind int

const (
	MaxNode NodeKind = iota
	MinNode
	ChanceNode
)

func (k NodeKind) String() string {
	switch k {
	case MaxNode:
		return "Max"
	case MinNode:
		return "Min"
	case ChanceNode:
		return "Chance"
	default:
		return "Unknown"
	}
}

// State is the search state wrapper: a Position, the agent's own color,
// whether this node is a chance node, the (possibly still undetermined)
// amount of food obtained, the move pending resolution at a chance
// node, and the running capture counters.
type State struct {
	Position board.Position
	OwnColor board.Tile

	ChanceNode   bool
	FoodObtained int
	PendingMove  board.Move

	PlayerCaptures   int
	OpponentCaptures int

	// pendingFoodCells is how many Food tiles PendingMove's path
	// crosses, computed against the position *before* the move was
	// applied. It has to be cached somewhere: by the time a state is a
	// chance node, Position already reflects the move having been
	// played, so traversed Food tiles can no longer be recovered by
	// inspecting Position itself (the final cell now holds the mover's
	// ant). See DESIGN.md.
	pendingFoodCells int
}

// Kind derives the node kind from ChanceNode and whose turn it is.
func (s *State) Kind() NodeKind {
	if s.ChanceNode {
		return ChanceNode
	}
	if s.Position.Turn == s.OwnColor {
		return MaxNode
	}
	return MinNode
}

// NewGame returns the initial search state for a freshly (re)started
// game, with own as the agent's color.
func NewGame(own board.Tile) State {
	return State{Position: board.NewStartingPosition(), OwnColor: own}
}

// FoodAmount returns the total amount of food each side has obtained,
// combining the observed score with the ants the agent has tallied as
// captured since game start. Mirrors
// original_source/client/tucants_game.hpp: food_amount, kept as a
// diagnostic helper rather than search-core logic; neither the search
// nor the agent loop calls it.
func (s *State) FoodAmount() (white, black int) {
	whiteRemoved := s.Position.AntsRemoved(board.White)
	blackRemoved := s.Position.AntsRemoved(board.Black)

	playerCaptured := s.PlayerCaptures
	opponentCaptured := s.OpponentCaptures

	if s.OwnColor == board.White {
		white = s.Position.Score[board.White] - whiteRemoved + opponentCaptured
		black = s.Position.Score[board.Black] - blackRemoved + playerCaptured
	} else {
		white = s.Position.Score[board.White] - whiteRemoved + playerCaptured
		black = s.Position.Score[board.Black] - blackRemoved + opponentCaptured
	}
	return white, black
}
