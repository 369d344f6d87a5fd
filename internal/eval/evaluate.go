// Package eval implements the Tucants position evaluator: a static
// position-value table plus mobility, protection, and threat terms
// combined into a signed utility. Grounded on engine/material.go and
// engine/weights.go (material plus positional scoring folded into one
// function) and, for the exact formula, on
// original_source/client/tucants_game.hpp: player_utility.
package eval

import (
	"github.com/croatoan/tucants/internal/board"
	"github.com/croatoan/tucants/internal/game"
	"github.com/croatoan/tucants/internal/rules"
)

// Evaluate returns s's utility from the perspective of s.OwnColor:
// player_utility(state, own) + score[own] -
// (player_utility(state, opponent) + score[opponent]).
func Evaluate(s *game.State) int {
	own := s.OwnColor
	opp := board.Opponent(own)

	ownValue := playerUtility(s, own) + s.Position.Score[own]
	oppValue := playerUtility(s, opp) + s.Position.Score[opp]
	return ownValue - oppValue
}

// playerUtility scores the board from color c's perspective alone,
// ignoring the opponent's score tally.
func playerUtility(s *game.State, c board.Tile) int {
	total := 0
	for r := 0; r < board.Rows; r++ {
		for col := 0; col < board.Cols; col++ {
			if s.Position.Board.Get(r, col) != c {
				continue
			}
			total += positionTable[c][r][col]
			total += mobilityAndCaptures(&s.Position, r, col)
			total += protectionBonus(&s.Position, r, col, c)
		}
	}

	total -= 2 * opponentCaptureThreat(&s.Position, c)

	if s.Position.Turn == c {
		total += 2 * s.FoodObtained
	}
	return total
}

// mobilityAndCaptures adds one per legal move the ant at (row,col) has,
// plus one per capture any of those moves achieves.
func mobilityAndCaptures(pos *board.Position, row, col int) int {
	moves := rules.MovesForAnt(pos, row, col)
	total := len(moves)
	for _, m := range moves {
		total += m.NumCaptures()
	}
	return total
}

// protectionBonus adds 1 for each diagonally-forward adjacent own-ant,
// up to 2.
func protectionBonus(pos *board.Position, row, col int, c board.Tile) int {
	d1, d2 := rules.ForwardDiagonals(row, col, c)
	bonus := 0
	for _, d := range [2][2]int{d1, d2} {
		if board.InBounds(d[0], d[1]) && pos.Board.Get(d[0], d[1]) == c {
			bonus++
		}
	}
	return bonus
}

// opponentCaptureThreat returns the total num_captures across every
// move the opponent of c could make if it had the move right now,
// computed by invoking the generator with turn flipped.
func opponentCaptureThreat(pos *board.Position, c board.Tile) int {
	opp := board.Opponent(c)
	flipped := *pos
	flipped.Turn = opp

	total := 0
	for _, m := range rules.LegalMoves(&flipped, opp) {
		total += m.NumCaptures()
	}
	return total
}
