// Package rules implements the Tucants move generator: per-ant step and
// jump rules, capture chaining, and the mandatory-capture precedence
// that governs which pseudo-legal moves are actually legal. It mirrors
// the shape of engine/attack.go (per-piece move rules) and
// engine/moves.go (assembling and filtering the move list), but the
// algorithm itself is grounded directly on
// original_source/client/tucants_game.hpp (which_moves,
// which_moves_captivity_case, move_once, make_move_in_same_direction).
package rules

import "github.com/croatoan/tucants/internal/board"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// forwardDirection returns the row delta an ant of color c advances by.
func forwardDirection(c board.Tile) int {
	if c == board.White {
		return 1
	}
	return -1
}

// forwardDiagonals returns the two cells an ant at (row, col) can step
// or jump toward.
func forwardDiagonals(row, col int, c board.Tile) (d1, d2 [2]int) {
	dr := forwardDirection(c)
	return [2]int{row + dr, col - 1}, [2]int{row + dr, col + 1}
}

// ForwardDiagonals exposes forwardDiagonals for the evaluator's
// adjacency/protection heuristic.
func ForwardDiagonals(row, col int, c board.Tile) (d1, d2 [2]int) {
	return forwardDiagonals(row, col, c)
}

// landingBeyond returns the cell reached by continuing straight through
// (overRow, overCol) from (row, col) - i.e. the jump landing when
// capturing the ant sitting at (overRow, overCol).
func landingBeyond(row, col, overRow, overCol int) (int, int) {
	dr := overRow - row
	dc := overCol - col
	return overRow + dr, overCol + dc
}

func simpleMove(c board.Tile, fromRow, fromCol, toRow, toCol int) board.Move {
	return board.NewMove(c, [2]int{fromRow, fromCol}, [2]int{toRow, toCol})
}

// suppressed implements the local one-step suppression rule: a
// non-capturing move toward (row,col)'s chosen diagonal is dropped when
// the *other* diagonal has an adjacent opponent ant whose capture
// landing is empty (a real capture is available there). The condition
// tests landing occupancy, not full legality of the other capture; see
// DESIGN.md.
func suppressed(pos *board.Position, row, col, otherDiagRow, otherDiagCol int, c board.Tile) bool {
	if !board.InBounds(otherDiagRow, otherDiagCol) {
		return false
	}
	if pos.Board.Get(otherDiagRow, otherDiagCol) != board.Opponent(c) {
		return false
	}
	landRow, landCol := landingBeyond(row, col, otherDiagRow, otherDiagCol)
	if !board.InBounds(landRow, landCol) {
		return false
	}
	return !pos.Board.HasAnt(landRow, landCol)
}

// captureChain returns every full-path capture move that starts at
// (fromRow, fromCol) by jumping over the opponent ant at (overRow,
// overCol), including all further chained jumps from the landing cell.
// Mirrors which_moves_captivity_case.
func captureChain(pos *board.Position, fromRow, fromCol, overRow, overCol int, c board.Tile) []board.Move {
	landRow, landCol := landingBeyond(fromRow, fromCol, overRow, overCol)
	if !board.InBounds(landRow, landCol) || pos.Board.HasAnt(landRow, landCol) {
		return nil
	}

	tails := continueCaptures(pos, landRow, landCol, c)
	if len(tails) == 0 {
		return []board.Move{simpleMove(c, fromRow, fromCol, landRow, landCol)}
	}

	out := make([]board.Move, 0, len(tails))
	for _, tail := range tails {
		m := board.NullMove(c)
		m.Row[0], m.Col[0] = int8(fromRow), int8(fromCol)
		m.Row[1], m.Col[1] = int8(landRow), int8(landCol)
		for i, j := 2, 1; i < len(m.Row); i, j = i+1, j+1 {
			if tail.Row[j] == -1 {
				break
			}
			m.Row[i], m.Col[i] = tail.Row[j], tail.Col[j]
		}
		out = append(out, m)
	}
	return out
}

// continueCaptures looks for further captures from a jump landing at
// (row, col), trying both forward diagonals.
func continueCaptures(pos *board.Position, row, col int, c board.Tile) []board.Move {
	var out []board.Move
	d1, d2 := forwardDiagonals(row, col, c)
	for _, d := range [2][2]int{d1, d2} {
		if !board.InBounds(d[0], d[1]) {
			continue
		}
		if pos.Board.Get(d[0], d[1]) != board.Opponent(c) {
			continue
		}
		out = append(out, captureChain(pos, row, col, d[0], d[1], c)...)
	}
	return out
}

// MovesForAnt returns every pseudo-legal move for the ant at (row, col),
// without applying mandatory-capture precedence across the whole board
// (that's LegalMoves's job). Mirrors which_moves.
func MovesForAnt(pos *board.Position, row, col int) []board.Move {
	c := pos.Board.Get(row, col)
	d1, d2 := forwardDiagonals(row, col, c)

	var moves []board.Move
	for k, d := range [2][2]int{d1, d2} {
		other := d2
		if k == 1 {
			other = d1
		}
		if !board.InBounds(d[0], d[1]) {
			continue
		}
		if pos.Board.Get(d[0], d[1]) == c {
			continue // own color, illegal
		}
		if pos.Board.HasAnt(d[0], d[1]) {
			// occupied by the opponent: attempt a capture
			moves = append(moves, captureChain(pos, row, col, d[0], d[1], c)...)
			continue
		}
		// empty (or food): a plain step, unless suppressed by the
		// other diagonal's available capture.
		if !suppressed(pos, row, col, other[0], other[1], c) {
			moves = append(moves, simpleMove(c, row, col, d[0], d[1]))
		}
	}
	return moves
}

// LegalMoves returns the legal moves for color in pos, enforcing
// mandatory capture precedence: if any pseudo-legal move is a capture,
// only captures are returned.
func LegalMoves(pos *board.Position, c board.Tile) []board.Move {
	var quiet, captures []board.Move
	for r := 0; r < board.Rows; r++ {
		for col := 0; col < board.Cols; col++ {
			if pos.Board.Get(r, col) != c {
				continue
			}
			for _, m := range MovesForAnt(pos, r, col) {
				if m.NumCaptures() > 0 {
					captures = append(captures, m)
				} else {
					quiet = append(quiet, m)
				}
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return quiet
}

// CanMove reports whether color has any legal move in pos.
func CanMove(pos *board.Position, c board.Tile) bool {
	return len(LegalMoves(pos, c)) > 0
}
