package rules

import "github.com/croatoan/tucants/internal/board"

// Apply plays m on a copy of pos and returns the resulting position.
// The probabilistic resolution of food encountered along the path is
// NOT performed here - that happens at the chance node built on top of
// this successor (see internal/game). Apply still credits the mover's
// score deterministically for any capture hop whose landing cell is
// Food; this produces the same "observed food" bookkeeping the original
// client keeps in Position.score, with the chance node's FoodObtained
// acting as a separate, transient evaluation signal rather than a
// correction to this deterministic tally.
func Apply(pos board.Position, m board.Move) board.Position {
	mover := m.Color
	if m.IsNull() {
		pos.Turn = board.Opponent(pos.Turn)
		return pos
	}

	l := m.Len()
	startRow, startCol := m.At(0)
	pos.Board.Set(startRow, startCol, board.Empty)

	for i := 1; i < l; i++ {
		prevRow, prevCol := m.At(i - 1)
		row, col := m.At(i)
		dr, dc := row-prevRow, col-prevCol
		if abs(dr) == 2 && abs(dc) == 2 {
			midRow, midCol := prevRow+dr/2, prevCol+dc/2
			pos.Board.Set(midRow, midCol, board.Empty)
			if pos.Board.Get(row, col) == board.Food {
				pos.Score[mover]++
			}
		}
	}

	finalRow, finalCol := m.At(l - 1)
	pos.Board.Set(finalRow, finalCol, mover)
	pos.Turn = board.Opponent(pos.Turn)
	return pos
}

// FoodCellsOnPath counts how many cells of m's path (after the start)
// are Food tiles on pos, the position *before* m is applied. Used by
// the non-chance move expansion to decide whether a successor becomes a
// chance node.
func FoodCellsOnPath(pos *board.Position, m board.Move) int {
	if m.IsNull() {
		return 0
	}
	n := 0
	for i := 1; i < m.Len(); i++ {
		row, col := m.At(i)
		if pos.Board.Get(row, col) == board.Food {
			n++
		}
	}
	return n
}
