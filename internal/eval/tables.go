package eval

import "github.com/croatoan/tucants/internal/board"

// positionTable holds the static position-value table for each color,
// indexed [color][row][col]. Values grounded on
// original_source/client/tucants_game.hpp: board_utilities - on the
// six middle ranks (rows 3-8) edge-column squares are weighted 5 and
// the other squares 1; in each color's table its own three home ranks
// are weighted 2 and the opponent's three home ranks 3, matching the
// source table exactly.
var positionTable = [2][board.Rows][board.Cols]int{
	board.White: {
		{0, 2, 0, 2, 0, 2, 0, 2},
		{2, 0, 2, 0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0, 2, 0, 2},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{3, 0, 3, 0, 3, 0, 3, 0},
		{0, 3, 0, 3, 0, 3, 0, 3},
		{3, 0, 3, 0, 3, 0, 3, 0},
	},
	board.Black: {
		{0, 3, 0, 3, 0, 3, 0, 3},
		{3, 0, 3, 0, 3, 0, 3, 0},
		{0, 3, 0, 3, 0, 3, 0, 3},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{5, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 5},
		{2, 0, 2, 0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0, 2, 0, 2},
		{2, 0, 2, 0, 2, 0, 2, 0},
	},
}
