package board

// Position is the complete, immutable-from-the-search's-perspective game
// state: the board, each side's cumulative observed food score, and
// whose turn it is.
type Position struct {
	Board Board
	Score [2]int
	Turn  Tile
}

// NewStartingPosition returns the Position with both sides' ants in
// their home ranks, matching the referee's initial layout
// (original_source/client/tucants_game.hpp: is_starting_board).
// White occupies rows 0-2, Black occupies rows 9-11.
func NewStartingPosition() Position {
	pos := Position{Board: Blank(), Turn: White}
	whiteRows := [3][4]int{
		{1, 3, 5, 7},
		{0, 2, 4, 6},
		{1, 3, 5, 7},
	}
	for i, cols := range whiteRows {
		for _, c := range cols {
			pos.Board.Set(i, c, White)
		}
	}
	blackRows := [3][4]int{
		{0, 2, 4, 6},
		{1, 3, 5, 7},
		{0, 2, 4, 6},
	}
	for i, cols := range blackRows {
		pos.Board.Set(11-i, cols[0], Black)
		pos.Board.Set(11-i, cols[1], Black)
		pos.Board.Set(11-i, cols[2], Black)
		pos.Board.Set(11-i, cols[3], Black)
	}
	return pos
}

// IsStartingPosition reports whether pos matches the referee's initial
// layout, ignoring score and turn. Used by the agent loop to detect a
// game reset (original_source/client/tucants_game.hpp: is_starting_board).
func (pos *Position) IsStartingPosition() bool {
	want := NewStartingPosition()
	return pos.Board == want.Board
}

// Clone returns a deep copy of pos. Board is an array so this is a plain
// value copy; kept as a named method so call sites read like the rest of
// the clone-and-mutate search machinery.
func (pos Position) Clone() Position {
	return pos
}

// AntsRemoved returns how many ants of color c have been removed from
// the board relative to the starting count of 12.
func (pos *Position) AntsRemoved(c Tile) int {
	const initialAnts = 12
	return initialAnts - pos.Board.AntCount(c)
}
