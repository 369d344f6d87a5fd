package board

// pathLen is the maximum number of cells a move's path can hold: a chain
// of up to 5 captures (6 cells) or a null move (0 cells).
const pathLen = 6

// none is the sentinel stored in Row/Col past the end of a path.
const none int8 = -1

// Move is a path of up to pathLen cells, stored as two parallel arrays of
// row/col bytes. A sentinel of -1 in the row slot at index k means the
// path has length k. A whole row of -1 (length 0) is the null move.
type Move struct {
	Row   [pathLen]int8
	Col   [pathLen]int8
	Color Tile
}

// NullMove returns the pass move for color c: a zero-length path.
func NullMove(c Tile) Move {
	m := Move{Color: c}
	for i := range m.Row {
		m.Row[i] = none
		m.Col[i] = none
	}
	return m
}

// NewMove builds a move from explicit path cells.
func NewMove(c Tile, cells ...[2]int) Move {
	m := NullMove(c)
	for i, cell := range cells {
		m.Row[i] = int8(cell[0])
		m.Col[i] = int8(cell[1])
	}
	return m
}

// Len returns the number of cells in the path (0 for a null move).
func (m Move) Len() int {
	for i, r := range m.Row {
		if r == none {
			return i
		}
	}
	return pathLen
}

// IsNull reports whether m is the pass move.
func (m Move) IsNull() bool {
	return m.Row[0] == none
}

// At returns the (row, col) of the i'th cell of the path.
func (m Move) At(i int) (row, col int) {
	return int(m.Row[i]), int(m.Col[i])
}

// NumCaptures returns the number of ants this move removes from the
// board. A move is a capture iff its first hop has a diagonal delta of
// 2 in both row and col; every hop in a move is homogeneous (either the
// whole move is a single step, or it is a chain of jumps), so checking
// the first hop is sufficient.
//
// A capture's path has one more cell than it has jumps (path_length
// cells, path_length-1 jumps, one ant removed per jump), so the count
// is path_length-1: a single jump has path length 2 and removes exactly
// one ant, matching the original num_captured_ants (sentinel index
// minus one). See DESIGN.md.
func (m Move) NumCaptures() int {
	l := m.Len()
	if l < 2 {
		return 0
	}
	dr := int(m.Row[0]) - int(m.Row[1])
	dc := int(m.Col[0]) - int(m.Col[1])
	if abs(dr) == 2 && abs(dc) == 2 {
		return l - 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
