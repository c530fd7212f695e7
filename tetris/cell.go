package tetris

// Cell is a board coordinate. Row 0 is the top row, Col 0 the leftmost column.
type Cell struct {
	Row, Col int
}

// CellKey encodes both the row (upper 32 bits) and the column (lower 32 bits)
// of a board cell, for use as a single integer map key.
type CellKey uint64

// NewCellKey creates a CellKey from a row and column.
func NewCellKey(row, col int) CellKey {
	return CellKey(uint64(uint32(row))<<32 | uint64(uint32(col)))
}

// Row extracts the row from the cell key.
func (k CellKey) Row() int {
	return int(int32(k >> 32))
}

// Col extracts the column from the cell key.
func (k CellKey) Col() int {
	return int(int32(k & 0xFFFFFFFF))
}

// Key returns the packed key for this cell.
func (c Cell) Key() CellKey {
	return NewCellKey(c.Row, c.Col)
}
