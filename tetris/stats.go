package tetris

// BoardStats is a point-in-time snapshot of board occupancy, suitable
// for inspectors and debug overlays.
type BoardStats struct {
	Rows          int
	Cols          int
	Mode          HeightMode
	OccupiedCells int

	// RowFill[r] is the occupied-cell count of row r. ColumnFill[c] is
	// the column height summary used by Drop.
	RowFill    []int
	ColumnFill []int
}

// CollectStats gathers occupancy statistics from the board. The
// returned slices are copies; mutating them does not affect the board.
func (b *Board) CollectStats() BoardStats {
	stats := BoardStats{
		Rows:          b.rows,
		Cols:          b.cols,
		Mode:          b.mode,
		OccupiedCells: b.occupied.Len(),
		RowFill:       make([]int, b.rows),
		ColumnFill:    make([]int, b.cols),
	}
	copy(stats.RowFill, b.filledRows)
	copy(stats.ColumnFill, b.filledCols)
	return stats
}
