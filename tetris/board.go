package tetris

import (
	"errors"
	"strings"

	"github.com/kamstrup/intmap"
)

// Default board dimensions.
const (
	DefaultCols = 10
	DefaultRows = 16
)

// Placement failure reasons returned by ValidSpaces.
var (
	// ErrOutOfBounds reports a placement with an occupied mask cell
	// outside the board.
	ErrOutOfBounds = errors.New("tetris: placement out of bounds")

	// ErrOverlap reports a placement with an occupied mask cell on an
	// already occupied board cell.
	ErrOverlap = errors.New("tetris: placement overlaps occupied cells")
)

// HeightMode selects how the board summarizes per-column fill for hard
// drop resolution.
type HeightMode uint8

const (
	// HeightApprox counts placed cells per column. This is the
	// historical behavior: a piece that leaves an overhang (an occupied
	// cell with empty cells beneath it in the same column) makes the
	// count diverge from the real stack top, so later drops into that
	// column misjudge the available space.
	HeightApprox HeightMode = iota

	// HeightExact tracks the topmost occupied row per column, so drops
	// always rest on the actual stack top, overhangs included.
	HeightExact
)

func (m HeightMode) String() string {
	switch m {
	case HeightApprox:
		return "approx"
	case HeightExact:
		return "exact"
	}
	return "unknown"
}

// Board is a fixed-size grid of occupied cells with placement
// validation and hard-drop resolution. Cells transition free->occupied
// exactly once; nothing in this package ever frees a cell again.
//
// A Board is exclusively owned by the single caller driving it; it is
// not safe for concurrent mutation.
type Board struct {
	rows, cols int
	mode       HeightMode

	// occupied maps packed cell keys to the kind that was placed there.
	occupied *intmap.Map[CellKey, Kind]

	// filledRows[r] counts occupied cells in row r. filledCols[c] is
	// the column height summary: placed-cell count in HeightApprox
	// mode, rows minus the topmost occupied row in HeightExact mode.
	// Either way, rows-filledCols[c] is the first row Drop treats as
	// free in column c.
	filledRows []int
	filledCols []int
}

// NewBoard creates an empty cols x rows board. Dimensions must be
// positive. The optional mode selects the column height accounting;
// the default is HeightApprox.
func NewBoard(cols, rows int, mode ...HeightMode) *Board {
	if cols <= 0 || rows <= 0 {
		panic("board dimensions must be positive")
	}

	b := &Board{
		rows:       rows,
		cols:       cols,
		occupied:   intmap.New[CellKey, Kind](rows * cols),
		filledRows: make([]int, rows),
		filledCols: make([]int, cols),
	}
	if len(mode) > 0 {
		b.mode = mode[0]
	}
	return b
}

// Rows returns the board's row count.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board's column count.
func (b *Board) Cols() int {
	return b.cols
}

// Mode returns the column height accounting mode.
func (b *Board) Mode() HeightMode {
	return b.mode
}

// OutOfBounds reports whether (row, col) lies outside the board.
func (b *Board) OutOfBounds(row, col int) bool {
	return row < 0 || row >= b.rows || col < 0 || col >= b.cols
}

// Occupied reports whether the board cell at (row, col) is occupied.
// Out-of-bounds coordinates are never occupied.
func (b *Board) Occupied(row, col int) bool {
	return b.occupied.Has(NewCellKey(row, col))
}

// KindAt returns the kind that was placed at (row, col) and whether
// the cell is occupied at all.
func (b *Board) KindAt(row, col int) (Kind, bool) {
	return b.occupied.Get(NewCellKey(row, col))
}

// FilledRow returns the number of occupied cells in the given row.
func (b *Board) FilledRow(row int) int {
	return b.filledRows[row]
}

// ColumnFill returns the column height summary Drop uses for the given
// column. Its meaning depends on the board's HeightMode.
func (b *Board) ColumnFill(col int) int {
	return b.filledCols[col]
}

// ValidSpaces returns the board cells the piece's occupied mask cells
// would cover at its current position: exactly BrickCount cells on
// success, or a nil slice with ErrOutOfBounds or ErrOverlap on the
// first offending cell. Empty mask cells are never checked, even when
// their absolute coordinates would fall outside the board.
func (b *Board) ValidSpaces(p *Piece) ([]Cell, error) {
	shape := p.Shape()
	spaces := make([]Cell, 0, BrickCount)

	for maskRow := 0; maskRow < ShapeSize; maskRow++ {
		for maskCol := 0; maskCol < ShapeSize; maskCol++ {
			if !shape[maskRow][maskCol] {
				continue
			}

			row := p.TopLeft.Row + maskRow
			col := p.TopLeft.Col + maskCol
			if b.OutOfBounds(row, col) {
				return nil, ErrOutOfBounds
			}
			if b.occupied.Has(NewCellKey(row, col)) {
				return nil, ErrOverlap
			}

			spaces = append(spaces, Cell{Row: row, Col: col})
			if len(spaces) == BrickCount {
				return spaces, nil
			}
		}
	}

	return spaces, nil
}

// Place commits the piece at its current position, marking its four
// cells occupied and updating the row and column summaries. An invalid
// placement is a silent no-op and mutates nothing; callers that need
// failure feedback call ValidSpaces themselves first.
func (b *Board) Place(p *Piece) {
	spaces, err := b.ValidSpaces(p)
	if err != nil {
		return
	}

	for _, cell := range spaces {
		b.occupied.Put(cell.Key(), p.kind)
		b.filledRows[cell.Row]++

		switch b.mode {
		case HeightApprox:
			b.filledCols[cell.Col]++
		case HeightExact:
			if height := b.rows - cell.Row; height > b.filledCols[cell.Col] {
				b.filledCols[cell.Col] = height
			}
		}
	}
}

// Drop hard-drops the piece: it resolves the lowest legal row for the
// piece's current column position, moves the piece there (column
// unchanged), and places it.
//
// For each skirt column with a brick, the candidate landing row is the
// first free row of the board column (per the column fill summary)
// minus the skirt clearance; the smallest candidate wins, since a
// smaller row index means less room. Columns whose board coordinates
// are out of bounds contribute no candidate; if every column is out of
// bounds the piece keeps its original row. The final Place may still
// no-op if the resolved position overlaps, which HeightApprox boards
// can produce for columns containing overhangs.
func (b *Board) Drop(p *Piece) {
	skirt := p.Skirt()

	landing := p.TopLeft.Row
	resolved := false

	for c := 0; c < ShapeSize; c++ {
		if skirt[c] == 0 {
			continue
		}

		col := p.TopLeft.Col + c
		if b.OutOfBounds(p.TopLeft.Row, col) {
			continue
		}

		nextFree := b.rows - b.filledCols[col]
		candidate := nextFree - skirt[c]
		if !resolved || candidate < landing {
			landing = candidate
			resolved = true
		}
	}

	p.TopLeft.Row = landing
	b.Place(p)
}

// String renders the grid as rows x cols newline-terminated lines, "o"
// for an occupied cell and a space for a free one. Debug aid only.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.occupied.Has(NewCellKey(row, col)) {
				sb.WriteByte('o')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
