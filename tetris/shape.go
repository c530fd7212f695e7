package tetris

import "strings"

const (
	// ShapeSize is the side length of a rotation mask.
	ShapeSize = 4

	// BrickCount is the number of occupied cells in every tetromino shape.
	BrickCount = 4

	// RotationCount is the number of rotation states per kind.
	RotationCount = 4
)

// Shape is one rotation state of a tetromino: a 4x4 occupancy mask.
// The zero value is an empty mask. Shapes are value types; catalog
// lookups hand out copies, so a Shape can never be mutated in place.
type Shape [ShapeSize][ShapeSize]bool

// Skirt holds, for each mask column, 1 + the lowest occupied row index,
// or 0 if the column has no occupied cells. It is the minimum vertical
// clearance a column of the piece needs when dropping.
type Skirt [ShapeSize]int

// At reports whether the mask cell at (row, col) is occupied.
func (s Shape) At(row, col int) bool {
	return s[row][col]
}

// skirt derives the skirt for this shape by scanning each column
// top to bottom. The catalog precomputes and caches the result once
// per rotation state; drop queries never call this.
func (s Shape) skirt() Skirt {
	var sk Skirt
	for col := 0; col < ShapeSize; col++ {
		for row := 0; row < ShapeSize; row++ {
			if s[row][col] {
				sk[col] = row + 1
			}
		}
	}
	return sk
}

// String renders the mask as 4 newline-terminated rows, "o" for an
// occupied cell and a space for an empty one. Debug aid only.
func (s Shape) String() string {
	var sb strings.Builder
	for row := 0; row < ShapeSize; row++ {
		for col := 0; col < ShapeSize; col++ {
			if s[row][col] {
				sb.WriteByte('o')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// parseShape builds a Shape from 4 rows of string art, 'o' marking an
// occupied cell and '.' an empty one. Used only for the catalog tables.
func parseShape(rows [ShapeSize]string) Shape {
	var s Shape
	for row, line := range rows {
		if len(line) != ShapeSize {
			panic("shape row \"" + line + "\" is not 4 characters wide")
		}
		for col := 0; col < ShapeSize; col++ {
			s[row][col] = line[col] == 'o'
		}
	}
	return s
}
