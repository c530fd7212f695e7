package tetris_test

import (
	"fmt"

	"github.com/plus3/tetra/tetris"
)

// ExamplePiece demonstrates rotation state transitions. Rotating only
// changes which catalog mask is current; the piece's board position is
// untouched, and no collision checking happens here.
func ExamplePiece() {
	piece := tetris.NewPiece(tetris.T, tetris.Cell{Row: 0, Col: 3})
	fmt.Printf("rotation %d, skirt %v\n", piece.Rotation(), piece.Skirt())

	piece.RotateClockwise()
	fmt.Printf("rotation %d, skirt %v\n", piece.Rotation(), piece.Skirt())

	piece.RotateCounterclockwise()
	piece.RotateCounterclockwise()
	fmt.Printf("rotation %d, skirt %v\n", piece.Rotation(), piece.Skirt())

	fmt.Printf("topleft unchanged: %v\n", piece.TopLeft)

	// Output:
	// rotation 0, skirt [2 2 2 0]
	// rotation 1, skirt [0 3 2 0]
	// rotation 3, skirt [2 3 0 0]
	// topleft unchanged: {0 3}
}

// ExamplePiece_nextClockwise shows how a caller implements a rejectable
// rotation: preview the post-rotation state, validate it against the
// board, and only commit the turn when the placement is legal.
func ExamplePiece_nextClockwise() {
	board := tetris.NewBoard(10, 16)
	piece := tetris.NewPiece(tetris.I, tetris.Cell{Row: 13, Col: 0})

	_, next := piece.NextClockwise()
	probe := tetris.NewPiece(piece.Kind(), piece.TopLeft)
	for probe.Rotation() != next {
		probe.RotateClockwise()
	}

	if _, err := board.ValidSpaces(probe); err != nil {
		fmt.Println("rotation rejected:", err)
	} else {
		piece.RotateClockwise()
	}
	fmt.Println("rotation still", piece.Rotation())

	// Output:
	// rotation rejected: tetris: placement out of bounds
	// rotation still 0
}
