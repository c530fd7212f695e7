package tetris_test

import (
	"testing"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotateFullCycleRestoresShape(t *testing.T) {
	for _, kind := range tetris.Kinds {
		piece := tetris.NewPiece(kind, tetris.Cell{Row: 0, Col: 3})
		original := piece.Shape()

		for i := 0; i < tetris.RotationCount; i++ {
			piece.RotateClockwise()
		}
		assert.Equal(t, 0, piece.Rotation(), "kind %s", kind)
		assert.Equal(t, original, piece.Shape(), "kind %s", kind)

		for i := 0; i < tetris.RotationCount; i++ {
			piece.RotateCounterclockwise()
		}
		assert.Equal(t, 0, piece.Rotation(), "kind %s", kind)
		assert.Equal(t, original, piece.Shape(), "kind %s", kind)
	}
}

func TestRotationsAreInverses(t *testing.T) {
	for _, kind := range tetris.Kinds {
		piece := tetris.NewPiece(kind, tetris.Cell{})

		piece.RotateClockwise()
		piece.RotateCounterclockwise()
		assert.Equal(t, 0, piece.Rotation(), "kind %s", kind)

		piece.RotateCounterclockwise()
		piece.RotateClockwise()
		assert.Equal(t, 0, piece.Rotation(), "kind %s", kind)
	}
}

func TestCounterclockwiseWrapsToThree(t *testing.T) {
	piece := tetris.NewPiece(tetris.T, tetris.Cell{})

	piece.RotateCounterclockwise()
	assert.Equal(t, 3, piece.Rotation())
	assert.Equal(t, tetris.ShapesFor(tetris.T)[3], piece.Shape())
	assert.Equal(t, tetris.SkirtsFor(tetris.T)[3], piece.Skirt())
}

func TestRotationKeepsTopLeft(t *testing.T) {
	start := tetris.Cell{Row: 2, Col: 5}
	piece := tetris.NewPiece(tetris.S, start)

	piece.RotateClockwise()
	assert.Equal(t, start, piece.TopLeft)

	piece.RotateCounterclockwise()
	piece.RotateCounterclockwise()
	assert.Equal(t, start, piece.TopLeft)
}

func TestNextRotationsDoNotMutate(t *testing.T) {
	piece := tetris.NewPiece(tetris.L, tetris.Cell{})

	shape, next := piece.NextClockwise()
	assert.Equal(t, 1, next)
	assert.Equal(t, tetris.ShapesFor(tetris.L)[1], shape)
	assert.Equal(t, 0, piece.Rotation())

	shape, next = piece.NextCounterclockwise()
	assert.Equal(t, 3, next)
	assert.Equal(t, tetris.ShapesFor(tetris.L)[3], shape)
	assert.Equal(t, 0, piece.Rotation())
}

func TestPieceString(t *testing.T) {
	piece := tetris.NewPiece(tetris.T, tetris.Cell{})
	assert.Equal(t, " o  \nooo \n    \n    \n", piece.String())

	piece.RotateClockwise()
	assert.Equal(t, " o  \n oo \n o  \n    \n", piece.String())
}
