package tetris_test

import (
	"testing"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
)

func countBricks(s tetris.Shape) int {
	count := 0
	for row := 0; row < tetris.ShapeSize; row++ {
		for col := 0; col < tetris.ShapeSize; col++ {
			if s.At(row, col) {
				count++
			}
		}
	}
	return count
}

func TestEveryShapeHasFourBricks(t *testing.T) {
	for _, kind := range tetris.Kinds {
		for rotation, shape := range tetris.ShapesFor(kind) {
			assert.Equal(t, tetris.BrickCount, countBricks(shape),
				"kind %s rotation %d", kind, rotation)
		}
	}
}

func TestSkirtDerivation(t *testing.T) {
	for _, kind := range tetris.Kinds {
		shapes := tetris.ShapesFor(kind)
		skirts := tetris.SkirtsFor(kind)

		for rotation := 0; rotation < tetris.RotationCount; rotation++ {
			for col := 0; col < tetris.ShapeSize; col++ {
				lowest := -1
				for row := 0; row < tetris.ShapeSize; row++ {
					if shapes[rotation].At(row, col) {
						lowest = row
					}
				}

				want := 0
				if lowest >= 0 {
					want = lowest + 1
				}
				assert.Equal(t, want, skirts[rotation][col],
					"kind %s rotation %d column %d", kind, rotation, col)
			}
		}
	}
}

func TestKnownSkirts(t *testing.T) {
	assert.Equal(t, tetris.Skirt{1, 1, 1, 1}, tetris.SkirtsFor(tetris.I)[0])
	assert.Equal(t, tetris.Skirt{0, 2, 2, 0}, tetris.SkirtsFor(tetris.O)[0])
	assert.Equal(t, tetris.Skirt{0, 3, 1, 0}, tetris.SkirtsFor(tetris.J)[1])
	assert.Equal(t, tetris.Skirt{2, 2, 2, 0}, tetris.SkirtsFor(tetris.T)[0])
}

func TestOShapeRotationInvariant(t *testing.T) {
	shapes := tetris.ShapesFor(tetris.O)
	skirts := tetris.SkirtsFor(tetris.O)

	for rotation := 1; rotation < tetris.RotationCount; rotation++ {
		assert.Equal(t, shapes[0], shapes[rotation])
		assert.Equal(t, skirts[0], skirts[rotation])
	}
}

func TestUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { tetris.ShapesFor(tetris.Kind(7)) })
	assert.Panics(t, func() { tetris.SkirtsFor(tetris.Kind(42)) })
	assert.Panics(t, func() { tetris.NewPiece(tetris.Kind(7), tetris.Cell{}) })
}

func TestKindString(t *testing.T) {
	names := []string{"I", "J", "L", "O", "S", "T", "Z"}
	for i, kind := range tetris.Kinds {
		assert.Equal(t, names[i], kind.String())
	}
	assert.Panics(t, func() { _ = tetris.Kind(9).String() })
}

func TestCellKeyRoundTrip(t *testing.T) {
	cells := []tetris.Cell{
		{Row: 0, Col: 0},
		{Row: 15, Col: 9},
		{Row: 1234, Col: 4321},
		{Row: -2, Col: -7},
	}

	for _, cell := range cells {
		key := cell.Key()
		assert.Equal(t, cell.Row, key.Row())
		assert.Equal(t, cell.Col, key.Col())
	}
}
