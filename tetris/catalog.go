package tetris

import "strconv"

// shapeSpecs defines every rotation state for every kind as string art,
// 'o' for an occupied cell and '.' for an empty one. Rotation states are
// fixed tables rather than computed transforms; a lookup is cheaper than
// rotating a mask every turn, and the tables double as documentation.
//
// The O kind lists four identical entries on purpose: the piece is
// rotation-invariant, and uniform entries keep the rotation index
// contract the same for all kinds.
var shapeSpecs = [KindCount][RotationCount][ShapeSize]string{
	I: {
		{"oooo", "....", "....", "...."},
		{"..o.", "..o.", "..o.", "..o."},
		{"....", "....", "oooo", "...."},
		{".o..", ".o..", ".o..", ".o.."},
	},
	J: {
		{"o...", "ooo.", "....", "...."},
		{".oo.", ".o..", ".o..", "...."},
		{"....", "ooo.", "..o.", "...."},
		{".o..", ".o..", "oo..", "...."},
	},
	L: {
		{"..o.", "ooo.", "....", "...."},
		{".o..", ".o..", ".oo.", "...."},
		{"....", "ooo.", "o...", "...."},
		{"oo..", ".o..", ".o..", "...."},
	},
	O: {
		{".oo.", ".oo.", "....", "...."},
		{".oo.", ".oo.", "....", "...."},
		{".oo.", ".oo.", "....", "...."},
		{".oo.", ".oo.", "....", "...."},
	},
	S: {
		{".oo.", "oo..", "....", "...."},
		{".o..", ".oo.", "..o.", "...."},
		{"....", ".oo.", "oo..", "...."},
		{"o...", "oo..", ".o..", "...."},
	},
	T: {
		{".o..", "ooo.", "....", "...."},
		{".o..", ".oo.", ".o..", "...."},
		{"....", "ooo.", ".o..", "...."},
		{".o..", "oo..", ".o..", "...."},
	},
	Z: {
		{"oo..", ".oo.", "....", "...."},
		{"..o.", ".oo.", ".o..", "...."},
		{"....", "oo..", ".oo.", "...."},
		{".o..", "oo..", "o...", "...."},
	},
}

// catalogEntry holds the precomputed rotation states and skirts for one kind.
type catalogEntry struct {
	shapes [RotationCount]Shape
	skirts [RotationCount]Skirt
}

// catalog is built once at startup and read-only thereafter, so any
// number of goroutines may query it without synchronization.
var catalog [KindCount]catalogEntry

func init() {
	for _, kind := range Kinds {
		entry := &catalog[kind]
		for rotation, rows := range shapeSpecs[kind] {
			shape := parseShape(rows)
			entry.shapes[rotation] = shape
			entry.skirts[rotation] = shape.skirt()
		}
	}
}

// catalogFor returns the catalog entry for the given kind.
// An undefined kind is a caller contract violation.
func catalogFor(kind Kind) *catalogEntry {
	if int(kind) >= KindCount {
		panic("tetromino kind " + strconv.Itoa(int(kind)) + " not in catalog")
	}
	return &catalog[kind]
}

// ShapesFor returns the four rotation states for the given kind,
// indexed by rotation. Panics if the kind is not one of the seven
// defined kinds.
func ShapesFor(kind Kind) [RotationCount]Shape {
	return catalogFor(kind).shapes
}

// SkirtsFor returns the four skirts for the given kind, index-aligned
// with ShapesFor. Panics if the kind is not one of the seven defined
// kinds.
func SkirtsFor(kind Kind) [RotationCount]Skirt {
	return catalogFor(kind).skirts
}
