package tetris

// Piece is a single falling tetromino: a kind, a rotation state, and a
// board position. TopLeft is the board cell the mask origin (0,0) maps
// onto; it is not necessarily an occupied cell itself.
//
// Position and orientation are independent: rotating never moves
// TopLeft, and repositioning never changes the rotation. A Piece does
// no collision checking of its own - callers wanting a rejectable
// rotation probe the Board with ValidSpaces after (or preview with
// NextClockwise before) the turn.
type Piece struct {
	kind     Kind
	rotation int

	// TopLeft is the board coordinate of the mask origin. Callers
	// reposition the piece by assigning it directly.
	TopLeft Cell
}

// NewPiece creates a piece of the given kind at rotation 0 with its
// mask origin at start. Panics if the kind is not one of the seven
// defined kinds.
func NewPiece(kind Kind, start Cell) *Piece {
	catalogFor(kind) // validate the kind up front
	return &Piece{
		kind:    kind,
		TopLeft: start,
	}
}

// Kind returns the piece's kind.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Rotation returns the current rotation index (0-3).
func (p *Piece) Rotation() int {
	return p.rotation
}

// Shape returns the current rotation state's mask.
func (p *Piece) Shape() Shape {
	return catalogFor(p.kind).shapes[p.rotation]
}

// Skirt returns the current rotation state's skirt.
func (p *Piece) Skirt() Skirt {
	return catalogFor(p.kind).skirts[p.rotation]
}

// NextClockwise returns the shape and rotation index the piece would
// have after a clockwise turn, without mutating the piece.
func (p *Piece) NextClockwise() (Shape, int) {
	next := (p.rotation + 1) % RotationCount
	return catalogFor(p.kind).shapes[next], next
}

// NextCounterclockwise returns the shape and rotation index the piece
// would have after a counterclockwise turn, without mutating the piece.
func (p *Piece) NextCounterclockwise() (Shape, int) {
	next := p.rotation - 1
	if next < 0 {
		next = RotationCount - 1
	}
	return catalogFor(p.kind).shapes[next], next
}

// RotateClockwise advances the piece to its next clockwise rotation
// state. TopLeft is unchanged.
func (p *Piece) RotateClockwise() {
	_, p.rotation = p.NextClockwise()
}

// RotateCounterclockwise advances the piece to its next
// counterclockwise rotation state, wrapping index 0 back to 3.
// TopLeft is unchanged.
func (p *Piece) RotateCounterclockwise() {
	_, p.rotation = p.NextCounterclockwise()
}

// String renders the current mask as 4 newline-terminated rows of "o"
// and space characters. Debug aid only; placement logic never uses it.
func (p *Piece) String() string {
	return p.Shape().String()
}
