package tetris

import "strconv"

// Kind identifies one of the seven tetromino types.
type Kind uint8

// The seven tetromino kinds.
const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of defined tetromino kinds.
const KindCount = 7

// Kinds is an ordered array of all tetromino kinds.
var Kinds = [KindCount]Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	panic("tetromino kind " + strconv.Itoa(int(k)) + " not in catalog")
}
