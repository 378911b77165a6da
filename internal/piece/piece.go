// Package piece defines tetromino geometry: the seven kinds, the four
// rotation states, and the per-rotation cell offsets derived from the
// canonical North shape by rotation matrix.
package piece

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// NumKinds is the number of distinct tetromino kinds.
const NumKinds = 7

// String returns the single-letter name of the piece.
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
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rotation is one of the four SRS orientations.
type Rotation uint8

const (
	North Rotation = iota
	East
	South
	West
)

// CW returns the rotation 90 degrees clockwise from r.
func (r Rotation) CW() Rotation {
	return (r + 1) % 4
}

// CCW returns the rotation 90 degrees counter-clockwise from r,
// implemented as three clockwise turns to keep a single source of truth.
func (r Rotation) CCW() Rotation {
	return r.CW().CW().CW()
}

// String returns the rotation's name.
func (r Rotation) String() string {
	switch r {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Rotation(%d)", uint8(r))
	}
}

// Offset is a piece-local (dx, dy) cell offset.
type Offset struct {
	DX, DY int8
}

// northShape is the canonical North-facing cell layout for each kind.
var northShape = [NumKinds][4]Offset{
	I: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	J: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	L: {{-1, 0}, {0, 0}, {1, 1}, {1, 0}},
	O: {{0, 1}, {0, 0}, {1, 1}, {1, 0}},
	S: {{-1, 0}, {0, 1}, {0, 0}, {1, 1}},
	T: {{-1, 0}, {0, 1}, {0, 0}, {1, 0}},
	Z: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// rotate applies the rotation matrix for r to a North-facing offset:
// East: (y, -x); South: (-x, -y); West: (-y, x).
func rotate(o Offset, r Rotation) Offset {
	switch r {
	case East:
		return Offset{o.DY, -o.DX}
	case South:
		return Offset{-o.DX, -o.DY}
	case West:
		return Offset{-o.DY, o.DX}
	default:
		return o
	}
}

// Cells returns the four piece-local cell offsets for k at rotation r.
func (k Kind) Cells(r Rotation) [4]Offset {
	shape := northShape[k]
	var out [4]Offset
	for i, o := range shape {
		out[i] = rotate(o, r)
	}
	return out
}
