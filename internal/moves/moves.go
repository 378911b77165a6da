// Package moves implements a concrete placement (Move), the per-rotation
// collision bitboard (MoveMap) used as the move generator's substrate,
// and SRS kick rotation with T-spin classification.
package moves

import (
	"fmt"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// Tspin classifies a T-spin by corner occupancy and kick index.
type Tspin uint8

const (
	None Tspin = iota
	Mini
	Full
)

func (t Tspin) String() string {
	switch t {
	case Mini:
		return "Mini"
	case Full:
		return "Full"
	default:
		return "None"
	}
}

// Move is a concrete placement: a piece kind at (x, y, rotation), with an
// optional T-spin classification.
type Move struct {
	X, Y  int8
	R     piece.Rotation
	Kind  piece.Kind
	Tspin Tspin
}

// Cells returns the board-absolute coordinates of the move's four cells.
func (m Move) Cells() [4][2]int8 {
	offs := m.Kind.Cells(m.R)
	var out [4][2]int8
	for i, o := range offs {
		out[i] = [2]int8{m.X + o.DX, m.Y + o.DY}
	}
	return out
}

// IsColliding reports whether any cell of m overlaps an occupied cell or
// a wall on b.
func (m Move) IsColliding(b board.Board) bool {
	for _, c := range m.Cells() {
		if b.Has(int(c[0]), int(c[1])) {
			return true
		}
	}
	return false
}

// Place sets every cell of m on b. The caller must have already
// validated that m does not collide.
func Place(b *board.Board, m Move) {
	for _, c := range m.Cells() {
		b.Set(int(c[0]), int(c[1]))
	}
}

// IsUnderground reports whether any cell of m sits strictly below its
// column's current height — i.e. the move is a softdrop, not a pure
// top-surface drop.
func (m Move) IsUnderground(b board.Board) bool {
	for _, c := range m.Cells() {
		if int(c[1]) < b.Height(int(c[0])) {
			return true
		}
	}
	return false
}

// Canonicalized collapses rotational aliases for symmetric pieces so
// that equivalent final placements compare equal. It is idempotent.
func (m Move) Canonicalized() Move {
	switch m.Kind {
	case piece.I:
		switch m.R {
		case piece.South:
			return Move{X: m.X - 1, Y: m.Y, R: piece.North, Kind: m.Kind, Tspin: m.Tspin}
		case piece.West:
			return Move{X: m.X, Y: m.Y + 1, R: piece.East, Kind: m.Kind, Tspin: m.Tspin}
		}
	case piece.S, piece.Z:
		switch m.R {
		case piece.South:
			return Move{X: m.X, Y: m.Y - 1, R: piece.North, Kind: m.Kind, Tspin: m.Tspin}
		case piece.West:
			return Move{X: m.X - 1, Y: m.Y, R: piece.East, Kind: m.Kind, Tspin: m.Tspin}
		}
	}
	return m
}

// hasTspinCorners reports whether at least 3 of the 4 diagonal cells
// around m's center are solid (occupied or wall).
func (m Move) hasTspinCorners(b board.Board) bool {
	x, y := int(m.X), int(m.Y)
	corners := 0
	if b.Has(x+1, y+1) {
		corners++
	}
	if b.Has(x+1, y-1) {
		corners++
	}
	if b.Has(x-1, y+1) {
		corners++
	}
	if b.Has(x-1, y-1) {
		corners++
	}
	return corners >= 3
}

// hasFrontCorners reports whether the two "front" diagonal corners (the
// side the T's middle prong points toward) are both solid.
func (m Move) hasFrontCorners(b board.Board) bool {
	x, y := int(m.X), int(m.Y)
	switch m.R {
	case piece.North:
		return b.Has(x+1, y+1) && b.Has(x-1, y+1)
	case piece.East:
		return b.Has(x+1, y+1) && b.Has(x+1, y-1)
	case piece.South:
		return b.Has(x+1, y-1) && b.Has(x-1, y-1)
	default: // West
		return b.Has(x-1, y+1) && b.Has(x-1, y-1)
	}
}

func (m Move) String() string {
	return fmt.Sprintf("{x:%d y:%d r:%s kind:%s tspin:%s}", m.X, m.Y, m.R, m.Kind, m.Tspin)
}
