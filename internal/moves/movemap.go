package moves

import (
	"math/bits"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// MoveMap is four per-rotation boards, used either as a collision mask
// (Has(x,y,r) true iff placing the piece there would overlap something)
// or as a generic visited/locked set over the (x, y, r) lattice.
type MoveMap struct {
	Data [4]board.Board
}

// Collisions computes, for every rotation and column, the set of y
// positions where placing kind would collide with b or a wall.
func Collisions(b board.Board, kind piece.Kind) MoveMap {
	var cm MoveMap

	for r := piece.North; r <= piece.West; r++ {
		for _, o := range kind.Cells(r) {
			for x := 0; x < board.Width; x++ {
				col := ^uint64(0)

				sx := x + int(o.DX)
				if sx >= 0 && sx < board.Width {
					col = b.Cols[sx]
					if o.DY < 0 {
						col = ^(^col << uint(-o.DY))
					} else {
						col = col >> uint(o.DY)
					}
				}

				cm.Data[r].Cols[x] |= col
			}
		}
	}

	return cm
}

// FilledSky pre-marks, for every (rotation, column), every cell strictly
// above the highest collision as visited — the general expansion never
// needs to revisit cells no piece could ever occupy in the air.
func FilledSky(collisions MoveMap) MoveMap {
	var filled MoveMap

	for r := 0; r < 4; r++ {
		for x := 0; x < board.Width; x++ {
			h := collisions.Data[r].Height(x)
			if h < 64 {
				filled.Data[r].Cols[x] = ^((uint64(1) << uint(h)) - 1)
			}
		}
	}

	return filled
}

// Has reports whether (mv.X, mv.Y) is set in the rotation plane for mv.R.
func (mm MoveMap) Has(mv Move) bool {
	return mm.Data[mv.R].Has(int(mv.X), int(mv.Y))
}

// Set marks (mv.X, mv.Y) in the rotation plane for mv.R.
func (mm *MoveMap) Set(mv Move) {
	mm.Data[mv.R].Set(int(mv.X), int(mv.Y))
}

// HasBit is the primitive (x, y, r) accessor underlying Has.
func (mm MoveMap) HasBit(x, y int, r piece.Rotation) bool {
	return mm.Data[r].Has(x, y)
}

// SetBit is the primitive (x, y, r) accessor underlying Set.
func (mm *MoveMap) SetBit(x, y int, r piece.Rotation) {
	mm.Data[r].Set(x, y)
}

// Shifted returns mv shifted by dx columns, or false if the shifted
// position collides. A shift always clears any T-spin classification.
func Shifted(mv Move, collisions MoveMap, dx int8) (Move, bool) {
	shifted := mv
	shifted.X += dx
	shifted.Tspin = None

	if collisions.Has(shifted) {
		return Move{}, false
	}
	return shifted, true
}

// Dropped returns mv's position after falling as far as it can within
// its current column and rotation's collision mask, clearing any T-spin
// classification.
func Dropped(mv Move, collisions MoveMap) Move {
	col := collisions.Data[mv.R].Cols[mv.X]
	below := col & ((uint64(1) << uint(mv.Y)) - 1)

	dropped := mv
	dropped.Y = int8(64 - bits.LeadingZeros64(below))
	dropped.Tspin = None
	return dropped
}

// Rotated attempts to rotate mv to target via the appropriate SRS kick
// table, trying each of the five candidate offsets in order and returning
// the first that does not collide. On success, a T piece's landing spot
// is classified as a T-spin per the corner/front-corner/kick-index rule.
func Rotated(mv Move, collisions MoveMap, b board.Board, target piece.Rotation) (Move, bool) {
	table := piece.KickTable(mv.Kind)

	for i := 0; i < 5; i++ {
		from := table[mv.R][i]
		to := table[target][i]
		dx := from.DX - to.DX
		dy := from.DY - to.DY

		rotated := Move{
			X:    mv.X + dx,
			Y:    mv.Y + dy,
			R:    target,
			Kind: mv.Kind,
		}

		if collisions.Has(rotated) {
			continue
		}

		if mv.Kind == piece.T && rotated.hasTspinCorners(b) {
			if i == 4 || rotated.hasFrontCorners(b) {
				rotated.Tspin = Full
			} else {
				rotated.Tspin = Mini
			}
		}

		return rotated, true
	}

	return Move{}, false
}
