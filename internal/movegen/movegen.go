// Package movegen enumerates every legal final locked placement of a
// piece reachable from spawn via unit left/right shifts, soft drops, and
// SRS rotations with kicks, on the current board.
package movegen

import (
	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// spawnX, spawnY is the piece's initial position before any input.
const (
	spawnX int8 = 4
	spawnY int8 = 20
)

// Generate returns every legal locked placement of kind on b, deduplicated
// under canonicalization. It chooses among three reachability strategies
// depending on board shape, cheapest first.
func Generate(b board.Board, kind piece.Kind) []moves.Move {
	collisions := moves.Collisions(b, kind)
	heights := b.Heights()

	isLow := true
	for _, h := range heights {
		if h > 16 {
			isLow = false
			break
		}
	}

	if isLow && kind != piece.T && isConvex(heights, collisions) {
		return convexFastPath(collisions, kind)
	}

	if isLow {
		return lowBoardPath(b, collisions, kind)
	}

	return generalPath(b, collisions, kind)
}

// isConvex reports whether, for every rotation and column, the collision
// column shifted down to the board's minimum height has no non-terminal
// gaps: col & (col+1) == 0.
func isConvex(heights [board.Width]int, collisions moves.MoveMap) bool {
	shift := heights[0]
	for _, h := range heights[1:] {
		if h < shift {
			shift = h
		}
	}

	for r := 0; r < 4; r++ {
		for x := 0; x < board.Width; x++ {
			col := collisions.Data[r].Cols[x] >> uint(shift)
			if col&(col+1) != 0 {
				return false
			}
		}
	}

	return true
}

func convexFastPath(collisions moves.MoveMap, kind piece.Kind) []moves.Move {
	var list []moves.Move

	for r := piece.North; r <= piece.West; r++ {
		for x := 0; x < board.Width; x++ {
			if collisions.HasBit(x, int(spawnY), r) {
				continue
			}

			list = append(list, moves.Move{
				X:    int8(x),
				Y:    int8(collisions.Data[r].Height(x)),
				R:    r,
				Kind: kind,
			})
		}

		if kind == piece.O {
			break
		}
		if r > piece.North && (kind == piece.I || kind == piece.S || kind == piece.Z) {
			break
		}
	}

	return list
}

func lowBoardPath(b board.Board, collisions moves.MoveMap, kind piece.Kind) []moves.Move {
	var list []moves.Move

	visited := moves.FilledSky(collisions)
	var locked, tspinLocked moves.MoveMap

	for r := piece.North; r <= piece.West; r++ {
		for x := 0; x < board.Width; x++ {
			if collisions.HasBit(x, int(spawnY), r) {
				continue
			}

			dropped := moves.Move{
				X:    int8(x),
				Y:    int8(collisions.Data[r].Height(x)),
				R:    r,
				Kind: kind,
			}

			expand(dropped, collisions, b, &visited, &locked, &tspinLocked, &list)
		}

		if kind == piece.O {
			break
		}
	}

	return list
}

func generalPath(b board.Board, collisions moves.MoveMap, kind piece.Kind) []moves.Move {
	var list []moves.Move

	init := moves.Move{X: spawnX, Y: spawnY, R: piece.North, Kind: kind}
	if collisions.Has(init) {
		return list
	}

	var visited, locked, tspinLocked moves.MoveMap
	expand(init, collisions, b, &visited, &locked, &tspinLocked, &list)

	return list
}

// lock records mv as a final placement if its bounding box doesn't
// extend above the allowed lock height for its kind/rotation, and it
// isn't already present (after canonicalization) in the output.
func lock(mv moves.Move, locked *moves.MoveMap, list *[]moves.Move) {
	if mv.Y > lockHeight(mv.Kind, mv.R) {
		return
	}

	canon := mv.Canonicalized()
	if locked.Has(canon) {
		return
	}

	locked.Set(canon)
	*list = append(*list, canon)
}

// expand is the general reachability DFS over (x, y, r): it locks the
// dropped position when appropriate, then recurses through dropping,
// shifting, and rotating, each time only into previously-unvisited
// lattice points.
func expand(mv moves.Move, collisions moves.MoveMap, b board.Board, visited, locked, tspinLocked *moves.MoveMap, list *[]moves.Move) {
	drop := moves.Dropped(mv, collisions)

	if drop.Y != mv.Y || mv.Tspin == moves.None {
		lock(drop, locked, list)
	}

	if drop.Y != mv.Y && !visited.Has(drop) {
		visited.Set(drop)
		expand(drop, collisions, b, visited, locked, tspinLocked, list)
	}

	if right, ok := moves.Shifted(mv, collisions, 1); ok && !visited.Has(right) {
		visited.Set(right)
		expand(right, collisions, b, visited, locked, tspinLocked, list)
	}

	if left, ok := moves.Shifted(mv, collisions, -1); ok && !visited.Has(left) {
		visited.Set(left)
		expand(left, collisions, b, visited, locked, tspinLocked, list)
	}

	if mv.Kind == piece.O {
		return
	}

	if cw, ok := moves.Rotated(mv, collisions, b, mv.R.CW()); ok {
		if cw.Tspin != moves.None && collisions.HasBit(int(cw.X), int(cw.Y)-1, cw.R) {
			lock(cw, tspinLocked, list)
		}
		if !visited.Has(cw) {
			visited.Set(cw)
			expand(cw, collisions, b, visited, locked, tspinLocked, list)
		}
	}

	if ccw, ok := moves.Rotated(mv, collisions, b, mv.R.CCW()); ok {
		if ccw.Tspin != moves.None && collisions.HasBit(int(ccw.X), int(ccw.Y)-1, ccw.R) {
			lock(ccw, tspinLocked, list)
		}
		if !visited.Has(ccw) {
			visited.Set(ccw)
			expand(ccw, collisions, b, visited, locked, tspinLocked, list)
		}
	}
}
