package eval

import (
	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// findTslot scans columns 0..7 for one of the four classical T-slot
// shapes (two South-facing flat slots, one West-facing and one
// East-facing overhang) and returns the Move that would insert a T into
// it, or false if none of the four patterns match. The first match
// found wins.
func findTslot(b board.Board, heights [board.Width]int) (moves.Move, bool) {
	for x := 0; x < board.Width-2; x++ {
		// South-facing, left-step.
		if heights[x] > heights[x+1] && heights[x]+1 < heights[x+2] {
			shift := uint(heights[x] - 1)
			if (b.Cols[x]>>shift)&0b111 == 0b001 &&
				(b.Cols[x+1]>>shift)&0b111 == 0b000 &&
				(b.Cols[x+2]>>shift)&0b111 == 0b101 {
				return moves.Move{
					X: int8(x + 1), Y: int8(heights[x]),
					R: piece.South, Kind: piece.T,
				}, true
			}
		}

		// South-facing, right-step.
		if heights[x+2] > heights[x+1] && heights[x+2]+1 < heights[x] {
			shift := uint(heights[x+2] - 1)
			if (b.Cols[x]>>shift)&0b111 == 0b101 &&
				(b.Cols[x+1]>>shift)&0b111 == 0b000 &&
				(b.Cols[x+2]>>shift)&0b111 == 0b001 {
				return moves.Move{
					X: int8(x + 1), Y: int8(heights[x+2]),
					R: piece.South, Kind: piece.T,
				}, true
			}
		}

		// West-facing overhang.
		if heights[x+1] >= 3 && heights[x+1] >= heights[x] && heights[x+1]+1 < heights[x+2] {
			shift := uint(heights[x+1] - 3)
			if (b.Cols[x]>>shift)&0b11000 == 0b00000 &&
				(b.Cols[x+1]>>shift)&0b11110 == 0b00100 &&
				(b.Cols[x+2]>>shift)&0b11111 == 0b10000 {
				cellA := b.Has(x+1, heights[x+1]-3)
				cellB := b.Has(x+2, heights[x+1]-4)
				if cellA || (!cellA && cellB) {
					return moves.Move{
						X: int8(x + 2), Y: int8(heights[x+1] - 2),
						R: piece.West, Kind: piece.T,
					}, true
				}
			}
		}

		// East-facing overhang (mirror of West).
		if heights[x+1] >= 3 && heights[x+1] >= heights[x+2] && heights[x+1]+1 < heights[x] {
			shift := uint(heights[x+1] - 3)
			if (b.Cols[x]>>shift)&0b11111 == 0b10000 &&
				(b.Cols[x+1]>>shift)&0b11110 == 0b00100 &&
				(b.Cols[x+2]>>shift)&0b11000 == 0b00000 {
				cellA := b.Has(x+1, heights[x+1]-3)
				cellB := b.Has(x, heights[x+1]-4)
				if cellA || (!cellA && cellB) {
					return moves.Move{
						X: int8(x), Y: int8(heights[x+1] - 2),
						R: piece.East, Kind: piece.T,
					}, true
				}
			}
		}
	}

	return moves.Move{}, false
}

// tslotDonations simulates placing a T into the first T-slot findTslot finds, up
// to maxIter times, committing the placement to board/heights whenever
// it would clear at least 2 lines (donating the slot forward so the next
// iteration can find a fresh one), and bucketing how many lines each
// attempt would have cleared. It returns the bucket counts and how many
// were actually committed.
func tslotDonations(b *board.Board, heights *[board.Width]int, maxIter int) (tslots [4]int, donations int) {
	for i := 0; i < maxIter; i++ {
		mv, ok := findTslot(*b, *heights)
		if !ok {
			break
		}

		clone := *b
		moves.Place(&clone, mv)
		cleared := clone.ClearLines()
		tslots[cleared]++

		if cleared >= 2 {
			*b = clone
			*heights = b.Heights()
			donations++
		} else {
			break
		}
	}

	return tslots, donations
}
