package eval

import (
	"math/bits"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/gstate"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// maxDonationDepth bounds how many T-slots the evaluator will simulate
// donating forward before giving up and scoring what it has.
const maxDonationDepth = 2

// well locates the shallowest column, then ANDs together the bitboards of
// every other column and shifts the mask down to the well's own floor: the
// popcount of what's left is how much of the board already stacks up above
// the well on every side, not how deep the well itself runs.
func well(b board.Board, heights [board.Width]int) (wellX int, filled int) {
	wellX = 0
	for x := 1; x < board.Width; x++ {
		if heights[x] < heights[wellX] {
			wellX = x
		}
	}

	mask := ^uint64(0)
	for x := 0; x < board.Width; x++ {
		if x == wellX {
			continue
		}
		mask &= b.Cols[x]
	}
	mask >>= uint(heights[wellX])

	return wellX, bits.OnesCount64(mask)
}

// centerDistance is how many columns the well sits from the nearer of the
// board's two center columns (4 and 5) -- a well dug at the edge is safer
// to keep open than one carved out of the middle.
func centerDistance(wellX int) int {
	d4 := wellX - 4
	if d4 < 0 {
		d4 = -d4
	}
	d5 := wellX - 5
	if d5 < 0 {
		d5 = -d5
	}
	if d5 < d4 {
		return d5
	}
	return d4
}

// bumpiness sums the squared height deltas between adjacent columns,
// skipping the well column on either side of the gap it leaves (a well
// is supposed to be uneven with its neighbors, so it shouldn't be
// punished for it).
func bumpiness(heights [board.Width]int, wellX int) int {
	sum := 0
	left := -1
	for x := 0; x < board.Width; x++ {
		if x == wellX {
			continue
		}
		if left >= 0 {
			d := heights[x] - heights[left]
			sum += d * d
		}
		left = x
	}
	return sum
}

// holes counts, for every column, how many cells sit below its top but
// above the well's floor and aren't themselves filled -- heights[x] minus
// the well's height is how far that column rises above the floor, and
// subtracting the popcount of the occupied bits over that same span
// leaves exactly the gaps. garbage is simply the well's own height: the
// floor every other column's overhang is measured against.
func holes(b board.Board, heights [board.Width]int, wellX int) (holes int, garbage int) {
	wellHeight := heights[wellX]
	for x := 0; x < board.Width; x++ {
		filled := bits.OnesCount64(b.Cols[x] >> uint(wellHeight))
		holes += heights[x] - wellHeight - filled
	}
	return holes, wellHeight
}

// Evaluate scores the state produced by lock/mv. value is the static
// shape assessment of the resulting board (independent of how it was
// reached); reward is the transient payoff of this specific placement
// (line clears, T-spins, perfect clear, back-to-back and combo chains).
// A beam search node's total score is value+reward; see the search
// package for how the two combine across a line of play.
func Evaluate(state gstate.State, lock gstate.Lock, mv moves.Move, w Weights) (value int64, reward int64) {
	b := state.Board
	heights := b.Heights()

	height := 0
	for _, h := range heights {
		if h > height {
			height = h
		}
	}
	value += int64(w.Height * height)

	// Donating T-slots mutates b/heights in place after the max-height
	// term above but before the terms below read them, so
	// well/center/bumpiness/holes all score the board as it would look
	// after those donations land.
	tslots, donations := tslotDonations(&b, &heights, maxDonationDepth)
	for n, count := range tslots {
		value += int64(w.Tslot[n] * count)
	}

	wellX, filled := well(b, heights)
	if filled > 4 {
		filled = 4
	}
	value += int64(w.Well * filled)
	value += int64(w.Center * centerDistance(wellX))
	value += int64(w.Bumpiness * bumpiness(heights, wellX))

	holesCount, garbage := holes(b, heights, wellX)
	holesCount -= tslots[0] + tslots[1] + tslots[2] + tslots[3] - donations
	value += int64(w.Holes * holesCount)
	value += int64(w.Garbage * garbage)

	if state.B2B > 0 {
		value += int64(w.B2BBonus)
	}
	if state.Combo > 1 {
		value += int64(int(state.Combo)-1) * int64(w.ComboBonus)
	}

	perfectClear := b.IsEmpty()
	if perfectClear {
		reward += int64(w.PC)
	}

	if lock.Cleared > 0 {
		switch {
		case perfectClear:
			reward += int64(w.PC)
		case mv.Tspin == moves.Full:
			reward += int64(w.Tspin[lock.Cleared-1])
		case mv.Tspin == moves.Mini:
			reward += int64(w.TspinMini[lock.Cleared-1])
		default:
			reward += int64(w.Clear[lock.Cleared-1])
		}
	}

	if state.B2B > 1 {
		reward += int64(w.B2B)
	}

	switch {
	case state.Combo < 2:
	case state.Combo < 4:
		reward += int64(w.Combo[0])
	case state.Combo < 6:
		reward += int64(w.Combo[1])
	case state.Combo < 8:
		reward += int64(w.Combo[2])
	case state.Combo < 10:
		reward += int64(w.Combo[3])
	default:
		reward += int64(w.Combo[4])
	}

	if mv.Kind == piece.T && !(mv.Tspin != moves.None && lock.Cleared > 0) && !perfectClear {
		reward += int64(w.WasteT)
	}

	return value, reward
}
