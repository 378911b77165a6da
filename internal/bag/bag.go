// Package bag implements the 7-bag randomizer's remaining-kinds set.
package bag

import "github.com/corvette-dev/fallbeam/internal/piece"

// Bag is the set of piece kinds not yet drawn from the current 7-bag.
type Bag uint8

// All is the full bag: every kind still available.
const All Bag = (1 << piece.NumKinds) - 1

// Contains reports whether k is still in the bag.
func (b Bag) Contains(k piece.Kind) bool {
	return b&(1<<uint(k)) != 0
}

// Update removes k from the bag, refilling to All if that would empty it.
// It reports false and leaves the bag untouched if k was not present —
// this is how callers detect a queue that could not have come from the
// current bag state.
func Update(b *Bag, k piece.Kind) bool {
	if !b.Contains(k) {
		return false
	}
	*b &^= 1 << uint(k)
	if *b == 0 {
		*b = All
	}
	return true
}
