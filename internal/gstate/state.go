// Package gstate holds the immutable-ish game snapshot (board, hold,
// bag, queue cursor, back-to-back and combo counters) and the Make
// operation that applies a placement and reports what it scored.
package gstate

import (
	"github.com/corvette-dev/fallbeam/internal/bag"
	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// HoldKind wraps piece.Kind so State can represent an empty hold slot
// without a pointer (State stays a plain comparable value, usable
// directly as a map key in the beam search's transposition filter).
type HoldKind struct {
	Kind piece.Kind
	Set  bool
}

// Lock is produced by State.Make and never mutated afterward.
type Lock struct {
	Cleared  int
	Sent     int
	Softdrop bool
}

// State is the full search-relevant game snapshot. Hash/equality (via Go
// struct comparison, or statehash.Sum for the selector's map) cover every
// field — bag and combo included, since both change downstream rewards.
type State struct {
	Board board.Board
	Hold  HoldKind
	Bag   bag.Bag
	Next  int
	B2B   uint8
	Combo uint8
}

// New returns the starting state: empty board, no hold, full bag.
func New() State {
	return State{Bag: bag.All}
}

// comboBonusTable maps a combo counter (capped at its length) to the
// extra garbage it sends.
var comboBonusTable = [13]int{0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5}

func comboBonus(combo int) int {
	if combo >= len(comboBonusTable) {
		combo = len(comboBonusTable) - 1
	}
	return comboBonusTable[combo]
}

// Make applies mv (drawn from queue at the state's current cursor,
// possibly via hold) to s, mutating s in place and returning the Lock
// describing what happened.
func (s *State) Make(mv moves.Move, queue []piece.Kind) Lock {
	current := queue[s.Next]

	if mv.Kind != current {
		wasHoldEmpty := !s.Hold.Set
		s.Hold = HoldKind{Kind: current, Set: true}

		if wasHoldEmpty {
			bag.Update(&s.Bag, current)
			s.Next++
			current = queue[s.Next]
		}
	}

	bag.Update(&s.Bag, current)
	s.Next++

	lock := Lock{Softdrop: mv.IsUnderground(s.Board)}

	moves.Place(&s.Board, mv)
	lock.Cleared = s.Board.ClearLines()

	if lock.Cleared == 0 {
		s.Combo = 0
		return lock
	}

	switch {
	case mv.Tspin == moves.Full:
		lock.Sent = lock.Cleared * 2
		s.B2B++
	case mv.Tspin == moves.Mini:
		lock.Sent = lock.Cleared - 1
		s.B2B++
	case lock.Cleared == 4:
		lock.Sent = 4
		s.B2B++
	default:
		lock.Sent = lock.Cleared - 1
		s.B2B = 0
	}

	if s.B2B > 2 {
		s.B2B = 2
	}
	if s.B2B > 1 {
		lock.Sent++
	}

	s.Combo++
	lock.Sent += comboBonus(int(s.Combo))

	if s.Board.IsEmpty() {
		lock.Sent += 10
	}

	return lock
}
