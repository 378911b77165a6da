package statehash

import (
	"testing"

	"github.com/corvette-dev/fallbeam/internal/gstate"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

func TestSumIsDeterministic(t *testing.T) {
	s := gstate.New()
	s.Board.Set(3, 0)
	if Sum(s) != Sum(s) {
		t.Fatalf("expected Sum to be deterministic for the same state")
	}
}

func TestSumDistinguishesBoards(t *testing.T) {
	a := gstate.New()
	b := gstate.New()
	b.Board.Set(0, 0)

	if Sum(a) == Sum(b) {
		t.Fatalf("expected different boards to hash differently")
	}
}

func TestSumDistinguishesHold(t *testing.T) {
	a := gstate.New()
	b := gstate.New()
	b.Hold = gstate.HoldKind{Kind: piece.T, Set: true}

	if Sum(a) == Sum(b) {
		t.Fatalf("expected empty hold and set hold to hash differently")
	}
}

func TestSumDistinguishesCounters(t *testing.T) {
	a := gstate.New()
	b := gstate.New()
	b.B2B = 1
	b.Combo = 2

	if Sum(a) == Sum(b) {
		t.Fatalf("expected different b2b/combo counters to hash differently")
	}
}
