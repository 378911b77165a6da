package bag

import (
	"testing"

	"github.com/corvette-dev/fallbeam/internal/piece"
)

func TestUpdateFailsOnAbsentKind(t *testing.T) {
	b := All
	Update(&b, piece.T)
	if Update(&b, piece.T) {
		t.Fatal("Update should fail when the kind has already been drawn")
	}
}

func TestUpdateRefillsWhenEmptied(t *testing.T) {
	b := All
	kinds := []piece.Kind{piece.I, piece.J, piece.L, piece.O, piece.S, piece.T, piece.Z}
	for i, k := range kinds {
		if !Update(&b, k) {
			t.Fatalf("Update(%s) should succeed, draw %d", k, i)
		}
	}
	if b != All {
		t.Fatalf("bag should refill to All once emptied, got %b", b)
	}
}

func TestUpdateNeverEmpty(t *testing.T) {
	b := All
	for _, k := range []piece.Kind{piece.I, piece.J, piece.L, piece.O, piece.S, piece.T} {
		Update(&b, k)
		if b == 0 {
			t.Fatal("bag must never be empty after a successful Update")
		}
	}
}
