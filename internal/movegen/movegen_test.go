package movegen

import (
	"testing"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

func boardFromCols(cols [board.Width]uint64) board.Board {
	return board.Board{Cols: cols}
}

func counts(t *testing.T, b board.Board, want map[piece.Kind]int) {
	t.Helper()
	for k, n := range want {
		got := Generate(b, k)
		if len(got) != n {
			t.Errorf("%s: expected %d moves, got %d", k, n, len(got))
		}

		seen := map[moveKey]bool{}
		for _, mv := range got {
			canon := mv.Canonicalized()
			key := moveKey{canon.X, canon.Y, canon.R, canon.Kind}
			if seen[key] {
				t.Errorf("%s: duplicate move under canonicalization: %+v", k, canon)
			}
			seen[key] = true
			if mv != mv.Canonicalized() {
				t.Errorf("%s: generator returned a non-canonical move: %+v", k, mv)
			}
		}
	}
}

type moveKey struct {
	x, y int8
	r    piece.Rotation
	kind piece.Kind
}

func TestGenerateEmptyBoard(t *testing.T) {
	b := board.New()
	counts(t, b, map[piece.Kind]int{
		piece.I: 17, piece.J: 34, piece.L: 34, piece.O: 9,
		piece.S: 17, piece.T: 34, piece.Z: 17,
	})
}

func TestGenerateMiniBoard(t *testing.T) {
	b := boardFromCols([board.Width]uint64{
		0,
		0b1, 0b1, 0b1, 0b1, 0b1, 0b1, 0b1, 0b1, 0b1,
	})
	counts(t, b, map[piece.Kind]int{
		piece.I: 17, piece.J: 34, piece.L: 34, piece.O: 9,
		piece.S: 17, piece.T: 35, piece.Z: 17,
	})
}

func TestGenerateTspinBoard(t *testing.T) {
	b := boardFromCols([board.Width]uint64{
		0b00111111, 0b00111111, 0b00011111, 0b00000111, 0b00000001,
		0b00000000, 0b00001101, 0b00011111, 0b00111111, 0b11111111,
	})
	counts(t, b, map[piece.Kind]int{
		piece.I: 17, piece.J: 35, piece.L: 35, piece.O: 9,
		piece.S: 17, piece.T: 38, piece.Z: 18,
	})
}

func TestGenerateDtdBoard(t *testing.T) {
	b := boardFromCols([board.Width]uint64{
		0b111111111, 0b111111111, 0b011111111, 0b011111111, 0b000111111,
		0b000100110, 0b010000001, 0b011110111, 0b011111111, 0b011111111,
	})
	counts(t, b, map[piece.Kind]int{
		piece.I: 17, piece.J: 37, piece.L: 35, piece.O: 9,
		piece.S: 17, piece.T: 40, piece.Z: 18,
	})
}

func TestGenerateBadBoard(t *testing.T) {
	b := boardFromCols([board.Width]uint64{
		0b000011111111, 0b000011000000, 0b110011000000, 0b110011001100, 0b110011001100,
		0b110011001100, 0b110011001100, 0b110000001100, 0b110000001100, 0b111111111100,
	})
	counts(t, b, map[piece.Kind]int{
		piece.I: 38, piece.J: 80, piece.L: 81, piece.O: 29,
		piece.S: 42, piece.T: 83, piece.Z: 41,
	})
}

func TestGenerateTopoutReturnsEmpty(t *testing.T) {
	b := board.New()
	for x := 0; x < board.Width; x++ {
		b.Cols[x] = ^uint64(0)
	}
	got := Generate(b, piece.T)
	if len(got) != 0 {
		t.Fatalf("expected no moves on a full board, got %d", len(got))
	}
}
