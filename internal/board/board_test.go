package board

import "testing"

func TestHeightOnEmptyColumn(t *testing.T) {
	b := New()
	if h := b.Height(0); h != 0 {
		t.Errorf("expected height 0, got %d", h)
	}
}

func TestSetClearRoundtrip(t *testing.T) {
	b := New()
	b.Set(3, 5)
	if !b.Has(3, 5) {
		t.Fatal("expected cell (3,5) to be occupied after Set")
	}
	b.Clear(3, 5)
	if b.Has(3, 5) {
		t.Fatal("expected cell (3,5) to be empty after Clear")
	}
}

func TestHasOutOfRangeIsWall(t *testing.T) {
	b := New()
	cases := [][2]int{{-1, 0}, {Width, 0}, {0, -1}, {0, 64}}
	for _, c := range cases {
		if !b.Has(c[0], c[1]) {
			t.Errorf("expected (%d,%d) to read as occupied (wall)", c[0], c[1])
		}
	}
}

func TestIsEmpty(t *testing.T) {
	b := New()
	if !b.IsEmpty() {
		t.Fatal("new board should be empty")
	}
	b.Set(0, 0)
	if b.IsEmpty() {
		t.Fatal("board with a set cell should not be empty")
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	b := New()
	b.Set(0, 0)
	if n := b.ClearLines(); n != 0 {
		t.Fatalf("expected 0 clears, got %d", n)
	}
}

func TestClearLinesSingleRow(t *testing.T) {
	b := New()
	for x := 0; x < Width; x++ {
		b.Set(x, 0)
	}
	b.Set(0, 1)

	n := b.ClearLines()
	if n != 1 {
		t.Fatalf("expected 1 clear, got %d", n)
	}
	if !b.Has(0, 0) {
		t.Error("row above the clear should have compacted down")
	}
	for x := 1; x < Width; x++ {
		if b.Has(x, 0) {
			t.Errorf("column %d row 0 should be empty after compacting", x)
		}
	}
}

// TestClearLinesAllPatterns exhaustively checks every possible mask shape
// (1..15, normalized so bit 0 is set) against the bit-by-bit pext
// reference, matching the spec's exhaustive-pattern testing requirement
// for the portable clear-lines path.
func TestClearLinesAllPatterns(t *testing.T) {
	for shift := 0; shift < 4; shift++ {
		for pattern := 1; pattern < 16; pattern++ {
			if pattern&1 == 0 {
				continue // normalized shapes always have bit 0 set
			}
			var b Board
			// Rows above the cleared ones, filled only in even columns so
			// they never form full rows themselves.
			hi := uint64(0b1011)
			for x := 0; x < Width; x++ {
				b.Cols[x] = uint64(pattern) << uint(shift)
				if x%2 == 0 {
					b.Cols[x] |= hi << uint(shift+4)
				}
			}
			orig := b.Cols
			mask := uint64(pattern) << uint(shift)

			wantCleared := popcount(uint64(pattern))
			n := b.ClearLines()
			if n != wantCleared {
				t.Fatalf("shift=%d pattern=%04b: expected %d clears, got %d", shift, pattern, wantCleared, n)
			}

			for x := 0; x < Width; x++ {
				want := pext(orig[x], ^mask)
				got := b.Cols[x]
				if got != want {
					t.Fatalf("shift=%d pattern=%04b col %d: expected %0b got %0b", shift, pattern, x, want, got)
				}
			}
		}
	}
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		n += int(x & 1)
		x >>= 1
	}
	return n
}
