// Package movecache wraps movegen.Generate with a bounded, concurrent
// memoization cache. It is opt-in, stateful, and explicitly not part of
// the pure beam search core: search.Bot calls movegen.Generate directly,
// since its own per-layer transposition Selector already dedupes repeat
// work within a single search, and a cross-call cache would give a
// single Bot history that isn't part of the spec's "pure function"
// search contract.
//
// It exists for callers that repeatedly evaluate the same board/piece
// pairs across many independent searches — a benchmark harness sweeping
// fixed boards, or a server juggling several concurrent games that
// happen to share common openings.
package movecache

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"

	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/movegen"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// defaultNumCounters and defaultMaxCost follow ristretto's own sizing
// guidance: roughly 10x the expected number of distinct entries for the
// counters, and a cost budget sized to the entries' approximate memory
// footprint.
const (
	defaultNumCounters = 1e5
	defaultMaxCost     = 1 << 20
	defaultBufferItems = 64
)

// Cache memoizes movegen.Generate results keyed by board contents and
// piece kind.
type Cache struct {
	c *ristretto.Cache[uint64, []moves.Move]
}

// New returns a Cache with ristretto's recommended default sizing.
func New() (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[uint64, []moves.Move]{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// Close releases the cache's background goroutines.
func (c *Cache) Close() {
	c.c.Close()
}

// key hashes the board's ten columns together with the piece kind.
func key(b board.Board, kind piece.Kind) uint64 {
	var buf [board.Width*8 + 1]byte
	for x := 0; x < board.Width; x++ {
		v := b.Cols[x]
		for i := 0; i < 8; i++ {
			buf[x*8+i] = byte(v >> (8 * i))
		}
	}
	buf[len(buf)-1] = byte(kind)
	return xxhash.Sum64(buf[:])
}

// Generate returns movegen.Generate(b, kind), serving a cached copy when
// the exact (board, kind) pair has been seen before.
func (c *Cache) Generate(b board.Board, kind piece.Kind) []moves.Move {
	k := key(b, kind)

	if cached, ok := c.c.Get(k); ok {
		return cached
	}

	generated := movegen.Generate(b, kind)
	c.c.SetWithTTL(k, generated, int64(len(generated)+1), 0)
	c.c.Wait()

	return generated
}
