// Package statehash fingerprints a gstate.State down to a single uint64
// for use as the beam search selector's transposition key. Two states
// with the same fingerprint are treated as the same node even if they
// were reached via different move sequences, so the selector keeps only
// the better-scoring one.
package statehash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/gstate"
)

// packedLen is the byte length of the serialization fed to xxhash: ten
// 8-byte columns, one hold byte, one bag byte, one next byte, one b2b
// byte, one combo byte.
const packedLen = board.Width*8 + 5

// Sum returns a 64-bit fingerprint of s. It is deterministic and has no
// relation to Go's map iteration order or pointer identity — two equal
// States (by ==) always hash equal.
func Sum(s gstate.State) uint64 {
	var buf [packedLen]byte
	for x := 0; x < board.Width; x++ {
		binary.LittleEndian.PutUint64(buf[x*8:], s.Board.Cols[x])
	}

	off := board.Width * 8
	if s.Hold.Set {
		buf[off] = byte(s.Hold.Kind) + 1
	}
	buf[off+1] = byte(s.Bag)
	buf[off+2] = byte(s.Next)
	buf[off+3] = s.B2B
	buf[off+4] = s.Combo

	return xxhash.Sum64(buf[:])
}
