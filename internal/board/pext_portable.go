package board

// pextAvailable is false on every platform: Go has no portable way to
// emit the BMI2 PEXT instruction without assembly per architecture, so
// this build always takes the portable clear-lines path described in
// compactRows. A future amd64 assembly file could flip this on.
const pextAvailable = false

// pext is unused while pextAvailable is false; it exists so ClearLines'
// fast-path branch stays type-correct without an arch-specific build tag.
func pext(x, mask uint64) uint64 {
	var res uint64
	var bitpos uint
	for m := mask; m != 0; {
		bit := m & -m
		if x&bit != 0 {
			res |= 1 << bitpos
		}
		bitpos++
		m &= m - 1
	}
	return res
}
