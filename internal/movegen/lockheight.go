package movegen

import "github.com/corvette-dev/fallbeam/internal/piece"

// lockHeightTable caps how high a placement's bounding box may sit and
// still be reported as a legal final lock, preventing moves whose shape
// extends above the visible field into the spawn buffer. Indexed
// [kind][rotation]; the I,East entry of 21 is intentionally higher than
// the rest — it permits vertical-I placements whose topmost cell extends
// above row 20, matching reference move counts for edge tuck/kick
// detection. Do not "fix" it down to 20.
var lockHeightTable = [piece.NumKinds][4]int8{
	piece.I: {19, 21, 19, 20},
	piece.J: {19, 20, 20, 20},
	piece.L: {19, 20, 20, 20},
	piece.O: {19, 20, 20, 19},
	piece.S: {19, 20, 20, 20},
	piece.T: {19, 20, 20, 20},
	piece.Z: {19, 20, 20, 20},
}

func lockHeight(kind piece.Kind, r piece.Rotation) int8 {
	return lockHeightTable[kind][r]
}
