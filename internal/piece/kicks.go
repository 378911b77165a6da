package piece

// KickOffset is a single SRS kick candidate offset.
type KickOffset struct {
	DX, DY int8
}

// Kick tables are indexed [rotation][kick 0..4]. A rotation attempt from
// current to target resolves candidate i as kicks[current][i] - kicks[target][i].
var jlstzKicks = [4][5]KickOffset{
	North: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	East:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	South: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	West:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var iKicks = [4][5]KickOffset{
	North: {{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}},
	East:  {{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
	South: {{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}},
	West:  {{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
}

var oKicks = [4][5]KickOffset{
	North: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	East:  {{0, -1}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	South: {{-1, -1}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	West:  {{-1, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
}

// KickTable returns the five-offset kick table to use for k's rotations.
func KickTable(k Kind) *[4][5]KickOffset {
	switch k {
	case I:
		return &iKicks
	case O:
		return &oKicks
	default:
		return &jlstzKicks
	}
}
