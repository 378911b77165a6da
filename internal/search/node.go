// Package search implements the fixed-width beam search that drives
// placement selection: layer-by-layer expansion through movegen and the
// evaluator, deduplicated per layer by a transposition Selector, ranked
// by a root-move-keyed cumulative score.
package search

import (
	"github.com/corvette-dev/fallbeam/internal/gstate"
	"github.com/corvette-dev/fallbeam/internal/moves"
)

// BotScore orders search nodes lexicographically: a node that survived
// to a greater depth always outranks a shallower one, regardless of
// score, since surviving longer means the line didn't top out or run
// dry. Within the same depth, score breaks the tie.
type BotScore struct {
	Depth int
	Score int64
}

// Less reports whether a ranks below b.
func (a BotScore) Less(b BotScore) bool {
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	return a.Score < b.Score
}

// Node is one point in the beam: the state reached, which root move it
// descends from, and the cumulative reward collected along that path.
// Value is recomputed fresh from the current board every layer; reward
// accumulates because each placement's line-clear/T-spin/combo payoff is
// a one-time event that the path keeps credit for.
type Node struct {
	State     gstate.State
	Lock      gstate.Lock
	RootMove  moves.Move
	CumReward int64
	Score     BotScore
}

// Candidate is a ranked root move: the first placement to make, and the
// best score any continuation starting with it reached during the
// search.
type Candidate struct {
	Move  moves.Move
	Score BotScore
}
