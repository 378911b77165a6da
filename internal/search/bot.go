package search

import (
	"errors"
	"sort"

	"github.com/corvette-dev/fallbeam/internal/bag"
	"github.com/corvette-dev/fallbeam/internal/eval"
	"github.com/corvette-dev/fallbeam/internal/gstate"
	"github.com/corvette-dev/fallbeam/internal/movegen"
	"github.com/corvette-dev/fallbeam/internal/moves"
	"github.com/corvette-dev/fallbeam/internal/piece"
)

// ErrInvalidQueue is returned when Search is called with fewer than two
// pieces left in the queue from the state's cursor, or with a queue that
// could not have been drawn from the state's bag.
var ErrInvalidQueue = errors.New("search: invalid queue")

// ErrDeath is returned when no piece playable this turn (the current
// piece, or the one a hold would bring in) has a legal placement on the
// board at all.
var ErrDeath = errors.New("search: no legal placement for the current piece")

// BotConfigs bounds the beam search's resource use: Width caps how many
// nodes survive each layer, Depth caps how many layers run, Branch caps
// how many of a node's generated moves are explored (0 means unbounded).
type BotConfigs struct {
	Width  int
	Depth  int
	Branch int
}

// DefaultBotConfigs is a reasonable balance of search quality against
// per-move latency for an interactive opponent.
func DefaultBotConfigs() BotConfigs {
	return BotConfigs{Width: 32, Depth: 6, Branch: 0}
}

// Bot runs the beam search with a fixed set of evaluator weights and
// resource bounds. It holds no mutable state between calls to Search:
// every call is a pure function of its arguments.
type Bot struct {
	Weights eval.Weights
	Configs BotConfigs
}

// NewBot returns a Bot configured with w and cfg.
func NewBot(w eval.Weights, cfg BotConfigs) *Bot {
	return &Bot{Weights: w, Configs: cfg}
}

// turnKinds lists every piece kind playable this turn from state: the
// current piece always, plus whichever piece a hold action would bring
// into play (the held piece if one is held and differs from current, or
// the next piece in queue if hold is empty).
func turnKinds(state gstate.State, queue []piece.Kind) []piece.Kind {
	if state.Next >= len(queue) {
		return nil
	}

	current := queue[state.Next]
	kinds := []piece.Kind{current}

	switch {
	case state.Hold.Set:
		if state.Hold.Kind != current {
			kinds = append(kinds, state.Hold.Kind)
		}
	case state.Next+1 < len(queue):
		kinds = append(kinds, queue[state.Next+1])
	}

	return kinds
}

// centerHeight is the tallest of the four center columns, used by the
// safety selector to judge how close a resulting board sits to topping
// out in the zone that matters most for T-spin setups and overhangs.
func centerHeight(heights [10]int) int {
	h := 0
	for x := 3; x <= 6; x++ {
		if heights[x] > h {
			h = heights[x]
		}
	}
	return h
}

// expandLayer generates every child of every node in layer, scores them
// through the evaluator, and offers them into next. It also folds each
// child's score into best, keyed by the root move the child descends
// from.
func (bot *Bot) expandLayer(layer []Node, queue []piece.Kind, depth int, next *Selector, best map[moves.Move]BotScore, nodes *uint64) {
	for _, n := range layer {
		kinds := turnKinds(n.State, queue)
		if kinds == nil {
			continue
		}

		for _, kind := range kinds {
			generated := movegen.Generate(n.State.Board, kind)
			if bot.Configs.Branch > 0 && len(generated) > bot.Configs.Branch {
				generated = generated[:bot.Configs.Branch]
			}

			for _, mv := range generated {
				*nodes++

				clone := n.State
				lock := clone.Make(mv, queue)
				value, reward := eval.Evaluate(clone, lock, mv, bot.Weights)

				root := n.RootMove
				if depth == 1 {
					root = mv
				}

				cum := n.CumReward + reward
				child := Node{
					State:     clone,
					Lock:      lock,
					RootMove:  root,
					CumReward: cum,
					Score:     BotScore{Depth: depth, Score: cum + value},
				}

				next.Offer(child)

				if cur, ok := best[child.RootMove]; !ok || cur.Less(child.Score) {
					best[child.RootMove] = child.Score
				}
			}
		}
	}
}

// Search runs the beam from state, trying every piece playable this
// turn (including a hold swap) as the root move, and expanding up to
// Configs.Depth layers of lookahead. It returns every root move tried,
// ranked by the best continuation score it reached, best first.
func (bot *Bot) Search(state gstate.State, queue []piece.Kind) ([]Candidate, error) {
	candidates, _, err := bot.searchCounting(state, queue)
	return candidates, err
}

// SearchCounting behaves exactly like Search but additionally reports
// how many nodes (generated, evaluated placements) the search visited,
// for benchmark reporting.
func (bot *Bot) SearchCounting(state gstate.State, queue []piece.Kind) ([]Candidate, uint64, error) {
	return bot.searchCounting(state, queue)
}

func (bot *Bot) searchCounting(state gstate.State, queue []piece.Kind) ([]Candidate, uint64, error) {
	if len(queue)-state.Next < 2 {
		return nil, 0, ErrInvalidQueue
	}
	b := state.Bag
	for _, k := range queue[state.Next:] {
		if !bag.Update(&b, k) {
			return nil, 0, ErrInvalidQueue
		}
	}

	var nodes uint64
	best := make(map[moves.Move]BotScore)

	root := NewSelector(bot.Configs.Width)
	seedLayer := []Node{{State: state}}
	bot.expandLayer(seedLayer, queue, 1, root, best, &nodes)

	if root.Len() == 0 {
		return nil, nodes, ErrDeath
	}

	// A hold swap reserves one piece from the queue as a pending current
	// piece rather than a lookahead piece, so the deepest ply reachable
	// is one shallower whenever hold is empty.
	queueDepth := len(queue)
	if !state.Hold.Set {
		queueDepth--
	}
	maxDepth := bot.Configs.Depth
	if queueDepth < maxDepth {
		maxDepth = queueDepth
	}

	layer := root.Nodes()
	for depth := 2; depth <= maxDepth; depth++ {
		next := NewSelector(bot.Configs.Width)
		bot.expandLayer(layer, queue, depth, next, best, &nodes)
		if next.Len() == 0 {
			break
		}
		layer = next.Nodes()
	}

	candidates := make([]Candidate, 0, len(best))
	for mv, score := range best {
		candidates = append(candidates, Candidate{Move: mv, Score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[j].Score.Less(candidates[i].Score)
	})

	return candidates, nodes, nil
}

// maxSafeHeight is the tallest a candidate's center columns may sit, net
// of incoming garbage and credit for garbage it sends out itself, before
// BestMove excludes it as too dangerous to play.
const maxSafeHeight = 20

// BestMove picks the move fallbeam should actually play out of a ranked
// candidate list, the way a human filters engine lines through a safety
// check before committing to one. It replays each candidate's root move
// on a scratch copy of state to learn the resulting board and how much
// garbage it sends, discards any candidate whose resulting center-column
// height plus incomingGarbage minus what it sent exceeds maxSafeHeight,
// and returns the best (depth, score) among whatever survives. It
// reports false if every candidate is filtered out — the position is
// lost no matter which move is played.
func BestMove(state gstate.State, queue []piece.Kind, candidates []Candidate, incomingGarbage int) (moves.Move, bool) {
	var best *Candidate
	for i := range candidates {
		c := &candidates[i]

		scratch := state
		lock := scratch.Make(c.Move, queue)
		height := centerHeight(scratch.Board.Heights())

		if height+incomingGarbage-lock.Sent > maxSafeHeight {
			continue
		}

		if best == nil || best.Score.Less(c.Score) {
			best = c
		}
	}

	if best == nil {
		return moves.Move{}, false
	}
	return best.Move, true
}
