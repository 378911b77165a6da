// Command fallbeam-bench runs the beam search against a handful of fixed
// boards and reports how many nodes it visited and how fast, the way a
// search engine's own bench command measures itself without needing a
// live opponent to play against.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/corvette-dev/fallbeam/internal/bag"
	"github.com/corvette-dev/fallbeam/internal/bench"
	"github.com/corvette-dev/fallbeam/internal/board"
	"github.com/corvette-dev/fallbeam/internal/eval"
	"github.com/corvette-dev/fallbeam/internal/gstate"
	"github.com/corvette-dev/fallbeam/internal/piece"
	"github.com/corvette-dev/fallbeam/internal/search"
)

var (
	width  = flag.Int("width", 250, "beam width: nodes kept per layer")
	depth  = flag.Int("depth", 12, "beam depth: layers of lookahead")
	branch = flag.Int("branch", 1, "moves explored per node (0 = unbounded)")
)

// fixtureBoards are representative mid-game shapes: an empty board, a
// board with a T-slot carved into its stack, a board with a covered
// hole, and a cluttered board full of overhangs.
var fixtureBoards = []board.Board{
	{},
	{Cols: [board.Width]uint64{
		0b000000111111,
		0b000000111111,
		0b000000011111,
		0b000000000111,
		0b000000000001,
		0b000000000000,
		0b000000001101,
		0b000000011111,
		0b000000111111,
		0b000011111111,
	}},
	{Cols: [board.Width]uint64{
		0b000111111111,
		0b000111111111,
		0b000011111111,
		0b000011111111,
		0b000000111111,
		0b000000100110,
		0b000010000001,
		0b000011110111,
		0b000011111111,
		0b000011111111,
	}},
	{Cols: [board.Width]uint64{
		0b000011111111,
		0b000011000000,
		0b110011000000,
		0b110011001100,
		0b110011001100,
		0b110011001100,
		0b110011001100,
		0b110000001100,
		0b110000001100,
		0b111111111100,
	}},
}

var fixtureQueue = []piece.Kind{
	piece.I, piece.O, piece.L, piece.J, piece.S, piece.Z, piece.T,
	piece.I, piece.O, piece.L, piece.J, piece.S,
}

func main() {
	flag.Parse()

	bot := search.NewBot(eval.DefaultWeights(), search.BotConfigs{
		Width:  *width,
		Depth:  *depth,
		Branch: *branch,
	})

	var totalNodes uint64
	var totalElapsed time.Duration

	for i, b := range fixtureBoards {
		state := gstate.State{Board: b, Bag: bag.All}

		start := time.Now()
		candidates, nodes, err := bot.SearchCounting(state, fixtureQueue)
		elapsed := time.Since(start)

		if err != nil {
			log.Fatalf("fixture %d: search failed: %v", i, err)
		}

		mv, ok := search.BestMove(state, fixtureQueue, candidates, 0)
		if !ok {
			log.Fatalf("fixture %d: no safe candidates returned", i)
		}

		totalNodes += nodes
		totalElapsed += elapsed

		report := bench.Report{Nodes: nodes, Depth: *depth, Elapsed: elapsed}
		fmt.Printf("fixture %d: best=%s  %s\n", i, mv, report)
	}

	report := bench.Report{Nodes: totalNodes, Depth: *depth, Elapsed: totalElapsed}
	fmt.Printf("total: %s\n", report)
}
