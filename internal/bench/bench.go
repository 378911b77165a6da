// Package bench formats beam-search run statistics for human
// consumption: node counts, elapsed time, and throughput, the way a
// benchmark harness would print a progress line.
package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Report summarizes one Bot.Search invocation.
type Report struct {
	Nodes   uint64
	Depth   int
	Elapsed time.Duration
}

// NodesPerSecond returns the search's throughput, or 0 if Elapsed is 0.
func (r Report) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// String renders the report the way a CLI benchmark harness would log
// it: humanized node count, depth reached, elapsed wall time, and
// humanized throughput.
func (r Report) String() string {
	return fmt.Sprintf(
		"%s nodes, depth %d, %s elapsed, %s nodes/s",
		humanize.Comma(int64(r.Nodes)),
		r.Depth,
		r.Elapsed.Round(time.Millisecond),
		humanize.Comma(int64(r.NodesPerSecond())),
	)
}
