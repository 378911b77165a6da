package bench

import (
	"strings"
	"testing"
	"time"
)

func TestStringIncludesHumanizedNodeCount(t *testing.T) {
	r := Report{Nodes: 1234567, Depth: 6, Elapsed: 250 * time.Millisecond}
	s := r.String()
	if !strings.Contains(s, "1,234,567") {
		t.Fatalf("expected humanized node count in %q", s)
	}
	if !strings.Contains(s, "depth 6") {
		t.Fatalf("expected depth in %q", s)
	}
}

func TestNodesPerSecondZeroElapsed(t *testing.T) {
	r := Report{Nodes: 100, Depth: 1}
	if got := r.NodesPerSecond(); got != 0 {
		t.Fatalf("expected 0 throughput for zero elapsed time, got %f", got)
	}
}

func TestNodesPerSecondComputesRate(t *testing.T) {
	r := Report{Nodes: 2000, Depth: 1, Elapsed: 2 * time.Second}
	if got := r.NodesPerSecond(); got != 1000 {
		t.Fatalf("expected 1000 nodes/s, got %f", got)
	}
}
