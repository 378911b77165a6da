package search

import (
	"container/heap"

	"github.com/corvette-dev/fallbeam/internal/statehash"
)

// selectorItem pairs a Node with its transposition fingerprint so Swap
// can keep the index map in sync with the heap's backing slice.
type selectorItem struct {
	node Node
	hash uint64
}

// Selector is a bounded top-K min-heap over Node.Score, deduplicated by
// state fingerprint: offering a node whose fingerprint already appears
// in the layer keeps only the better-scoring of the two. It implements
// container/heap.Interface directly; callers use Offer, not Push/Pop.
type Selector struct {
	cap   int
	items []selectorItem
	index map[uint64]int
}

// NewSelector returns an empty Selector bounded to capacity entries.
func NewSelector(capacity int) *Selector {
	return &Selector{
		cap:   capacity,
		index: make(map[uint64]int, capacity),
	}
}

func (s *Selector) Len() int { return len(s.items) }

func (s *Selector) Less(i, j int) bool {
	return s.items[i].node.Score.Less(s.items[j].node.Score)
}

func (s *Selector) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.index[s.items[i].hash] = i
	s.index[s.items[j].hash] = j
}

// Push implements heap.Interface; call Offer instead of this directly.
func (s *Selector) Push(x any) {
	it := x.(selectorItem)
	s.index[it.hash] = len(s.items)
	s.items = append(s.items, it)
}

// Pop implements heap.Interface; call Offer instead of this directly.
func (s *Selector) Pop() any {
	old := s.items
	n := len(old)
	it := old[n-1]
	s.items = old[:n-1]
	delete(s.index, it.hash)
	return it
}

// Offer inserts n, keyed by the fingerprint of its State. If a node with
// the same fingerprint is already present, the higher-scoring of the two
// survives. Once the selector is at capacity, n only displaces the
// current minimum if it scores higher.
func (s *Selector) Offer(n Node) {
	h := statehash.Sum(n.State)

	if i, ok := s.index[h]; ok {
		if s.items[i].node.Score.Less(n.Score) {
			s.items[i].node = n
			heap.Fix(s, i)
		}
		return
	}

	if len(s.items) < s.cap {
		heap.Push(s, selectorItem{node: n, hash: h})
		return
	}

	if s.items[0].node.Score.Less(n.Score) {
		heap.Pop(s)
		heap.Push(s, selectorItem{node: n, hash: h})
	}
}

// Nodes returns every surviving node, in no particular order.
func (s *Selector) Nodes() []Node {
	out := make([]Node, len(s.items))
	for i, it := range s.items {
		out[i] = it.node
	}
	return out
}
