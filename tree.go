package huffpack

import (
	"container/heap"
)

// node is a node in the code tree.  A leaf has no children; every other node
// has exactly two.
type node[S comparable] struct {
	symbol S
	freq   uint64
	seq    int
	left   *node[S]
	right  *node[S]
}

func (n *node[S]) isLeaf() bool {
	return n.left == nil
}

// buildTree runs the greedy merge over the entries of f and returns the
// root.  Leaves take sequence numbers 0..N-1 in table order, and merged nodes
// take N, N+1, ... in creation order.  f must not be empty.
func buildTree[S comparable](f *Frequencies[S]) *node[S] {
	numEntries := f.Len()
	h := nodeHeap[S]{list: make([]*node[S], 0, numEntries)}
	for i, e := range f.entries {
		h.list = append(h.list, &node[S]{symbol: e.Symbol, freq: uint64(e.Count), seq: i})
	}
	h.Init()

	nextSeq := numEntries
	for h.Len() > 1 {
		a := heap.Pop(&h).(*node[S])
		b := heap.Pop(&h).(*node[S])
		heap.Push(&h, &node[S]{freq: a.freq + b.freq, seq: nextSeq, left: a, right: b})
		nextSeq++
	}
	return heap.Pop(&h).(*node[S])
}

// type nodeHeap {{{

type nodeHeap[S comparable] struct {
	list []*node[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(*node[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[rune])(nil)

// }}}
