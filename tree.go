package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// nodeIndex is the position of a node in a tree's arena.  Nodes are created
// in arena order, so a node's index is also its creation number.
type nodeIndex int16

const noNode = nodeIndex(-1)

const rootIndex = nodeIndex(NumNodes - 1)

type node struct {
	num    nodeIndex
	value  uint64
	child0 nodeIndex
	child1 nodeIndex
	symbol Symbol
}

func (n *node) isLeaf() bool {
	return n.child0 == noNode
}

// tree is a fixed-size arena holding all NumNodes nodes of a Huffman tree.
// Leaves occupy indices [0, NumSymbols) in Symbol order; internal nodes follow
// in the order they were merged, and the root is always the last node.
type tree struct {
	nodes [NumNodes]node
}

// build fills the arena from a FrequencyTable.
//
// The two smallest nodes are repeatedly merged until only the root is left,
// where "smallest" means lowest weight and, between equal weights, lowest
// creation number.  The first node popped becomes child0 (bit 0) and the
// second becomes child1 (bit 1).  Zero-weight leaves take part like any other,
// so every Symbol ends up with a code and the root always has two children.
//
func (t *tree) build(freqs *FrequencyTable) {
	h := nodeHeap{t: t, list: make([]nodeIndex, 0, NumSymbols)}

	next := nodeIndex(0)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		t.nodes[next] = node{
			num:    next,
			value:  freqs[symbol],
			child0: noNode,
			child1: noNode,
			symbol: Symbol(symbol),
		}
		h.list = append(h.list, next)
		next++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeIndex)
		b := heap.Pop(&h).(nodeIndex)

		// Saturate rather than wrap, so that a forged header still
		// yields a well-formed (if useless) tree.
		t.nodes[next] = node{
			num:    next,
			value:  addSaturating(t.nodes[a].value, t.nodes[b].value),
			child0: a,
			child1: b,
		}
		heap.Push(&h, next)
		next++
	}

	root := heap.Pop(&h).(nodeIndex)
	assert.Assertf(next == NumNodes, "created %d nodes, expected %d", next, NumNodes)
	assert.Assertf(root == rootIndex, "root is node %d, expected %d", root, rootIndex)
}

// codes walks the tree depth-first and stores the root-to-leaf path of every
// leaf in out.  It returns the lengths of the shortest and longest codes.
//
func (t *tree) codes(out *[NumSymbols]Code) (minSize byte, maxSize byte) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed child0
	//   x=2 → We have already processed both children

	type stackItem struct {
		index nodeIndex
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{index: rootIndex})
	minSize = MaxCodeSize

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child nodeIndex
		var bit uint8
		switch x {
		case 0:
			child, bit = t.nodes[top.index].child0, 0
		case 1:
			child, bit = t.nodes[top.index].child1, 1
		default:
			stack = stack[:len(stack)-1]
			continue
		}

		code := top.code.Append(bit)
		n := &t.nodes[child]
		if !n.isLeaf() {
			stack = append(stack, stackItem{index: child, code: code})
			continue
		}

		out[n.symbol] = code
		if code.Size < minSize {
			minSize = code.Size
		}
		if code.Size > maxSize {
			maxSize = code.Size
		}
	}

	assert.Assertf(minSize >= 1, "leaf with an empty code")
	return minSize, maxSize
}

// step moves from an internal node along one bit.  If that lands on a leaf,
// it returns the leaf's Symbol with ok set to true.
func (t *tree) step(from nodeIndex, bit uint8) (to nodeIndex, symbol Symbol, ok bool) {
	n := &t.nodes[from]
	if bit == 0 {
		to = n.child0
	} else {
		to = n.child1
	}
	if leaf := &t.nodes[to]; leaf.isLeaf() {
		return to, leaf.symbol, true
	}
	return to, 0, false
}

// type nodeHeap {{{

type nodeHeap struct {
	t    *tree
	list []nodeIndex
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := &h.t.nodes[h.list[i]], &h.t.nodes[h.list[j]]
	if a.value != b.value {
		return a.value < b.value
	}
	return a.num < b.num
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeIndex))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
