package hufftree

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is an immutable Huffman code tree over the Symbol alphabet.
// Nodes live in an arena and refer to each other by index; leaves hold a
// symbol, internal nodes hold exactly two children.
type Tree struct {
	nodes []treeNode
	root  int32
}

type treeNode struct {
	symbol      Symbol
	left, right int32
}

const noChild = int32(-1)

// Build constructs the Huffman tree for the given frequencies using the
// classic greedy merge: repeatedly combine the two lowest-weight nodes
// until one remains.  Ties are broken by insertion order (leaves in
// ascending symbol order, merged nodes in creation order), so the same
// table always yields the same tree.
//
// A table whose only nonzero count belongs to a single symbol still
// produces a usable tree: the lone leaf is wrapped in one synthetic
// internal node as the left child, with a placeholder leaf on the right
// for a symbol that never occurs, so the lone symbol gets a one-bit
// code.
//
func Build(ft *FrequencyTable) *Tree {
	t := &Tree{nodes: make([]treeNode, 0, 2*NumSymbols-1)}

	h := weightHeap{list: make([]weightedNode, 0, NumSymbols)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if w := ft[symbol]; w != 0 {
			h.list = append(h.list, weightedNode{
				index:  t.addLeaf(symbol),
				weight: w,
				seq:    int32(len(h.list)),
			})
		}
	}
	assert.Assertf(h.Len() > 0, "frequency table has no nonzero counts")
	h.Init()

	if h.Len() == 1 {
		lone := heap.Pop(&h).(weightedNode)
		placeholder := Symbol(0)
		if t.nodes[lone.index].symbol == placeholder {
			placeholder = 1
		}
		t.root = t.addInternal(lone.index, t.addLeaf(placeholder))
		return t
	}

	nextSeq := int32(h.Len())
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		// Compute the merged weight using saturating addition
		weight := a.weight + b.weight
		if weight < a.weight {
			weight = math.MaxUint64
		}

		heap.Push(&h, weightedNode{
			index:  t.addInternal(a.index, b.index),
			weight: weight,
			seq:    nextSeq,
		})
		nextSeq++
	}
	t.root = heap.Pop(&h).(weightedNode).index
	return t
}

func (t *Tree) addLeaf(symbol Symbol) int32 {
	t.nodes = append(t.nodes, treeNode{symbol: symbol, left: noChild, right: noChild})
	return int32(len(t.nodes)) - 1
}

func (t *Tree) addInternal(left, right int32) int32 {
	t.nodes = append(t.nodes, treeNode{symbol: InvalidSymbol, left: left, right: right})
	return int32(len(t.nodes)) - 1
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return t.root
}

// IsLeaf reports whether the node at index is a leaf.
func (t *Tree) IsLeaf(index int32) bool {
	return t.nodes[index].left == noChild
}

// LeafSymbol returns the symbol held by the leaf at index.
func (t *Tree) LeafSymbol(index int32) Symbol {
	assert.Assertf(t.IsLeaf(index), "node %d is not a leaf", index)
	return t.nodes[index].symbol
}

// Child returns the left (bit 0) or right (bit 1) child of the internal
// node at index.
func (t *Tree) Child(index int32, bit bool) int32 {
	n := t.nodes[index]
	assert.Assertf(n.left != noChild, "node %d is a leaf", index)
	if bit {
		return n.right
	}
	return n.left
}

// visitLeaves walks the subtree at index depth-first, invoking visit
// with each leaf's symbol and root-to-leaf path.
func (t *Tree) visitLeaves(index int32, prefix Code, visit func(Symbol, Code)) {
	n := t.nodes[index]
	if n.left == noChild {
		visit(n.symbol, prefix)
		return
	}
	t.visitLeaves(n.left, prefix.appendBit(0), visit)
	t.visitLeaves(n.right, prefix.appendBit(1), visit)
}

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	index  int32
	weight uint64
	seq    int32
}

type weightHeap struct {
	list []weightedNode
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
