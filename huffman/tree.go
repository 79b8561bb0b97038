// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"container/heap"
)

// Node is a vertex of a Huffman tree: either a *Leaf or a *Branch.  Trees are strict (no shared subtrees)
// and are not modified after Build returns.
type Node interface {
	Weight() uint64
	isNode()
}

// Leaf holds one symbol.
type Leaf struct {
	Symbol byte
	weight uint64
}

func (leaf *Leaf) Weight() uint64 { return leaf.weight }
func (*Leaf) isNode()             {}

// Branch joins two subtrees.  Its weight is the sum of theirs.
type Branch struct {
	Left, Right Node
	weight      uint64
}

func newBranch(left, right Node) *Branch {
	return &Branch{
		Left:   left,
		Right:  right,
		weight: left.Weight() + right.Weight(),
	}
}

func (branch *Branch) Weight() uint64 { return branch.weight }
func (*Branch) isNode()               {}

// A slotted node is a not-yet-merged root sitting in one of AlphabetSize slots.  Slot numbers only matter
// for breaking ties between equal weights.
type slotted struct {
	node Node
	slot int
}

// occupiedSlots orders slotted nodes by weight, then by lowest slot.
type occupiedSlots []slotted

func (h occupiedSlots) Len() int { return len(h) }
func (h occupiedSlots) Less(i, j int) bool {
	wi, wj := h[i].node.Weight(), h[j].node.Weight()
	if wi != wj {
		return wi < wj
	}
	return h[i].slot < h[j].slot
}
func (h occupiedSlots) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *occupiedSlots) Push(x interface{}) {
	*h = append(*h, x.(slotted))
}
func (h *occupiedSlots) Pop() interface{} {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// freeSlots yields the lowest empty slot first.
type freeSlots []int

func (h freeSlots) Len() int            { return len(h) }
func (h freeSlots) Less(i, j int) bool  { return h[i] < h[j] }
func (h freeSlots) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *freeSlots) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *freeSlots) Pop() interface{} {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// Build constructs the Huffman tree for t.  Symbol i starts as a leaf in slot i.  Each round removes the
// lightest node (first), then the next lightest (second), where the lower slot wins among equal weights, and
// puts Branch{Left: second, Right: first} into the lowest empty slot.  The same table always yields the
// same tree, which is what lets a decoder rebuild the encoder's codewords.
func Build(t *Table) Node {
	occupied := make(occupiedSlots, 0, AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		occupied = append(occupied, slotted{&Leaf{Symbol: byte(i), weight: t[i]}, i})
	}
	heap.Init(&occupied)

	free := make(freeSlots, 0, AlphabetSize)
	for occupied.Len() > 1 {
		first := heap.Pop(&occupied).(slotted)
		second := heap.Pop(&occupied).(slotted)
		heap.Push(&free, first.slot)
		heap.Push(&free, second.slot)

		merged := newBranch(second.node, first.node)
		heap.Push(&occupied, slotted{merged, heap.Pop(&free).(int)})
	}

	root := occupied[0].node
	log.Debugf("built tree of weight %d", root.Weight())
	return root
}

// Walk visits every leaf under root depth-first, left before right, passing the path from root to the leaf.
func Walk(root Node, visit func(leaf *Leaf, code BitString)) {
	var path []Bit
	var walk func(node Node)
	walk = func(node Node) {
		switch n := node.(type) {
		case *Leaf:
			visit(n, packBits(path))
		case *Branch:
			path = append(path, Zero)
			walk(n.Left)
			path[len(path)-1] = One
			walk(n.Right)
			path = path[:len(path)-1]
		default:
			panic("huffman: unknown node type")
		}
	}
	walk(root)
}
