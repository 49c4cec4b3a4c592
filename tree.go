package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within one Tree.
type NodeID int32

// InvalidNode is returned by Left and Right for leaf nodes.
const InvalidNode = NodeID(-1)

// Tree is a Huffman code tree.  Each node is either a leaf, holding a Symbol
// and its frequency, or an internal node, holding the combined frequency of
// exactly two children.  The path from the root to a leaf is the code for
// that leaf's Symbol: 0 for each step left, 1 for each step right.
//
// A Tree is immutable once built and may be shared by concurrent readers.
type Tree struct {
	nodes     []node
	root      NodeID
	numLeaves int
}

type node struct {
	symbol Symbol
	freq   int
	left   NodeID
	right  NodeID
}

func (n node) isLeaf() bool {
	return n.left == InvalidNode
}

// EmptyTree returns the tree that pairs with the encoding of an empty input:
// a single leaf holding InvalidSymbol with a frequency of 1.
func EmptyTree() *Tree {
	return &Tree{
		nodes: []node{{symbol: InvalidSymbol, freq: 1, left: InvalidNode, right: InvalidNode}},
		root:  0,
	}
}

// BuildTree constructs a Huffman code tree by repeatedly merging the two
// nodes of lowest frequency.  Nodes of equal frequency are merged in the
// order they were created, with the entries taken in the order given, so the
// same entries always produce the same tree.
//
// No entries yields EmptyTree().  A single entry yields a tree whose root is
// a bare leaf.
//
func BuildTree(entries []SymbolFreq) (*Tree, error) {
	if len(entries) == 0 {
		return EmptyTree(), nil
	}
	if len(entries) > math.MaxInt32/2 {
		return nil, fmt.Errorf("%w: too many distinct symbols (%d)", ErrInvalidSymbol, len(entries))
	}

	t := &Tree{
		nodes:     make([]node, 0, 2*len(entries)-1),
		numLeaves: len(entries),
	}

	seen := make(map[Symbol]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Freq < 1 {
			return nil, fmt.Errorf("%w: symbol %d has frequency %d, must be positive", ErrInvalidFrequency, entry.Symbol, entry.Freq)
		}
		if entry.Symbol < 0 {
			return nil, fmt.Errorf("%w: symbol %d is negative", ErrInvalidSymbol, entry.Symbol)
		}
		if _, found := seen[entry.Symbol]; found {
			return nil, fmt.Errorf("%w: symbol %d is listed more than once", ErrInvalidSymbol, entry.Symbol)
		}
		seen[entry.Symbol] = struct{}{}
		t.nodes = append(t.nodes, node{
			symbol: entry.Symbol,
			freq:   entry.Freq,
			left:   InvalidNode,
			right:  InvalidNode,
		})
	}

	h := nodeHeap{tree: t, list: make([]NodeID, len(t.nodes))}
	for index := range t.nodes {
		h.list[index] = NodeID(index)
	}
	h.Init()

	for h.Len() > 1 {
		a := h.PopNode()
		b := h.PopNode()
		h.PushNode(t.combine(a, b))
	}

	t.root = h.PopNode()
	assert.Assertf(len(t.nodes) == 2*t.numLeaves-1, "built %d nodes for %d leaves", len(t.nodes), t.numLeaves)
	return t, nil
}

// combine appends a new internal node with children a and b.  The node with
// the strictly lower frequency goes on the left; on a tie, a goes left.
func (t *Tree) combine(a, b NodeID) NodeID {
	if t.nodes[a].freq > t.nodes[b].freq {
		a, b = b, a
	}

	// Compute freqSum using saturating addition
	freqSum := t.nodes[a].freq + t.nodes[b].freq
	if freqSum < t.nodes[a].freq {
		freqSum = math.MaxInt
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		symbol: InvalidSymbol,
		freq:   freqSum,
		left:   a,
		right:  b,
	})
	return id
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// IsLeaf returns true iff the given node is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].isLeaf()
}

// IsEmpty returns true iff this is the tree returned by EmptyTree.
func (t *Tree) IsEmpty() bool {
	root := t.nodes[t.root]
	return root.isLeaf() && root.symbol == InvalidSymbol
}

// Symbol returns the Symbol held by a leaf, or InvalidSymbol for an internal
// node.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Frequency returns the frequency of a node.  For an internal node, this is
// the sum of its children's frequencies.
func (t *Tree) Frequency(id NodeID) int {
	return t.nodes[id].freq
}

// Left returns the left (0) child of an internal node, or InvalidNode for a
// leaf.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right (1) child of an internal node, or InvalidNode for
// a leaf.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// NumNodes returns the total number of nodes, leaves included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// symbols.  The empty tree has no leaves, even though its root is one.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Height returns the number of edges on the longest root-to-leaf path, which
// is also the bit length of the longest code.
func (t *Tree) Height() int {
	var height int
	t.walk(func(id NodeID, path Bits) {
		if t.nodes[id].isLeaf() && path.Len() > height {
			height = path.Len()
		}
	})
	return height
}

// Equal returns true iff t and other have the same shape, with the same
// symbols and frequencies in the same places.
func (t *Tree) Equal(other *Tree) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.root != other.root || t.numLeaves != other.numLeaves || len(t.nodes) != len(other.nodes) {
		return false
	}
	for index := range t.nodes {
		if t.nodes[index] != other.nodes[index] {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.  Nodes are listed in preorder, each labeled with its path.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tHeight() = %d\n", t.Height())
	t.walk(func(id NodeID, path Bits) {
		n := t.nodes[id]
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tNode(%q) = Leaf{%d, %d}\n", path.String(), n.symbol, n.freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%q) = Internal{%d}\n", path.String(), n.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in preorder, passing the path from the root.  The
// path is only valid for the duration of the call; visit must Clone it to
// keep it.
//
// The walk uses an explicit stack, since adversarial frequencies (e.g. the
// Fibonacci sequence) can make the tree as tall as it has leaves.
//
func (t *Tree) walk(visit func(id NodeID, path Bits)) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id NodeID
		x  byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.numLeaves)))
	var path Bits

	processChild := func(id NodeID) {
		visit(id, path)
		if !t.nodes[id].isLeaf() {
			stack = append(stack, stackItem{id: id})
		}
	}

	processChild(t.root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			path.Append(0)
			processChild(t.nodes[top.id].left)
		case 1:
			path.Truncate(path.Len() - 1)
			path.Append(1)
			processChild(t.nodes[top.id].right)
		case 2:
			path.Truncate(path.Len() - 1)
			stack = stack[:len(stack)-1]
		}
	}
}
