package huffman

import (
	"fmt"
)

// Decoder decodes bit strings by walking one Tree.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder to decode with the given tree.
func (d *Decoder) Init(tree *Tree) error {
	if tree == nil || len(tree.nodes) == 0 {
		return fmt.Errorf("%w: no code tree", ErrMalformedStream)
	}
	*d = Decoder{tree: tree}
	return nil
}

// Tree returns the Tree that this Decoder decodes with.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode reconstructs the Symbols encoded in bits.
//
// An empty bits decodes to nothing, except when the tree's root is a real
// leaf: the input was then one symbol repeated, and the leaf's frequency is
// the number of repetitions.
//
// Decode fails with ErrMalformedStream if bits stops in the middle of a code,
// or if bits is not empty but the tree has no internal nodes.
//
func (d Decoder) Decode(bits Bits) ([]Symbol, error) {
	t := d.tree
	if t == nil || len(t.nodes) == 0 {
		return nil, fmt.Errorf("%w: no code tree", ErrMalformedStream)
	}

	root := t.Root()
	rootIsLeaf := t.IsLeaf(root)
	size := bits.Len()

	if size == 0 {
		if rootIsLeaf && !t.IsEmpty() {
			return repeatSymbol(t.Symbol(root), t.Frequency(root)), nil
		}
		return []Symbol{}, nil
	}

	if rootIsLeaf {
		return nil, fmt.Errorf("%w: %d bits given, but the code tree has no internal nodes", ErrMalformedStream, size)
	}

	out := make([]Symbol, 0, size/t.Height()+1)
	cursor := root
	for index := 0; index < size; index++ {
		if t.IsLeaf(cursor) {
			out = append(out, t.Symbol(cursor))
			cursor = root
		}
		if bits.At(index) == 0 {
			cursor = t.Left(cursor)
		} else {
			cursor = t.Right(cursor)
		}
	}

	// The last code has no following bit to trigger its emission.
	if !t.IsLeaf(cursor) {
		return nil, fmt.Errorf("%w: stream of %d bits ends in the middle of a code", ErrMalformedStream, size)
	}
	out = append(out, t.Symbol(cursor))
	return out, nil
}

func repeatSymbol(symbol Symbol, count int) []Symbol {
	out := make([]Symbol, count)
	for index := range out {
		out[index] = symbol
	}
	return out
}

// Decode reconstructs the Symbols encoded in bits, using the tree that was
// returned by Encode alongside them.
func Decode(bits Bits, tree *Tree) ([]Symbol, error) {
	var d Decoder
	if err := d.Init(tree); err != nil {
		return nil, err
	}
	return d.Decode(bits)
}

// DecodeString is like Decode, but returns the Symbols as a string of runes.
// It is the inverse of EncodeString, and fails with ErrInvalidSymbol if a
// decoded Symbol is not a valid rune.
func DecodeString(bits Bits, tree *Tree) (string, error) {
	symbols, err := Decode(bits, tree)
	if err != nil {
		return "", err
	}
	return symbolsToString(symbols)
}
