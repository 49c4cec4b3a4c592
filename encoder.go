package huffman

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Encoder encodes Symbols using the codes of one Tree.
type Encoder struct {
	tree  *Tree
	table CodeTable
}

// Init initializes this Encoder to encode with the codes of the given tree.
func (e *Encoder) Init(tree *Tree) {
	assert.Assertf(tree != nil, "tree is nil")

	*e = Encoder{
		tree:  tree,
		table: NewCodeTable(tree),
	}
}

// Tree returns the Tree that this Encoder encodes with.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Table returns the CodeTable that this Encoder encodes with.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Encode returns the code for a single Symbol.
func (e Encoder) Encode(symbol Symbol) (Bits, error) {
	code, found := e.table.Lookup(symbol)
	if !found {
		return Bits{}, fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	return code, nil
}

// EncodeAll returns the concatenated codes of every Symbol in input, in
// order.  If any Symbol has no code, no output is returned.
func (e Encoder) EncodeAll(input []Symbol) (Bits, error) {
	return e.AppendEncoded(Bits{}, input)
}

// AppendEncoded is like EncodeAll, but appends to dst.  On error, dst is
// returned unchanged.  As with the built-in append, the result may share
// storage with dst.
func (e Encoder) AppendEncoded(dst Bits, input []Symbol) (Bits, error) {
	for index, symbol := range input {
		if _, found := e.table.codes[symbol]; !found {
			return dst, fmt.Errorf("%w: %d at offset %d", ErrUnknownSymbol, symbol, index)
		}
	}
	for _, symbol := range input {
		dst.AppendBits(e.table.codes[symbol])
	}
	return dst, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	e.table.dumpBody(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode builds a Huffman code tree from the symbol frequencies of input and
// encodes input with it.  The returned Tree is needed to decode the result.
//
// An empty input encodes to no bits, paired with EmptyTree().  An input made
// of one distinct symbol also encodes to no bits; its tree is a bare leaf
// whose frequency is the input length.
//
func Encode(input []Symbol) (Bits, *Tree, error) {
	if len(input) == 0 {
		return Bits{}, EmptyTree(), nil
	}

	ft := CountFrequencies(input)
	tree, err := BuildTree(ft.Entries())
	if err != nil {
		return Bits{}, nil, err
	}

	var e Encoder
	e.Init(tree)
	bits, err := e.EncodeAll(input)
	if err != nil {
		return Bits{}, nil, err
	}
	return bits, tree, nil
}

// EncodeString is like Encode, with each rune of str as one Symbol.  It fails
// with ErrInvalidSymbol if str is not valid UTF-8.
func EncodeString(str string) (Bits, *Tree, error) {
	if !utf8.ValidString(str) {
		return Bits{}, nil, fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidSymbol)
	}
	return Encode(symbolsFromString(str))
}
