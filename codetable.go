package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeTable maps each Symbol of a Tree to its code.
type CodeTable struct {
	codes   map[Symbol]Bits
	minSize int
	maxSize int
}

// NewCodeTable derives the code for every leaf of tree: the path from the
// root, with 0 for each left step and 1 for each right step.  If the root is
// itself a leaf, its Symbol gets the empty code.  The placeholder leaf of
// EmptyTree gets no code at all.
func NewCodeTable(tree *Tree) CodeTable {
	ct := CodeTable{codes: make(map[Symbol]Bits, tree.NumLeaves())}
	if tree.IsEmpty() {
		return ct
	}

	var hasMinMax bool
	tree.walk(func(id NodeID, path Bits) {
		if !tree.IsLeaf(id) {
			return
		}

		ct.codes[tree.Symbol(id)] = path.Clone()

		size := path.Len()
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	})
	return ct
}

// Lookup returns the code for symbol.  The second result is false if symbol
// has no code in this table.
func (ct CodeTable) Lookup(symbol Symbol) (Bits, bool) {
	code, found := ct.codes[symbol]
	return code, found
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// Symbols lists the symbols with a code, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ct.codes))
	for symbol := range ct.codes {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	ct.dumpBody(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct CodeTable) dumpBody(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(buf, "\tLookup(%d) = %q\n", symbol, ct.codes[symbol].String())
	}
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
