package huffman

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.  When encoding strings, each rune is one Symbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  It is also the placeholder symbol held by the
// leaf of EmptyTree.
const InvalidSymbol = Symbol(-1)

// SymbolFreq pairs a Symbol with its frequency, i.e. its number of
// occurrences in some input.
type SymbolFreq struct {
	Symbol Symbol
	Freq   int
}

func symbolsFromString(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, ch := range s {
		out = append(out, Symbol(ch))
	}
	return out
}

func symbolsToString(symbols []Symbol) (string, error) {
	runes := make([]rune, len(symbols))
	for i, sym := range symbols {
		if !utf8.ValidRune(rune(sym)) {
			return "", fmt.Errorf("%w: symbol %d at offset %d is not a valid rune", ErrInvalidSymbol, sym, i)
		}
		runes[i] = rune(sym)
	}
	return string(runes), nil
}
