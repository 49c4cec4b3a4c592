package huffman

// FrequencyTable counts the occurrences of each Symbol in an input sequence.
// It also remembers the order in which symbols were first seen, which keeps
// tree construction deterministic.
//
// The zero value is an empty table, ready for use.
type FrequencyTable struct {
	order  []Symbol
	counts map[Symbol]int
	total  int
}

// CountFrequencies builds a FrequencyTable for the given input sequence.
// An empty input yields an empty table.
func CountFrequencies(input []Symbol) FrequencyTable {
	var ft FrequencyTable
	for _, symbol := range input {
		ft.Add(symbol)
	}
	return ft
}

// Add records one more occurrence of symbol.
func (ft *FrequencyTable) Add(symbol Symbol) {
	if ft.counts == nil {
		ft.counts = make(map[Symbol]int)
	}
	if _, found := ft.counts[symbol]; !found {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol]++
	ft.total++
}

// Count returns the number of occurrences of symbol, or 0 if it never
// occurred.
func (ft FrequencyTable) Count(symbol Symbol) int {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the number of symbols counted, i.e. the input length.
func (ft FrequencyTable) Total() int {
	return ft.total
}

// Entries lists every distinct symbol with its count, in order of first
// occurrence.  The result is suitable for passing to BuildTree.
func (ft FrequencyTable) Entries() []SymbolFreq {
	out := make([]SymbolFreq, len(ft.order))
	for index, symbol := range ft.order {
		out[index] = SymbolFreq{Symbol: symbol, Freq: ft.counts[symbol]}
	}
	return out
}
