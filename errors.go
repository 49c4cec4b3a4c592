package huffman

import (
	"errors"
)

// ErrInvalidFrequency is returned when a code tree is requested for a symbol
// whose frequency is not a positive integer.
var ErrInvalidFrequency = errors.New("invalid symbol frequency")

// ErrInvalidSymbol is returned when a code tree is requested for a negative
// or duplicated symbol.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrUnknownSymbol is returned when encoding a symbol that has no code in the
// code table, which means the table was built for some other input.
var ErrUnknownSymbol = errors.New("symbol not present in code table")

// ErrMalformedStream is returned when a bit string does not decode cleanly
// against the code tree it was given.
var ErrMalformedStream = errors.New("malformed Huffman bit stream")
