// Package huffman implements classic Huffman coding over an arbitrary
// alphabet of Symbols.  A code tree is built greedily from symbol
// frequencies, a sequence is encoded into a bit string, and the same tree is
// later used to walk that bit string back into the original sequence.
//
// The tree is the only coding key: nothing about it is written into the
// encoded Bits, so callers must keep the *Tree returned by Encode and hand it
// to Decode.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
