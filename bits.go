package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits represents a sequence of bits of arbitrary length.  It holds both the
// individual codes of a CodeTable and the output of an Encoder.
//
// The zero value is an empty sequence, ready for use.  Appending to a copy
// leaves the original's bits untouched, but like a slice the two may share
// storage past the original's end; use Clone before appending to both.
type Bits struct {
	// words holds the complete 64-bit words.  The least significant bit of
	// words[0] is the first bit.  Existing words are never modified.
	words []uint64

	// tail holds the final size%64 bits, held by value so that appending
	// to a copy never writes into storage the original can see.  Bits of
	// tail past size are always zero.
	tail uint64

	size int
}

// MakeBits is a convenience function that constructs a Bits of up to 64 bits.
// The bits are read from value most significant first, so that
// MakeBits(3, 0x3) is the sequence "011".
func MakeBits(size uint, value uint64) Bits {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var b Bits
	b.appendWord(reverseBits(size, value&lowMask(size)), size)
	return b
}

// ParseBits parses a string of '0' and '1' characters, such as the one
// returned by String.
func ParseBits(str string) (Bits, error) {
	var b Bits
	for index := 0; index < len(str); index++ {
		switch ch := str[index]; ch {
		case '0':
			b.Append(0)
		case '1':
			b.Append(1)
		default:
			return Bits{}, fmt.Errorf("%w: invalid bit %q at offset %d", ErrMalformedStream, ch, index)
		}
	}
	return b, nil
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.size
}

// At returns the bit at the given offset, either 0 or 1.
func (b Bits) At(index int) uint {
	assert.Assertf(index >= 0 && index < b.size, "index %d out of range [0, %d)", index, b.size)
	return uint(b.word(index>>6)>>(uint(index)&63)) & 1
}

// Append appends a single bit.  Any non-zero value appends a 1.
func (b *Bits) Append(bit uint) {
	var v uint64
	if bit != 0 {
		v = 1
	}
	b.appendWord(v, 1)
}

// AppendBits appends every bit of other, in order.
func (b *Bits) AppendBits(other Bits) {
	for _, word := range other.words {
		b.appendWord(word, 64)
	}
	b.appendWord(other.tail, uint(other.size)&63)
}

// Truncate discards all but the first size bits.
func (b *Bits) Truncate(size int) {
	assert.Assertf(size >= 0 && size <= b.size, "size %d out of range [0, %d]", size, b.size)
	full := size >> 6
	if full < len(b.words) {
		b.tail = b.words[full]
		b.words = b.words[:full:full]
	}
	b.tail &= lowMask(uint(size) & 63)
	b.size = size
}

// Clone returns a copy of b that shares no storage with it.
func (b Bits) Clone() Bits {
	if b.size == 0 {
		return Bits{}
	}
	var words []uint64
	if len(b.words) != 0 {
		words = make([]uint64, len(b.words))
		copy(words, b.words)
	}
	return Bits{words: words, tail: b.tail, size: b.size}
}

// Equal returns true iff b and other hold the same sequence of bits.
func (b Bits) Equal(other Bits) bool {
	if b.size != other.size || b.tail != other.tail {
		return false
	}
	for index := range b.words {
		if b.words[index] != other.words[index] {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of b.  Every sequence,
// including the empty one, is a prefix of itself.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	full := prefix.size >> 6
	for index := 0; index < full; index++ {
		if b.words[index] != prefix.words[index] {
			return false
		}
	}
	if partial := uint(prefix.size) & 63; partial != 0 {
		return b.word(full)&lowMask(partial) == prefix.tail
	}
	return true
}

// String returns the bits as a string of '0' and '1' characters, first bit
// first.  An empty sequence yields "".
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for index := 0; index < b.size; index++ {
		sb.WriteByte('0' + byte(b.At(index)))
	}
	return sb.String()
}

// MarshalText fulfills encoding.TextMarshaler.
func (b Bits) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (b *Bits) UnmarshalText(text []byte) error {
	parsed, err := ParseBits(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

var _ fmt.Stringer = Bits{}

// word returns the index'th group of 64 bits, counting tail as the last.
func (b Bits) word(index int) uint64 {
	if index < len(b.words) {
		return b.words[index]
	}
	return b.tail
}

// appendWord appends the low size bits of v, which must already be masked.
func (b *Bits) appendWord(v uint64, size uint) {
	if size == 0 {
		return
	}
	offset := uint(b.size) & 63
	b.tail |= v << offset
	if offset+size >= 64 {
		b.words = append(b.words, b.tail)
		b.tail = 0
		if offset != 0 {
			b.tail = v >> (64 - offset)
		}
	}
	b.size += int(size)
}
