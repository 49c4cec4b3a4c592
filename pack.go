package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// WriteTo writes the bits to w packed eight to a byte, first bit in the most
// significant position.  The final byte is padded with zero bits.
//
// The bit count is not written; the reader must learn it some other way.
func (b Bits) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	for _, word := range b.words {
		if err := bw.WriteBits(reverseBits(64, word), 64); err != nil {
			return 0, err
		}
	}
	if n := uint(b.size) & 63; n != 0 {
		if err := bw.WriteBits(reverseBits(n, b.tail), uint8(n)); err != nil {
			return 0, err
		}
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return int64(packedLen(b.size)), nil
}

// Pack returns the bits packed into bytes, in the same layout as WriteTo.
func (b Bits) Pack() []byte {
	var buf bytes.Buffer
	buf.Grow(packedLen(b.size))
	_, err := b.WriteTo(&buf)
	assert.Assertf(err == nil, "bytes.Buffer write failed: %v", err)
	return buf.Bytes()
}

// ReadBits reads size bits from r in the layout written by WriteTo.
//
// The underlying reader may be read past the last needed byte if it does not
// implement io.ByteReader.
func ReadBits(r io.Reader, size int) (Bits, error) {
	if size < 0 {
		return Bits{}, fmt.Errorf("%w: negative bit count %d", ErrMalformedStream, size)
	}

	br := bitio.NewReader(r)
	var b Bits
	for b.size < size {
		n := size - b.size
		if n > 64 {
			n = 64
		}
		v, err := br.ReadBits(uint8(n))
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Bits{}, fmt.Errorf("%w: expected %d bits, stream ended after fewer than %d", ErrMalformedStream, size, b.size+n)
			}
			return Bits{}, err
		}
		b.appendWord(reverseBits(uint(n), v), uint(n))
	}
	return b, nil
}

// Unpack is the inverse of Pack.  The length of data must be exactly the
// number of bytes needed to hold size bits.
func Unpack(data []byte, size int) (Bits, error) {
	if size < 0 {
		return Bits{}, fmt.Errorf("%w: negative bit count %d", ErrMalformedStream, size)
	}
	if expect := packedLen(size); len(data) != expect {
		return Bits{}, fmt.Errorf("%w: %d bits need %d bytes, got %d", ErrMalformedStream, size, expect, len(data))
	}
	return ReadBits(bytes.NewReader(data), size)
}

func packedLen(size int) int {
	return (size + 7) >> 3
}
