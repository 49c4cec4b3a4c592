package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestBits_Pack(t *testing.T) {
	type testRow struct {
		bits   string
		expect []byte
	}

	testData := [...]testRow{
		{bits: "", expect: []byte{}},
		{bits: "1", expect: []byte{0x80}},
		{bits: "1011", expect: []byte{0xb0}},
		{bits: "10110011", expect: []byte{0xb3}},
		{bits: "101100111", expect: []byte{0xb3, 0x80}},
	}
	for _, row := range testData {
		actual := mustParseBits(row.bits).Pack()
		if !bytes.Equal(row.expect, actual) {
			t.Errorf("Pack(%q): wrong output:\n\texpect: %#v\n\tactual: %#v", row.bits, row.expect, actual)
		}
	}
}

func TestBits_PackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{0, 7, 8, 63, 64, 65, 129, 1000} {
		var b Bits
		for index := 0; index < size; index++ {
			b.Append(uint(rng.Intn(2)))
		}

		packed := b.Pack()
		if len(packed) != (size+7)/8 {
			t.Errorf("size %d: expected %d bytes, got %d", size, (size+7)/8, len(packed))
		}

		unpacked, err := Unpack(packed, size)
		if err != nil {
			t.Errorf("size %d: Unpack failed: %v", size, err)
			continue
		}
		if !b.Equal(unpacked) {
			t.Errorf("size %d: wrong output:\n\texpect: %s\n\tactual: %s", size, b, unpacked)
		}
	}
}

func TestBits_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := mustParseBits("0000000111").WriteTo(&buf)
	if err != nil {
		t.Errorf("WriteTo failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes written, got %d", n)
	}
	expect := []byte{0x01, 0xc0}
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}
}

func TestReadBits_Short(t *testing.T) {
	_, err := ReadBits(bytes.NewReader([]byte{0xff}), 16)
	if !errors.Is(err, ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}

	_, err = ReadBits(bytes.NewReader(nil), -1)
	if !errors.Is(err, ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
}

func TestUnpack_WrongLength(t *testing.T) {
	for _, size := range []int{8, 17, -3} {
		_, err := Unpack([]byte{0x00, 0x00}, size)
		if !errors.Is(err, ErrMalformedStream) {
			t.Errorf("size %d: expected ErrMalformedStream, got %v", size, err)
		}
	}
}
