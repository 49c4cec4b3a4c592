package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(0) = \"1100\"\n",
		"\tLookup(1) = \"1101\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"111\"\n",
		"\tLookup(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	code, err := e.Encode(4)
	if err != nil {
		t.Errorf("Encode(4) failed: %v", err)
	}
	if code.String() != "111" {
		t.Errorf("expected Encode(4) = \"111\", got %q", code.String())
	}

	bits, err := e.EncodeAll([]Symbol{5, 0, 3, 5})
	if err != nil {
		t.Errorf("EncodeAll failed: %v", err)
	}
	expectBits := "0" + "1100" + "101" + "0"
	if bits.String() != expectBits {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectBits, bits.String())
	}
}

func TestEncoder_AppendEncoded(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	dst := mustParseBits("11")
	dst, err := e.AppendEncoded(dst, []Symbol{2, 5})
	if err != nil {
		t.Errorf("AppendEncoded failed: %v", err)
	}
	if expect := "11" + "100" + "0"; dst.String() != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, dst.String())
	}

	dst, err = e.AppendEncoded(dst, []Symbol{2, 9})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if expect := "111000"; dst.String() != expect {
		t.Errorf("expected dst unchanged on error:\n\texpect: %s\n\tactual: %s", expect, dst.String())
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	_, tree, err := EncodeString("ab")
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}

	var e Encoder
	e.Init(tree)

	if _, err := e.Encode('c'); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}

	bits, err := e.EncodeAll(symbolsFromString("abc"))
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if bits.Len() != 0 {
		t.Errorf("expected no partial output, got %q", bits.String())
	}

	var empty Encoder
	empty.Init(EmptyTree())
	if _, err := empty.EncodeAll([]Symbol{InvalidSymbol}); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol from the empty tree, got %v", err)
	}
}

func TestEncode_InvalidSymbol(t *testing.T) {
	_, tree, err := Encode([]Symbol{1, -4, 1})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected no tree on error")
	}
}

func TestEncodeString_InvalidUTF8(t *testing.T) {
	for _, input := range []string{"a\xffb\xfe", "\xc3", "ok\xed\xa0\x80"} {
		bits, tree, err := EncodeString(input)
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("%q: expected ErrInvalidSymbol, got %v", input, err)
		}
		if bits.Len() != 0 || tree != nil {
			t.Errorf("%q: expected no output on error", input)
		}
	}
}

func TestEncoder_AppendEncodedKeepsDst(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	dst := mustParseBits("11")
	out, err := e.AppendEncoded(dst, []Symbol{4})
	if err != nil {
		t.Fatalf("AppendEncoded failed: %v", err)
	}
	if actual := out.String(); actual != "11111" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "11111", actual)
	}
	if !dst.Equal(mustParseBits("11")) {
		t.Errorf("expected dst to still equal \"11\", got %q", dst.String())
	}
}
