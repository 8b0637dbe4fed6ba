package codec

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/errors"
)

func TestString_WireShape(t *testing.T) {
	b := buffer.New(0)
	String.Encode(b, "hi")
	if !bytes.Equal(b.Bytes(), []byte{2, 0, 0, 0, 'h', 'i'}) {
		t.Errorf("wire = %x, want 020000006869", b.Bytes())
	}

	b.ResetCursor()
	if got := String.Decode(b); got != "hi" {
		t.Errorf("decode = %q, want \"hi\"", got)
	}
}

func TestString_RejectsInvalidUTF8(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		b := buffer.New(0)
		String.Encode(b, string([]byte{0xFF, 0xFE}))
		if !b.Poisoned() {
			t.Fatal("invalid UTF-8 encode must poison")
		}
		if !stderrors.Is(b.Err(), &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidUTF8}) {
			t.Errorf("Err() = %v", b.Err())
		}
		if b.Len() != 0 {
			t.Errorf("Len = %d, nothing should be written", b.Len())
		}
	})

	t.Run("decode", func(t *testing.T) {
		b := fromWire([]byte{2, 0, 0, 0, 0xFF, 0xFE})
		if got := String.Decode(b); got != "" {
			t.Errorf("decode = %q, want empty", got)
		}
		if !stderrors.Is(b.Err(), &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidUTF8}) {
			t.Errorf("Err() = %v", b.Err())
		}
	})
}

func TestCombinator_VecOfOption(t *testing.T) {
	one, three := uint32(1), uint32(3)
	v := []*uint32{&one, nil, &three}

	c := Vec(Option(Uint32))
	b := buffer.New(0)
	c.Encode(b, v)

	want := []byte{
		3, 0, 0, 0, // count
		1, 1, 0, 0, 0, // some(1)
		0,             // none
		1, 3, 0, 0, 0, // some(3)
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("wire = %x, want %x", b.Bytes(), want)
	}

	b.ResetCursor()
	got := c.Decode(b)
	if err := b.Err(); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 3 || *got[0] != 1 || got[1] != nil || *got[2] != 3 {
		t.Errorf("decode = %v", got)
	}
}

func TestCombinator_MapOfStringToVec(t *testing.T) {
	c := MapOf(String, Vec(Uint8))
	entries := []MapEntry[string, []uint8]{
		{Key: "a", Value: []uint8{1, 2}},
		{Key: "b", Value: []uint8{}},
	}

	b := buffer.New(0)
	c.Encode(b, entries)
	b.ResetCursor()
	got := c.Decode(b)
	if err := b.Err(); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 2 || got[0].Key != "a" || got[1].Key != "b" {
		t.Fatalf("decode = %v", got)
	}
	if !bytes.Equal(got[0].Value, []byte{1, 2}) || len(got[1].Value) != 0 {
		t.Errorf("values = %v", got)
	}
}

func TestCombinator_DeepNesting(t *testing.T) {
	// map<u8, vec<option<string>>> stresses injected-codec recursion.
	c := MapOf(Uint8, Vec(Option(String)))
	hello := "hello"
	entries := []MapEntry[uint8, []*string]{
		{Key: 9, Value: []*string{&hello, nil}},
	}

	b := buffer.New(0)
	c.Encode(b, entries)
	b.ResetCursor()
	got := c.Decode(b)
	if err := b.Err(); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 1 || got[0].Key != 9 {
		t.Fatalf("decode = %v", got)
	}
	vs := got[0].Value
	if len(vs) != 2 || vs[0] == nil || *vs[0] != "hello" || vs[1] != nil {
		t.Errorf("nested value = %v", vs)
	}
}

func TestCombinator_ArrayOf(t *testing.T) {
	c := ArrayOf(Uint8, 4)

	b := buffer.New(0)
	c.Encode(b, []uint8{1, 2, 3, 4})
	if !bytes.Equal(b.Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("wire = %x, want raw 01020304", b.Bytes())
	}

	b.ResetCursor()
	if got := c.Decode(b); len(got) != 4 || got[3] != 4 {
		t.Errorf("decode = %v", got)
	}
}

func TestCombinator_ArrayOf_SizeMismatch(t *testing.T) {
	c := ArrayOf(Uint8, 4)
	b := buffer.New(0)
	c.Encode(b, []uint8{1, 2})
	if !b.Poisoned() {
		t.Fatal("size mismatch must poison")
	}
	if !stderrors.Is(b.Err(), &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidData}) {
		t.Errorf("Err() = %v", b.Err())
	}
}

func TestCombinator_SetOf(t *testing.T) {
	c := SetOf(String)
	b := buffer.New(0)
	c.Encode(b, []string{"x", "y"})
	b.ResetCursor()
	got := c.Decode(b)
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("decode = %v", got)
	}
}

func TestPrimitiveCodecValues_MatchFunctions(t *testing.T) {
	b := buffer.New(0)
	Uint64.Encode(b, 0xDEADBEEF)
	Int32.Encode(b, -7)
	Float64.Encode(b, 2.5)
	Bool.Encode(b, true)
	Uint128.Encode(b, U128FromUint64(5))
	Int128.Encode(b, I128FromInt64(-5))

	b.ResetCursor()
	if got := ReadU64(b); got != 0xDEADBEEF {
		t.Errorf("u64 = %#x", got)
	}
	if got := ReadI32(b); got != -7 {
		t.Errorf("i32 = %d", got)
	}
	if got := ReadF64(b); got != 2.5 {
		t.Errorf("f64 = %v", got)
	}
	if !ReadBool(b) {
		t.Error("bool = false")
	}
	if got := ReadU128(b); got.Lo() != 5 {
		t.Errorf("u128 lo = %d", got.Lo())
	}
	if got := ReadI128(b); got.Sign() != -1 {
		t.Errorf("i128 sign = %d", got.Sign())
	}
	if b.Poisoned() {
		t.Fatalf("poisoned: %v", b.Err())
	}
}
