package codec

import (
	"unicode/utf8"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/errors"
)

// Ready-made Codec values for the primitive types. Composite combinators
// below build on these for arbitrary nesting.
var (
	Uint8   Codec[uint8]   = uint8Codec{}
	Uint16  Codec[uint16]  = uint16Codec{}
	Uint32  Codec[uint32]  = uint32Codec{}
	Uint64  Codec[uint64]  = uint64Codec{}
	Uint128 Codec[U128]    = uint128Codec{}
	Int8    Codec[int8]    = int8Codec{}
	Int16   Codec[int16]   = int16Codec{}
	Int32   Codec[int32]   = int32Codec{}
	Int64   Codec[int64]   = int64Codec{}
	Int128  Codec[I128]    = int128Codec{}
	Float32 Codec[float32] = float32Codec{}
	Float64 Codec[float64] = float64Codec{}
	Bool    Codec[bool]    = boolCodec{}

	// String encodes as vec<u8> of UTF-8 bytes; both directions reject
	// invalid UTF-8 by poisoning the buffer.
	String Codec[string] = stringCodec{}

	// Bytes encodes as vec<u8>.
	Bytes Codec[[]byte] = bytesCodec{}
)

type uint8Codec struct{}

func (uint8Codec) Encode(b *buffer.Buffer, v uint8) { WriteU8(b, v) }
func (uint8Codec) Decode(b *buffer.Buffer) uint8    { return ReadU8(b) }

type uint16Codec struct{}

func (uint16Codec) Encode(b *buffer.Buffer, v uint16) { WriteU16(b, v) }
func (uint16Codec) Decode(b *buffer.Buffer) uint16    { return ReadU16(b) }

type uint32Codec struct{}

func (uint32Codec) Encode(b *buffer.Buffer, v uint32) { WriteU32(b, v) }
func (uint32Codec) Decode(b *buffer.Buffer) uint32    { return ReadU32(b) }

type uint64Codec struct{}

func (uint64Codec) Encode(b *buffer.Buffer, v uint64) { WriteU64(b, v) }
func (uint64Codec) Decode(b *buffer.Buffer) uint64    { return ReadU64(b) }

type uint128Codec struct{}

func (uint128Codec) Encode(b *buffer.Buffer, v U128) { WriteU128(b, v) }
func (uint128Codec) Decode(b *buffer.Buffer) U128    { return ReadU128(b) }

type int8Codec struct{}

func (int8Codec) Encode(b *buffer.Buffer, v int8) { WriteI8(b, v) }
func (int8Codec) Decode(b *buffer.Buffer) int8    { return ReadI8(b) }

type int16Codec struct{}

func (int16Codec) Encode(b *buffer.Buffer, v int16) { WriteI16(b, v) }
func (int16Codec) Decode(b *buffer.Buffer) int16    { return ReadI16(b) }

type int32Codec struct{}

func (int32Codec) Encode(b *buffer.Buffer, v int32) { WriteI32(b, v) }
func (int32Codec) Decode(b *buffer.Buffer) int32    { return ReadI32(b) }

type int64Codec struct{}

func (int64Codec) Encode(b *buffer.Buffer, v int64) { WriteI64(b, v) }
func (int64Codec) Decode(b *buffer.Buffer) int64    { return ReadI64(b) }

type int128Codec struct{}

func (int128Codec) Encode(b *buffer.Buffer, v I128) { WriteI128(b, v) }
func (int128Codec) Decode(b *buffer.Buffer) I128    { return ReadI128(b) }

type float32Codec struct{}

func (float32Codec) Encode(b *buffer.Buffer, v float32) { WriteF32(b, v) }
func (float32Codec) Decode(b *buffer.Buffer) float32    { return ReadF32(b) }

type float64Codec struct{}

func (float64Codec) Encode(b *buffer.Buffer, v float64) { WriteF64(b, v) }
func (float64Codec) Decode(b *buffer.Buffer) float64    { return ReadF64(b) }

type boolCodec struct{}

func (boolCodec) Encode(b *buffer.Buffer, v bool) { WriteBool(b, v) }
func (boolCodec) Decode(b *buffer.Buffer) bool    { return ReadBool(b) }

type stringCodec struct{}

func (stringCodec) Encode(b *buffer.Buffer, v string) {
	if !utf8.ValidString(v) {
		b.Fail(errors.InvalidUTF8(errors.PhaseEncode, []byte(v)))
		return
	}
	WriteVecBytes(b, []byte(v))
}

func (stringCodec) Decode(b *buffer.Buffer) string {
	data := ReadVecBytes(b)
	if data == nil {
		return ""
	}
	if !utf8.Valid(data) {
		b.Fail(errors.InvalidUTF8(errors.PhaseDecode, data))
		return ""
	}
	return string(data)
}

type bytesCodec struct{}

func (bytesCodec) Encode(b *buffer.Buffer, v []byte) { WriteVecBytes(b, v) }
func (bytesCodec) Decode(b *buffer.Buffer) []byte    { return ReadVecBytes(b) }

// Vec returns a codec for a length-prefixed vector of elem.
func Vec[T any](elem Codec[T]) Codec[[]T] {
	return vecCodec[T]{elem: elem}
}

type vecCodec[T any] struct{ elem Codec[T] }

func (c vecCodec[T]) Encode(b *buffer.Buffer, v []T) { WriteVec(b, v, c.elem) }
func (c vecCodec[T]) Decode(b *buffer.Buffer) []T    { return ReadVec(b, c.elem) }

// Option returns a codec for an optional elem, nil meaning absent.
func Option[T any](elem Codec[T]) Codec[*T] {
	return optionCodec[T]{elem: elem}
}

type optionCodec[T any] struct{ elem Codec[T] }

func (c optionCodec[T]) Encode(b *buffer.Buffer, v *T) { WriteOption(b, v, c.elem) }
func (c optionCodec[T]) Decode(b *buffer.Buffer) *T    { return ReadOption(b, c.elem) }

// ArrayOf returns a codec for a fixed-size array of elem: no length prefix,
// the size is part of the schema. Encoding a slice of any other length
// poisons the buffer.
func ArrayOf[T any](elem Codec[T], size int) Codec[[]T] {
	return arrayCodec[T]{elem: elem, size: size}
}

type arrayCodec[T any] struct {
	elem Codec[T]
	size int
}

func (c arrayCodec[T]) Encode(b *buffer.Buffer, v []T) {
	if len(v) != c.size {
		b.Fail(errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Detail("fixed array expects %d elements, got %d", c.size, len(v)).
			Build())
		return
	}
	WriteArray(b, v, c.elem)
}

func (c arrayCodec[T]) Decode(b *buffer.Buffer) []T {
	return ReadArray(b, c.size, c.elem)
}

// MapOf returns a codec for map entries in supplied order.
func MapOf[K, V any](key Codec[K], value Codec[V]) Codec[[]MapEntry[K, V]] {
	return mapCodec[K, V]{key: key, value: value}
}

type mapCodec[K, V any] struct {
	key   Codec[K]
	value Codec[V]
}

func (c mapCodec[K, V]) Encode(b *buffer.Buffer, v []MapEntry[K, V]) {
	WriteMap(b, v, c.key, c.value)
}

func (c mapCodec[K, V]) Decode(b *buffer.Buffer) []MapEntry[K, V] {
	return ReadMap(b, c.key, c.value)
}

// SetOf returns a codec for set elements in supplied order.
func SetOf[T any](elem Codec[T]) Codec[[]T] {
	return setCodec[T]{elem: elem}
}

type setCodec[T any] struct{ elem Codec[T] }

func (c setCodec[T]) Encode(b *buffer.Buffer, v []T) { WriteSet(b, v, c.elem) }
func (c setCodec[T]) Decode(b *buffer.Buffer) []T    { return ReadSet(b, c.elem) }
