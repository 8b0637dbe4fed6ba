package codec

import (
	"math"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/errors"
)

// Codec is the element capability composite codecs are generic over: an
// encode/decode pair for one element type. Failures flow through the
// buffer's sticky poison state, not per-call returns; Decode returns the
// zero value once the buffer is poisoned.
type Codec[T any] interface {
	Encode(b *buffer.Buffer, v T)
	Decode(b *buffer.Buffer) T
}

// MapEntry is the transient key/value pair used while iterating or
// populating a map; it is never persisted on the wire by itself.
type MapEntry[K, V any] struct {
	Key   K
	Value V
}

// writeCount emits the u32 collection prefix, poisoning on lengths the
// prefix cannot carry.
func writeCount(b *buffer.Buffer, length int) {
	if uint64(length) > math.MaxUint32 {
		b.Fail(errors.LengthOverflow(errors.PhaseEncode, length))
		return
	}
	WriteU32(b, uint32(length))
}

// capHint bounds a decode-side preallocation by the bytes actually left in
// the buffer, so a corrupt count cannot force a huge allocation before the
// truncation is detected.
func capHint(b *buffer.Buffer, count int) int {
	if rem := b.Remaining(); count > rem {
		return rem
	}
	return count
}

// WriteFixedArray appends raw bytes with no length prefix; the length is
// schema-known out of band.
func WriteFixedArray(b *buffer.Buffer, data []byte) {
	b.Write(data)
}

// ReadFixedArray reads exactly n raw bytes. Nil on truncation.
func ReadFixedArray(b *buffer.Buffer, n int) []byte {
	return b.ReadBytes(n)
}

// WriteArray encodes exactly the supplied elements with no length prefix.
func WriteArray[T any](b *buffer.Buffer, elems []T, c Codec[T]) {
	for _, e := range elems {
		c.Encode(b, e)
		if b.Poisoned() {
			return
		}
	}
}

// ReadArray decodes a schema-known count of elements.
func ReadArray[T any](b *buffer.Buffer, n int, c Codec[T]) []T {
	out := make([]T, 0, capHint(b, n))
	for i := 0; i < n; i++ {
		v := c.Decode(b)
		if b.Poisoned() {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// WriteVecBytes writes a u32 length prefix followed by the raw bytes.
func WriteVecBytes(b *buffer.Buffer, data []byte) {
	writeCount(b, len(data))
	b.Write(data)
}

// ReadVecBytes reads a u32 length prefix and the raw bytes it announces.
func ReadVecBytes(b *buffer.Buffer) []byte {
	n := ReadU32(b)
	if b.Poisoned() {
		return nil
	}
	return b.ReadBytes(int(n))
}

// WriteVec writes a u32 length prefix, then each element through c. Works
// for variable-width elements, e.g. vector-of-vector.
func WriteVec[T any](b *buffer.Buffer, elems []T, c Codec[T]) {
	writeCount(b, len(elems))
	for _, e := range elems {
		c.Encode(b, e)
		if b.Poisoned() {
			return
		}
	}
}

// ReadVec reads the length prefix and decodes each element through c.
func ReadVec[T any](b *buffer.Buffer, c Codec[T]) []T {
	n := ReadU32(b)
	if b.Poisoned() {
		return nil
	}
	out := make([]T, 0, capHint(b, int(n)))
	for i := uint32(0); i < n; i++ {
		v := c.Decode(b)
		if b.Poisoned() {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// WriteOption writes one presence byte, then the payload iff v is non-nil.
func WriteOption[T any](b *buffer.Buffer, v *T, c Codec[T]) {
	if v == nil {
		WriteBool(b, false)
		return
	}
	WriteBool(b, true)
	c.Encode(b, *v)
}

// ReadOption reads the presence byte and conditionally decodes the payload.
func ReadOption[T any](b *buffer.Buffer, c Codec[T]) *T {
	if !ReadBool(b) {
		return nil
	}
	v := c.Decode(b)
	if b.Poisoned() {
		return nil
	}
	return &v
}

// WriteEnum writes the one-byte variant tag followed by the payload. Tags
// above 255 are a binding-layer contract violation and unrepresentable here.
func WriteEnum[T any](b *buffer.Buffer, tag uint8, payload T, c Codec[T]) {
	WriteU8(b, tag)
	if c != nil {
		c.Encode(b, payload)
	}
}

// WriteEnumTag writes only the variant tag, for payloadless variants.
func WriteEnumTag(b *buffer.Buffer, tag uint8) {
	WriteU8(b, tag)
}

// ReadEnumTag reads the variant tag. Decoding the payload is a separate
// operation: only the caller, knowing which variant was read, can select
// the correct payload codec.
func ReadEnumTag(b *buffer.Buffer) uint8 {
	return ReadU8(b)
}

// ReadEnumPayload decodes the payload for the variant the caller selected.
func ReadEnumPayload[T any](b *buffer.Buffer, c Codec[T]) T {
	return c.Decode(b)
}

// WriteMap writes a u32 entry count, then key and value per entry in exactly
// the supplied iteration order. The engine never sorts: two logically equal
// maps built in different orders produce different bytes. Canonical output
// is the caller's policy - sort by encoded key bytes first.
func WriteMap[K, V any](b *buffer.Buffer, entries []MapEntry[K, V], kc Codec[K], vc Codec[V]) {
	writeCount(b, len(entries))
	for _, e := range entries {
		kc.Encode(b, e.Key)
		vc.Encode(b, e.Value)
		if b.Poisoned() {
			return
		}
	}
}

// ReadMap mirrors WriteMap, preserving wire order.
func ReadMap[K, V any](b *buffer.Buffer, kc Codec[K], vc Codec[V]) []MapEntry[K, V] {
	n := ReadU32(b)
	if b.Poisoned() {
		return nil
	}
	out := make([]MapEntry[K, V], 0, capHint(b, int(n)))
	for i := uint32(0); i < n; i++ {
		k := kc.Decode(b)
		v := vc.Decode(b)
		if b.Poisoned() {
			return nil
		}
		out = append(out, MapEntry[K, V]{Key: k, Value: v})
	}
	return out
}

// WriteSet writes a u32 count then each element, in supplied order. Same
// ordering caveat as WriteMap.
func WriteSet[T any](b *buffer.Buffer, elems []T, c Codec[T]) {
	writeCount(b, len(elems))
	for _, e := range elems {
		c.Encode(b, e)
		if b.Poisoned() {
			return
		}
	}
}

// ReadSet mirrors WriteSet, preserving wire order.
func ReadSet[T any](b *buffer.Buffer, c Codec[T]) []T {
	n := ReadU32(b)
	if b.Poisoned() {
		return nil
	}
	out := make([]T, 0, capHint(b, int(n)))
	for i := uint32(0); i < n; i++ {
		v := c.Decode(b)
		if b.Poisoned() {
			return nil
		}
		out = append(out, v)
	}
	return out
}
