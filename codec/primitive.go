package codec

import (
	"encoding/binary"
	"math"

	"github.com/qborsh/borsh-go/buffer"
)

// Primitive scalars serialize in exactly sizeof(T) bytes, little-endian,
// unconditionally: the fixed-width Go types already constrain the domain, so
// no range checks happen here. Reads return the zero value when the buffer
// is poisoned or the read truncates.

func WriteU8(b *buffer.Buffer, v uint8) {
	b.Write([]byte{v})
}

func WriteU16(b *buffer.Buffer, v uint16) {
	var p [2]byte
	binary.LittleEndian.PutUint16(p[:], v)
	b.Write(p[:])
}

func WriteU32(b *buffer.Buffer, v uint32) {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], v)
	b.Write(p[:])
}

func WriteU64(b *buffer.Buffer, v uint64) {
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], v)
	b.Write(p[:])
}

func WriteU128(b *buffer.Buffer, v U128) {
	b.Write(v[:])
}

func WriteI8(b *buffer.Buffer, v int8)   { WriteU8(b, uint8(v)) }
func WriteI16(b *buffer.Buffer, v int16) { WriteU16(b, uint16(v)) }
func WriteI32(b *buffer.Buffer, v int32) { WriteU32(b, uint32(v)) }
func WriteI64(b *buffer.Buffer, v int64) { WriteU64(b, uint64(v)) }

func WriteI128(b *buffer.Buffer, v I128) {
	b.Write(v[:])
}

// WriteF32 writes the IEEE-754 bit pattern of v.
func WriteF32(b *buffer.Buffer, v float32) {
	WriteU32(b, math.Float32bits(v))
}

// WriteF64 writes the IEEE-754 bit pattern of v.
func WriteF64(b *buffer.Buffer, v float64) {
	WriteU64(b, math.Float64bits(v))
}

// WriteBool writes a single byte, 0x01 for true and 0x00 for false.
func WriteBool(b *buffer.Buffer, v bool) {
	if v {
		WriteU8(b, 1)
	} else {
		WriteU8(b, 0)
	}
}

func ReadU8(b *buffer.Buffer) uint8 {
	p := b.Next(1)
	if p == nil {
		return 0
	}
	return p[0]
}

func ReadU16(b *buffer.Buffer) uint16 {
	p := b.Next(2)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(p)
}

func ReadU32(b *buffer.Buffer) uint32 {
	p := b.Next(4)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(p)
}

func ReadU64(b *buffer.Buffer) uint64 {
	p := b.Next(8)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(p)
}

func ReadU128(b *buffer.Buffer) U128 {
	var v U128
	if p := b.Next(16); p != nil {
		copy(v[:], p)
	}
	return v
}

func ReadI8(b *buffer.Buffer) int8   { return int8(ReadU8(b)) }
func ReadI16(b *buffer.Buffer) int16 { return int16(ReadU16(b)) }
func ReadI32(b *buffer.Buffer) int32 { return int32(ReadU32(b)) }
func ReadI64(b *buffer.Buffer) int64 { return int64(ReadU64(b)) }

func ReadI128(b *buffer.Buffer) I128 {
	var v I128
	if p := b.Next(16); p != nil {
		copy(v[:], p)
	}
	return v
}

func ReadF32(b *buffer.Buffer) float32 {
	return math.Float32frombits(ReadU32(b))
}

func ReadF64(b *buffer.Buffer) float64 {
	return math.Float64frombits(ReadU64(b))
}

// ReadBool decodes any nonzero byte as true.
func ReadBool(b *buffer.Buffer) bool {
	return ReadU8(b) != 0
}
