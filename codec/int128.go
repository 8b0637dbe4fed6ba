package codec

import "encoding/binary"

// U128 is an unsigned 128-bit wire value: 16 bytes, little-endian. Hosts
// lacking a native 128-bit type marshal through this fixed layout.
type U128 [16]byte

// I128 is a signed 128-bit wire value: 16 bytes, little-endian, two's
// complement.
type I128 [16]byte

// U128FromUint64 zero-extends v into the low quadword.
func U128FromUint64(v uint64) U128 {
	var out U128
	binary.LittleEndian.PutUint64(out[:8], v)
	return out
}

// Lo returns the low 64 bits.
func (v U128) Lo() uint64 { return binary.LittleEndian.Uint64(v[:8]) }

// Hi returns the high 64 bits.
func (v U128) Hi() uint64 { return binary.LittleEndian.Uint64(v[8:]) }

// I128FromInt64 sign-extends v across the high quadword.
func I128FromInt64(v int64) I128 {
	var out I128
	binary.LittleEndian.PutUint64(out[:8], uint64(v))
	if v < 0 {
		binary.LittleEndian.PutUint64(out[8:], ^uint64(0))
	}
	return out
}

// Lo returns the low 64 bits as an unsigned quadword.
func (v I128) Lo() uint64 { return binary.LittleEndian.Uint64(v[:8]) }

// Hi returns the high 64 bits as an unsigned quadword; bit 63 of Hi is the
// sign bit of the 128-bit value.
func (v I128) Hi() uint64 { return binary.LittleEndian.Uint64(v[8:]) }

// Sign reports -1 for negative values, 0 for zero, and 1 for positive.
func (v I128) Sign() int {
	if v.Hi()&(1<<63) != 0 {
		return -1
	}
	if v.Hi() == 0 && v.Lo() == 0 {
		return 0
	}
	return 1
}
