package binding

import (
	"unicode/utf8"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/codec"
	"github.com/qborsh/borsh-go/errors"
)

// Options configures an Adapter. The zero value disables validation.
type Options struct {
	// Validate enables host-value checks (integer ranges, UTF-8) before
	// values reach the core. Disabled, out-of-domain integers truncate to
	// the wire width.
	Validate bool
}

// DefaultOptions enables validation.
func DefaultOptions() Options {
	return Options{Validate: true}
}

// Adapter converts host values to and from core codec calls under one
// validation policy.
type Adapter struct {
	opts Options
}

func NewAdapter(opts Options) *Adapter {
	return &Adapter{opts: opts}
}

// WriteUint writes v as an unsigned integer of the given wire width
// (8, 16, 32, or 64 bits). With validation on, values outside [0, 2^bits-1]
// are rejected before the buffer is touched.
func (a *Adapter) WriteUint(b *buffer.Buffer, v uint64, bits int) error {
	if bits != 64 {
		limit, err := unsignedLimit(bits)
		if err != nil {
			return err
		}
		if a.opts.Validate && v > limit {
			return errors.OutOfRange(errors.PhaseValidate, nil, v, wireName("u", bits))
		}
	}
	switch bits {
	case 8:
		codec.WriteU8(b, uint8(v))
	case 16:
		codec.WriteU16(b, uint16(v))
	case 32:
		codec.WriteU32(b, uint32(v))
	case 64:
		codec.WriteU64(b, v)
	}
	return b.Err()
}

// WriteInt writes v as a signed integer of the given wire width. With
// validation on, values outside [-2^(bits-1), 2^(bits-1)-1] are rejected.
func (a *Adapter) WriteInt(b *buffer.Buffer, v int64, bits int) error {
	if bits != 64 {
		min, max, err := signedLimits(bits)
		if err != nil {
			return err
		}
		if a.opts.Validate && (v < min || v > max) {
			return errors.OutOfRange(errors.PhaseValidate, nil, v, wireName("i", bits))
		}
	}
	switch bits {
	case 8:
		codec.WriteI8(b, int8(v))
	case 16:
		codec.WriteI16(b, int16(v))
	case 32:
		codec.WriteI32(b, int32(v))
	case 64:
		codec.WriteI64(b, v)
	}
	return b.Err()
}

// ReadUint reads an unsigned integer of the given wire width.
func (a *Adapter) ReadUint(b *buffer.Buffer, bits int) (uint64, error) {
	var v uint64
	switch bits {
	case 8:
		v = uint64(codec.ReadU8(b))
	case 16:
		v = uint64(codec.ReadU16(b))
	case 32:
		v = uint64(codec.ReadU32(b))
	case 64:
		v = codec.ReadU64(b)
	default:
		return 0, badWidth(bits)
	}
	return v, b.Err()
}

// ReadInt reads a signed integer of the given wire width.
func (a *Adapter) ReadInt(b *buffer.Buffer, bits int) (int64, error) {
	var v int64
	switch bits {
	case 8:
		v = int64(codec.ReadI8(b))
	case 16:
		v = int64(codec.ReadI16(b))
	case 32:
		v = int64(codec.ReadI32(b))
	case 64:
		v = codec.ReadI64(b)
	default:
		return 0, badWidth(bits)
	}
	return v, b.Err()
}

// WriteString writes s as vec<u8> of UTF-8 bytes. With validation on,
// invalid UTF-8 is rejected before the buffer is touched.
func (a *Adapter) WriteString(b *buffer.Buffer, s string) error {
	if a.opts.Validate && !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseValidate, []byte(s))
	}
	codec.WriteVecBytes(b, []byte(s))
	return b.Err()
}

// ReadString reads a vec<u8> and returns it as a string. With validation on,
// invalid UTF-8 is rejected.
func (a *Adapter) ReadString(b *buffer.Buffer) (string, error) {
	data := codec.ReadVecBytes(b)
	if err := b.Err(); err != nil {
		return "", err
	}
	if a.opts.Validate && !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, data)
	}
	return string(data), nil
}

func unsignedLimit(bits int) (uint64, error) {
	switch bits {
	case 8, 16, 32:
		return 1<<bits - 1, nil
	case 64:
		return ^uint64(0), nil
	}
	return 0, badWidth(bits)
}

func signedLimits(bits int) (int64, int64, error) {
	switch bits {
	case 8, 16, 32, 64:
		max := int64(1)<<(bits-1) - 1
		return -max - 1, max, nil
	}
	return 0, 0, badWidth(bits)
}

func badWidth(bits int) *errors.Error {
	return errors.New(errors.PhaseValidate, errors.KindInvalidData).
		Detail("unsupported wire width %d", bits).
		Build()
}

func wireName(prefix string, bits int) string {
	switch bits {
	case 8:
		return prefix + "8"
	case 16:
		return prefix + "16"
	case 32:
		return prefix + "32"
	default:
		return prefix + "64"
	}
}
