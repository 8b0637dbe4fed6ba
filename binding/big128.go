package binding

import (
	"math/big"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/codec"
	"github.com/qborsh/borsh-go/errors"
)

var (
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	maxU128 = new(big.Int).Sub(two128, big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// U128FromBig converts v to the 16-byte little-endian wire layout. Values
// outside [0, 2^128-1] are rejected regardless of validation settings, since
// they have no 16-byte representation.
func U128FromBig(v *big.Int) (codec.U128, error) {
	if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
		return codec.U128{}, errors.OutOfRange(errors.PhaseValidate, nil, v.String(), "u128")
	}
	var be [16]byte
	v.FillBytes(be[:])
	return codec.U128(reverse16(be)), nil
}

// BigFromU128 converts the wire layout back to an arbitrary-precision value.
func BigFromU128(v codec.U128) *big.Int {
	be := reverse16(v)
	return new(big.Int).SetBytes(be[:])
}

// I128FromBig converts v to the 16-byte little-endian two's-complement wire
// layout. Values outside [-2^127, 2^127-1] are rejected.
func I128FromBig(v *big.Int) (codec.I128, error) {
	if v.Cmp(minI128) < 0 || v.Cmp(maxI128) > 0 {
		return codec.I128{}, errors.OutOfRange(errors.PhaseValidate, nil, v.String(), "i128")
	}
	t := v
	if v.Sign() < 0 {
		t = new(big.Int).Add(v, two128)
	}
	var be [16]byte
	t.FillBytes(be[:])
	return codec.I128(reverse16(be)), nil
}

// BigFromI128 converts the wire layout back to a signed arbitrary-precision
// value.
func BigFromI128(v codec.I128) *big.Int {
	u := BigFromU128(codec.U128(v))
	if u.Bit(127) == 1 {
		u.Sub(u, two128)
	}
	return u
}

// WriteBigUint writes v as u128.
func (a *Adapter) WriteBigUint(b *buffer.Buffer, v *big.Int) error {
	w, err := U128FromBig(v)
	if err != nil {
		return err
	}
	codec.WriteU128(b, w)
	return b.Err()
}

// ReadBigUint reads a u128 as an arbitrary-precision value.
func (a *Adapter) ReadBigUint(b *buffer.Buffer) (*big.Int, error) {
	w := codec.ReadU128(b)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return BigFromU128(w), nil
}

// WriteBigInt writes v as i128.
func (a *Adapter) WriteBigInt(b *buffer.Buffer, v *big.Int) error {
	w, err := I128FromBig(v)
	if err != nil {
		return err
	}
	codec.WriteI128(b, w)
	return b.Err()
}

// ReadBigInt reads an i128 as a signed arbitrary-precision value.
func (a *Adapter) ReadBigInt(b *buffer.Buffer) (*big.Int, error) {
	w := codec.ReadI128(b)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return BigFromI128(w), nil
}

func reverse16(in [16]byte) [16]byte {
	var out [16]byte
	for i := range in {
		out[i] = in[15-i]
	}
	return out
}
