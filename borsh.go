package borsh

import (
	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/codec"
	"github.com/qborsh/borsh-go/errors"
)

// Marshal encodes v through c and returns the encoded bytes.
// A pooled scratch buffer backs the encoding; the returned slice is a copy
// owned by the caller.
func Marshal[T any](c codec.Codec[T], v T) ([]byte, error) {
	buf := buffer.Get()
	defer buffer.Put(buf)

	c.Encode(buf, v)
	if err := buf.Err(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Unmarshal decodes exactly one value of c's type from data.
// Trailing bytes after the value are rejected: a Borsh payload frames a
// single value, so leftovers indicate a codec/schema mismatch.
func Unmarshal[T any](c codec.Codec[T], data []byte) (T, error) {
	var zero T

	buf := buffer.Get()
	defer buffer.Put(buf)

	buf.Write(data)
	buf.ResetCursor()

	v := c.Decode(buf)
	if err := buf.Err(); err != nil {
		return zero, err
	}
	if rest := buf.Len() - buf.Cursor(); rest > 0 {
		return zero, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("%d trailing bytes after value", rest).
			Build()
	}
	return v, nil
}
