package digest

import (
	"github.com/zeebo/blake3"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/codec"
)

// Size is the digest length in bytes.
const Size = 32

// Sum256 returns the BLAKE3 digest of data.
func Sum256(data []byte) [Size]byte {
	return blake3.Sum256(data)
}

// Object encodes v through c and returns the digest of the wire bytes.
// Values that encode identically address identically; anything order-sensitive
// (map and set iteration) must be canonicalized before the call.
func Object[T any](c codec.Codec[T], v T) ([Size]byte, error) {
	buf := buffer.Get()
	defer buffer.Put(buf)

	c.Encode(buf, v)
	if err := buf.Err(); err != nil {
		return [Size]byte{}, err
	}
	return blake3.Sum256(buf.Bytes()), nil
}
