// Package codec implements the Borsh primitive and composite codecs over
// buffer.Buffer.
//
// # Two Surfaces
//
// The low-level surface is a set of Write/Read function pairs mirroring the
// wire format one operation per type: WriteU32, ReadBool, WriteVecBytes,
// ReadEnumTag, and so on. These carry no per-call error returns; failures
// poison the buffer and every later call no-ops, so a whole field-by-field
// sequence is checked once via buf.Err.
//
// The generic surface is the Codec[T] capability - an Encode/Decode pair for
// one element type - plus combinators that compose codecs into new ones:
//
//	codec.Vec(codec.Option(codec.Uint32))     // vector<option<u32>>
//	codec.MapOf(codec.String, codec.Bytes)    // map<string, vec<u8>>
//	codec.ArrayOf(codec.Uint8, 32)            // [u8; 32]
//
// Composite writers accept codecs as injected values, which is what allows
// arbitrary nesting without the engine knowing element shapes.
//
// # 128-bit Integers
//
// Go has no native 128-bit integer, so U128 and I128 are fixed 16-byte
// little-endian arrays matching the wire contract exactly. The binding
// package converts them to and from math/big values.
//
// # Map and Set Ordering
//
// WriteMap and WriteSet emit entries in exactly the supplied order; the
// engine never sorts. Two logically equal maps built in different insertion
// orders therefore produce different bytes. Callers needing canonical output
// sort first - see binding.CanonicalizeEntries.
package codec
