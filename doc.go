// Package borsh provides a deterministic binary (de)serialization engine
// following the Borsh canonical encoding.
//
// Borsh guarantees reproducible byte output for a given value, which makes
// encoded data suitable for content addressing, signature verification, and
// cross-platform hashing: the wire format is always little-endian regardless
// of host byte order, and every type has exactly one encoding.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	borsh-go/            Root package with one-shot Marshal/Unmarshal helpers
//	├── buffer/          Growable byte buffer with cursor-based read/write and
//	│                    a sticky "poison on error" failure model
//	├── codec/           Primitive and composite codecs plus the generic
//	│                    Codec[T] capability for arbitrary nesting
//	├── binding/         Host-value adapter: range validation, big.Int
//	│                    conversion for 128-bit types, canonical map ordering
//	├── digest/          BLAKE3 content addressing of encoded bytes
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
// Encode and decode a value with a composed codec:
//
//	c := codec.MapOf(codec.String, codec.Vec(codec.Uint32))
//	data, err := borsh.Marshal(c, entries)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entries, err = borsh.Unmarshal(c, data)
//
// Or drive a buffer directly for field-by-field serialization:
//
//	buf := buffer.New(0)
//	codec.WriteU32(buf, 42)
//	codec.WriteOption(buf, &name, codec.String)
//	if err := buf.Err(); err != nil {
//	    log.Fatal(err)
//	}
//	wire := buf.Bytes()
//
// # Failure Model
//
// The engine never returns per-call errors on the hot path. Instead a buffer
// carries a sticky poison flag: the first corruption, overflow, or overrun
// freezes the buffer and turns every later operation into a no-op. Callers
// check Err once after a sequence of operations before trusting the contents.
//
// # Wire Format
//
//	Type             Encoding
//	─────────────────────────────────────────────────────────
//	uN/iN (8..128)   N/8 bytes, little-endian, two's complement
//	f32/f64          IEEE-754 bit pattern, little-endian
//	bool             1 byte: 0x00 or 0x01
//	[T; K]           K elements concatenated, no prefix
//	vector<T>        u32 length prefix + elements
//	option<T>        1 presence byte + element iff present
//	enum             1 variant tag byte + payload
//	map<K,V>         u32 count + count x (key, value), supplied order
//	set<T>           u32 count + count x element, supplied order
//
// Map and set entries are emitted in caller-supplied order; the engine never
// sorts. Use binding.CanonicalizeEntries when bit-exact output across
// independently built maps is required.
package borsh
