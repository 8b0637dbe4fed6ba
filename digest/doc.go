// Package digest derives content addresses from encoded values.
//
// Because the encoding is injective over a fixed schema, hashing the wire
// bytes gives a stable identity for a value: equal values hash equal,
// different values hash different. Sum256 hashes raw bytes with BLAKE3;
// Object encodes a value first and hashes the result.
package digest
