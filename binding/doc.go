// Package binding adapts host values to the core codec calls and owns the
// validation policy the core deliberately lacks.
//
// The engine's primitive writers accept values already reduced to their
// fixed-width wire representation and never range-check. An Adapter sits in
// front of them: it validates host integers against the wire type's domain
// (unsigned in [0, 2^N-1], signed in [-2^(N-1), 2^(N-1)-1]) and converts
// arbitrary-precision values to and from the fixed 16-byte little-endian
// layout of the 128-bit types.
//
// Validation is an explicit per-adapter Options value, never process-wide
// state:
//
//	a := binding.NewAdapter(binding.Options{Validate: true})
//	if err := a.WriteUint(buf, balance, 16); err != nil { ... }
//
// With validation disabled, out-of-domain values truncate to the wire width,
// matching a plain integer cast.
//
// The package also provides the canonical-ordering policy for maps and sets:
// the core emits entries in supplied order, so callers wanting bit-exact
// output across independently built collections pass them through
// CanonicalizeEntries or CanonicalizeElements first.
package binding
