// Package buffer provides the growable byte buffer underlying every codec
// operation.
//
// A Buffer owns its storage and tracks two positions independently: the write
// position (length) and the read cursor. Writes always append at length;
// reads consume from the cursor. ResetCursor rewinds reading without
// discarding written data, which is how a freshly encoded buffer is decoded
// back.
//
// # Growth
//
// Storage grows geometrically on write: capacity doubles below 1 KiB and
// grows by 1.5x at or above it, raised further when a single write needs
// more. This amortizes the many small appends of field-by-field nested
// serialization without doubling-induced waste on large payloads.
//
// # Poisoning
//
// The buffer fails sticky. The first violated invariant - a storage request
// beyond MaxCapacity, arithmetic overflow while sizing growth, or a read past
// the valid length - records a single diagnostic and freezes the buffer:
// length, capacity, and cursor never change again, and every later operation
// is a guaranteed no-op. Completed writes are not rolled back. Nothing on
// this path panics; callers query Err after a sequence of operations.
package buffer
