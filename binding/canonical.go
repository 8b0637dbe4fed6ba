package binding

import (
	"bytes"
	"sort"

	"github.com/qborsh/borsh-go/buffer"
	"github.com/qborsh/borsh-go/codec"
)

// CanonicalizeEntries returns entries sorted by the byte encoding of their
// keys. The core writes map entries in supplied order; callers wanting
// bit-identical output for logically equal maps run them through here first.
// Duplicate keys are kept in their relative order, left for the caller to
// resolve.
func CanonicalizeEntries[K, V any](entries []codec.MapEntry[K, V], kc codec.Codec[K]) ([]codec.MapEntry[K, V], error) {
	keys, err := encodeAll(entries, func(e codec.MapEntry[K, V], b *buffer.Buffer) {
		kc.Encode(b, e.Key)
	})
	if err != nil {
		return nil, err
	}

	idx := sortedOrder(keys)
	out := make([]codec.MapEntry[K, V], len(entries))
	for i, j := range idx {
		out[i] = entries[j]
	}
	return out, nil
}

// CanonicalizeElements returns elems sorted by their byte encoding with
// duplicate encodings collapsed, giving set semantics independent of how the
// host collection iterates.
func CanonicalizeElements[T any](elems []T, c codec.Codec[T]) ([]T, error) {
	encoded, err := encodeAll(elems, func(v T, b *buffer.Buffer) {
		c.Encode(b, v)
	})
	if err != nil {
		return nil, err
	}

	idx := sortedOrder(encoded)
	out := make([]T, 0, len(elems))
	for i, j := range idx {
		if i > 0 && bytes.Equal(encoded[j], encoded[idx[i-1]]) {
			continue
		}
		out = append(out, elems[j])
	}
	return out, nil
}

// encodeAll encodes each item through a pooled scratch buffer and returns
// the per-item wire bytes.
func encodeAll[T any](items []T, encode func(T, *buffer.Buffer)) ([][]byte, error) {
	scratch := buffer.Get()
	defer buffer.Put(scratch)

	out := make([][]byte, len(items))
	for i, item := range items {
		scratch.Reset()
		encode(item, scratch)
		if err := scratch.Err(); err != nil {
			return nil, err
		}
		out[i] = append([]byte(nil), scratch.Bytes()...)
	}
	return out, nil
}

// sortedOrder returns index positions ordered by byte comparison of the
// encodings, stable across equal keys.
func sortedOrder(encoded [][]byte) []int {
	idx := make([]int, len(encoded))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return bytes.Compare(encoded[idx[i]], encoded[idx[j]]) < 0
	})
	return idx
}
