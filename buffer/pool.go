package buffer

import "sync"

// Pool limits to prevent memory bloat
const maxPooledCapacity = 64 << 10

var bufPool = sync.Pool{
	New: func() any {
		return New(DefaultCapacity)
	},
}

// Get returns an empty scratch buffer from the pool.
func Get() *Buffer {
	return bufPool.Get().(*Buffer)
}

// Put returns a buffer to the pool. Poisoned buffers and buffers that grew
// beyond the pooling cap are rejected; the buffer must not be used after.
func Put(b *Buffer) {
	if b == nil || b.Poisoned() || b.Cap() > maxPooledCapacity {
		return
	}
	b.Reset()
	bufPool.Put(b)
}
