package buffer

import "testing"

func TestPool_GetReturnsEmptyBuffer(t *testing.T) {
	b := Get()
	if b.Poisoned() || b.Len() != 0 || b.Cursor() != 0 {
		t.Fatalf("pooled buffer not fresh: len=%d cursor=%d err=%v", b.Len(), b.Cursor(), b.Err())
	}
	Put(b)
}

func TestPool_PutResetsForReuse(t *testing.T) {
	b := Get()
	b.Write([]byte{1, 2, 3})
	Put(b)

	again := Get()
	if again.Len() != 0 || again.Cursor() != 0 {
		t.Errorf("reused buffer not reset: len=%d cursor=%d", again.Len(), again.Cursor())
	}
	Put(again)
}

func TestPool_RejectsPoisoned(t *testing.T) {
	b := Get()
	b.ResetCursor()
	b.Next(1) // empty buffer: overrun poisons
	if !b.Poisoned() {
		t.Fatal("setup: buffer should be poisoned")
	}
	Put(b) // must be dropped, not pooled

	again := Get()
	if again.Poisoned() {
		t.Error("pool handed out a poisoned buffer")
	}
	Put(again)
}

func TestPool_RejectsOversized(t *testing.T) {
	b := Get()
	b.Write(make([]byte, maxPooledCapacity+1))
	Put(b) // must be dropped

	again := Get()
	if again.Cap() > maxPooledCapacity {
		t.Errorf("pool retained oversized buffer: cap=%d", again.Cap())
	}
	Put(again)
}

func TestPool_PutNil(t *testing.T) {
	Put(nil) // must not panic
}
