package audio

import (
	"sync/atomic"
)

// eventBuffer is a lock-free spsc queue of loops waiting to be started. The
// UI thread pushes, the audio thread drains it at the start of each buffer.
type eventBuffer struct {
	loops       []*Loop
	read, write *uint32
}

func newEventBuffer(size int) *eventBuffer {
	if size <= 0 || size&(size-1) != 0 {
		panic("event buffer size must be a power of 2")
	}
	return &eventBuffer{
		loops: make([]*Loop, size),
		read:  new(uint32),
		write: new(uint32),
	}
}

// push adds l to the queue. It returns false if the queue is full.
func (b *eventBuffer) push(l *Loop) bool {
	write := atomic.LoadUint32(b.write)
	if write-atomic.LoadUint32(b.read) == uint32(len(b.loops)) {
		return false
	}
	b.loops[write%uint32(len(b.loops))] = l
	atomic.StoreUint32(b.write, write+1)
	return true
}

func (b *eventBuffer) iter(f func(*Loop)) {
	read := atomic.LoadUint32(b.read)
	write := atomic.LoadUint32(b.write)
	for read != write {
		i := read % uint32(len(b.loops))
		l := b.loops[i]
		b.loops[i] = nil
		f(l)
		read++
	}
	atomic.StoreUint32(b.read, read)
}

// nextPow2 returns the smallest power of 2 >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
