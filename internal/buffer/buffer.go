// Package buffer provides pooled byte buffers used to bound the memory of
// chunked copies.
package buffer

import "sync"

// DefaultSize is the default capacity of buffers, and the alignment of the
// capacity of larger ones.
const DefaultSize = 4096

// Buffer wraps a byte slice so it can be stored in a sync.Pool without
// allocating on each Put.
type Buffer struct{ Data []byte }

func (buf *Buffer) Size() int {
	return len(buf.Data)
}

// Pool recycles buffers. The zero value is ready to use.
type Pool struct{ pool sync.Pool }

// Get returns a buffer of length size. Recycled buffers are reused when their
// capacity fits, otherwise a new one is allocated.
func (p *Pool) Get(size int) *Buffer {
	if b, _ := p.pool.Get().(*Buffer); b != nil {
		if size <= cap(b.Data) {
			b.Data = b.Data[:size]
			return b
		}
		p.pool.Put(b)
	}
	return New(size)
}

func (p *Pool) Put(b *Buffer) {
	if b != nil {
		p.pool.Put(b)
	}
}

// New allocates a buffer of length size with a capacity rounded up to a
// multiple of DefaultSize.
func New(size int) *Buffer {
	return &Buffer{Data: make([]byte, size, Align(size, DefaultSize))}
}

// Release returns *buf to pool and clears the pointer so the buffer cannot be
// used after being recycled.
func Release(buf **Buffer, pool *Pool) {
	if b := *buf; b != nil {
		*buf = nil
		pool.Put(b)
	}
}

func Align(size, to int) int {
	return ((size + (to - 1)) / to) * to
}
