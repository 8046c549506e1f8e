package buffer

import (
	"sync"

	"github.com/cwbudde/audio-util/dsp/core"
)

// Pool provides sync.Pool-based reuse of mono scratch buffers, used to
// gather one channel lane into contiguous memory for block kernels.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{channels: 1}
			},
		},
	}
}

// Get returns a zeroed mono Buffer with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	if length < 0 {
		length = 0
	}
	b.samples = core.EnsureLen(b.samples, length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
