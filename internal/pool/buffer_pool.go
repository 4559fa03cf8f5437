package pool

import "sync"

// RowPool implements a pool of int slices for efficient memory reuse.
// The edit-distance scorer borrows its matrix rows from here so that a
// full wordlist scan does not allocate per entry.
type RowPool struct {
	pool sync.Pool
	size int
}

// NewRowPool creates a new row pool with rows of the specified capacity.
func NewRowPool(size int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row from the pool or creates a new one if none are available.
func (rp *RowPool) Get() *[]int {
	return rp.pool.Get().(*[]int)
}

// Put returns a row to the pool for reuse.
func (rp *RowPool) Put(row *[]int) {
	// Reset row length but keep capacity
	*row = (*row)[:0]
	rp.pool.Put(row)
}

// RuneBufferPool implements a pool of rune slices, used when decoding
// strings to Unicode scalar values before scoring.
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified size.
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a rune buffer from the pool.
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool.
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}
