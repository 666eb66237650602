// Package pool provides pooled byte buffers with amortized growth, used by
// the dense tree arena and the dump encoder to avoid per-operation
// allocations.
package pool

import (
	"io"
	"sync"
)

const (
	// TreeBufferDefaultSize is the initial capacity of buffers from the tree
	// pool; most demo-scale trees fit without a single reallocation.
	TreeBufferDefaultSize = 1024 * 4 // 4KiB

	// TreeBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; anything larger is dropped to prevent memory bloat.
	TreeBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice with explicit length and capacity
// control. The zero value is not usable; create one with NewByteBuffer or
// take one from a pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the current capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write appends data to the buffer, growing it as needed.
// It implements io.Writer and never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ExtendOrGrow extends the buffer's length by n bytes, reallocating if the
// capacity is insufficient, and returns the offset of the extension.
func (bb *ByteBuffer) ExtendOrGrow(n int) int {
	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]

	return start
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by TreeBufferDefaultSize to minimize
// reallocations; larger ones grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TreeBufferDefaultSize
	if cap(bb.B) > 4*TreeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers to minimize allocations. Buffers whose
// capacity exceeds maxThreshold are discarded instead of pooled.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize initial
// capacity and discarding returned buffers larger than maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var treeDefaultPool = NewByteBufferPool(TreeBufferDefaultSize, TreeBufferMaxThreshold)

// GetTreeBuffer retrieves a ByteBuffer from the default tree pool.
func GetTreeBuffer() *ByteBuffer {
	return treeDefaultPool.Get()
}

// PutTreeBuffer returns a ByteBuffer to the default tree pool.
func PutTreeBuffer(bb *ByteBuffer) {
	treeDefaultPool.Put(bb)
}
