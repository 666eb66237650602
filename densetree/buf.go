package densetree

import (
	"fmt"
	"math"

	"github.com/arloliu/groupbuf/endian"
	"github.com/arloliu/groupbuf/errs"
	"github.com/arloliu/groupbuf/internal/pool"
)

// Offset addresses a node record relative to the start of the buffer.
// Offsets stay valid when the whole buffer is copied or reloaded, which is
// what makes the tree relocatable.
type Offset = uint32

// NilOffset marks a missing child.
const NilOffset Offset = math.MaxUint32

// Node record layout, little-endian:
//
//	[0:4)   left child offset (NilOffset if none)
//	[4:8)   right child offset (NilOffset if none)
//	[8:12)  payload length
//	[12:...] payload bytes
const nodeHeaderSize = 12

// maxBufSize keeps every record addressable by a uint32 offset, with
// NilOffset reserved as the sentinel.
const maxBufSize = math.MaxUint32 - 1

// Buf is an append-only arena holding a binary tree as explicit node records.
// Nodes store offsets instead of pointers and payload bytes inline after the
// record header, so the entire tree lives in one contiguous, relocatable
// byte buffer: copying the bytes copies the tree.
//
// Records are encoded field by field through the endian engine; nothing in
// the buffer depends on the host's in-memory layout.
//
// A Buf is not safe for concurrent use.
type Buf struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewBuf creates an empty tree buffer backed by the pooled arena.
func NewBuf() *Buf {
	return &Buf{
		buf:    pool.GetTreeBuffer(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// Release returns the backing storage to the pool.
// The Buf must not be used afterwards.
func (b *Buf) Release() {
	if b.buf != nil {
		pool.PutTreeBuffer(b.buf)
		b.buf = nil
	}
}

// Size returns the number of bytes currently in the buffer.
func (b *Buf) Size() int {
	return b.buf.Len()
}

// Bytes returns the raw buffer contents.
// The returned slice shares the underlying storage; do not modify it.
func (b *Buf) Bytes() []byte {
	return b.buf.Bytes()
}

// Reset empties the buffer while retaining its capacity.
func (b *Buf) Reset() {
	b.buf.Reset()
}

// AddNode appends a node record with the given payload and no children, and
// returns its offset. The payload bytes are copied into the buffer.
//
// Returns errs.ErrBufferTooLarge if the record would push the buffer past
// the uint32-addressable limit.
func (b *Buf) AddNode(payload []byte) (Offset, error) {
	need := nodeHeaderSize + len(payload)
	if int64(b.buf.Len())+int64(need) > maxBufSize {
		return NilOffset, fmt.Errorf("%w: %d bytes", errs.ErrBufferTooLarge, b.buf.Len()+need)
	}

	start := b.buf.ExtendOrGrow(need)
	rec := b.buf.B[start : start+need]
	b.engine.PutUint32(rec[0:4], NilOffset)
	b.engine.PutUint32(rec[4:8], NilOffset)
	b.engine.PutUint32(rec[8:12], uint32(len(payload))) //nolint:gosec
	copy(rec[nodeHeaderSize:], payload)

	return Offset(start), nil //nolint:gosec
}

// SetLeft links child as n's left child. Pass NilOffset to clear the link.
func (b *Buf) SetLeft(n, child Offset) error {
	rec, err := b.record(n)
	if err != nil {
		return err
	}
	b.engine.PutUint32(rec[0:4], child)

	return nil
}

// SetRight links child as n's right child. Pass NilOffset to clear the link.
func (b *Buf) SetRight(n, child Offset) error {
	rec, err := b.record(n)
	if err != nil {
		return err
	}
	b.engine.PutUint32(rec[4:8], child)

	return nil
}

// Left returns n's left child offset, NilOffset if none.
func (b *Buf) Left(n Offset) (Offset, error) {
	rec, err := b.record(n)
	if err != nil {
		return NilOffset, err
	}

	return b.engine.Uint32(rec[0:4]), nil
}

// Right returns n's right child offset, NilOffset if none.
func (b *Buf) Right(n Offset) (Offset, error) {
	rec, err := b.record(n)
	if err != nil {
		return NilOffset, err
	}

	return b.engine.Uint32(rec[4:8]), nil
}

// Payload returns a copy of n's payload bytes.
func (b *Buf) Payload(n Offset) ([]byte, error) {
	rec, err := b.record(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(rec)-nodeHeaderSize)
	copy(out, rec[nodeHeaderSize:])

	return out, nil
}

// record returns the full node record at offset n, header included.
func (b *Buf) record(n Offset) ([]byte, error) {
	data := b.buf.Bytes()
	if n == NilOffset || int64(n)+nodeHeaderSize > int64(len(data)) {
		return nil, fmt.Errorf("%w: %d (buffer size %d)", errs.ErrInvalidOffset, n, len(data))
	}

	payloadLen := b.engine.Uint32(data[n+8 : n+12])
	end := int64(n) + nodeHeaderSize + int64(payloadLen)
	if end > int64(len(data)) {
		return nil, fmt.Errorf("%w: %d: payload overruns buffer", errs.ErrInvalidOffset, n)
	}

	return data[n:end], nil
}
