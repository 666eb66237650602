package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	n, err := bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("hello world"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	off := bb.ExtendOrGrow(10)
	require.Equal(t, 0, off)
	require.Equal(t, 10, bb.Len())

	off = bb.ExtendOrGrow(3)
	require.Equal(t, 10, off)
	require.Equal(t, 13, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abcd"))

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("abcd"), bb.Bytes(), "growth must preserve contents")
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	// Reused buffers come back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())

	// Oversized buffers are dropped, not pooled.
	big := NewByteBuffer(128)
	p.Put(big)

	p.Put(nil) // must not panic
}

func TestTreeBufferPool(t *testing.T) {
	bb := GetTreeBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	PutTreeBuffer(bb)
}
