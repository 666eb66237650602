package densetree

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/groupbuf/errs"
)

func TestAddNode(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	n, err := b.AddNode([]byte("root"))
	require.NoError(t, err)
	require.Equal(t, Offset(0), n)
	require.Equal(t, nodeHeaderSize+4, b.Size())

	payload, err := b.Payload(n)
	require.NoError(t, err)
	require.Equal(t, "root", string(payload))

	// New nodes have no children.
	left, err := b.Left(n)
	require.NoError(t, err)
	require.Equal(t, NilOffset, left)
	right, err := b.Right(n)
	require.NoError(t, err)
	require.Equal(t, NilOffset, right)
}

func TestAddNode_EmptyPayload(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	n, err := b.AddNode(nil)
	require.NoError(t, err)

	payload, err := b.Payload(n)
	require.NoError(t, err)
	require.Empty(t, payload)
}

func TestSetChildren(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	root, err := b.AddNode([]byte("fruit"))
	require.NoError(t, err)
	left, err := b.AddNode([]byte("apple"))
	require.NoError(t, err)
	right, err := b.AddNode([]byte("pear"))
	require.NoError(t, err)

	require.NoError(t, b.SetLeft(root, left))
	require.NoError(t, b.SetRight(root, right))

	got, err := b.Left(root)
	require.NoError(t, err)
	require.Equal(t, left, got)
	got, err = b.Right(root)
	require.NoError(t, err)
	require.Equal(t, right, got)

	// Clearing a link restores the sentinel.
	require.NoError(t, b.SetRight(root, NilOffset))
	got, err = b.Right(root)
	require.NoError(t, err)
	require.Equal(t, NilOffset, got)
}

func TestInvalidOffsets(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	_, err := b.AddNode([]byte("only"))
	require.NoError(t, err)

	_, err = b.Payload(Offset(b.Size()))
	require.ErrorIs(t, err, errs.ErrInvalidOffset)

	_, err = b.Left(NilOffset)
	require.ErrorIs(t, err, errs.ErrInvalidOffset)

	require.ErrorIs(t, b.SetLeft(Offset(9999), 0), errs.ErrInvalidOffset)
}

func TestBuf_Relocatable(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	root, err := b.AddNode([]byte("a"))
	require.NoError(t, err)
	child, err := b.AddNode([]byte("b"))
	require.NoError(t, err)
	require.NoError(t, b.SetLeft(root, child))

	// A byte-level copy of the buffer is the same tree: offsets are
	// relative to the buffer start, not the allocation.
	clone := NewBuf()
	defer clone.Release()
	clone.buf.MustWrite(b.Bytes())

	got, err := clone.Left(root)
	require.NoError(t, err)
	require.Equal(t, child, got)

	payload, err := clone.Payload(got)
	require.NoError(t, err)
	require.Equal(t, "b", string(payload))
}

func TestWalk_PreOrder(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	//      root
	//     /    \
	//    l      r
	//   /
	//  ll
	root, _ := b.AddNode([]byte("root"))
	l, _ := b.AddNode([]byte("l"))
	r, _ := b.AddNode([]byte("r"))
	ll, _ := b.AddNode([]byte("ll"))
	require.NoError(t, b.SetLeft(root, l))
	require.NoError(t, b.SetRight(root, r))
	require.NoError(t, b.SetLeft(l, ll))

	var names []string
	var depths []int
	require.NoError(t, b.Walk(root, func(depth int, payload []byte) {
		names = append(names, string(payload))
		depths = append(depths, depth)
	}))

	require.Equal(t, []string{"root", "l", "ll", "r"}, names)
	require.Equal(t, []int{0, 1, 2, 1}, depths)
}

func TestWalk_EmptyTree(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	calls := 0
	require.NoError(t, b.Walk(NilOffset, func(int, []byte) { calls++ }))
	require.Equal(t, 0, calls)
}

func TestFprint(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	root, _ := b.AddNode([]byte("top"))
	kid, _ := b.AddNode([]byte("kid"))
	require.NoError(t, b.SetLeft(root, kid))

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, b, root))
	require.Equal(t, "top\n  kid\n", sb.String())
}

func TestRandomTree(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	words := []string{"apple", "banana", "cherry"}
	rng := rand.New(rand.NewPCG(1, 2))

	root, err := RandomTree(b, 4, words, rng)
	require.NoError(t, err)
	require.NotEqual(t, NilOffset, root)

	// A full tree of depth 4 has 2^4-1 nodes, every payload from the list.
	count := 0
	require.NoError(t, b.Walk(root, func(_ int, payload []byte) {
		count++
		require.Contains(t, words, string(payload))
	}))
	require.Equal(t, 15, count)
}

func TestRandomTree_ZeroDepth(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	root, err := RandomTree(b, 0, []string{"x"}, rand.New(rand.NewPCG(0, 0)))
	require.NoError(t, err)
	require.Equal(t, NilOffset, root)
	require.Equal(t, 0, b.Size())
}

func TestReset(t *testing.T) {
	b := NewBuf()
	defer b.Release()

	_, err := b.AddNode([]byte("gone"))
	require.NoError(t, err)
	b.Reset()
	require.Equal(t, 0, b.Size())

	n, err := b.AddNode([]byte("fresh"))
	require.NoError(t, err)
	require.Equal(t, Offset(0), n)
}
