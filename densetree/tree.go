package densetree

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// Walk traverses the tree rooted at root in pre-order, calling visit with
// each node's depth and payload. A NilOffset root is an empty tree and
// visits nothing. visit must not mutate the buffer during traversal.
func (b *Buf) Walk(root Offset, visit func(depth int, payload []byte)) error {
	return b.walk(root, 0, visit)
}

func (b *Buf) walk(n Offset, depth int, visit func(depth int, payload []byte)) error {
	if n == NilOffset {
		return nil
	}

	rec, err := b.record(n)
	if err != nil {
		return err
	}
	visit(depth, rec[nodeHeaderSize:])

	left := b.engine.Uint32(rec[0:4])
	right := b.engine.Uint32(rec[4:8])
	if err := b.walk(left, depth+1, visit); err != nil {
		return err
	}

	return b.walk(right, depth+1, visit)
}

// Fprint writes an indented pre-order rendering of the tree to w, two spaces
// per level, one payload per line.
func Fprint(w io.Writer, b *Buf, root Offset) error {
	return b.Walk(root, func(depth int, payload []byte) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), payload)
	})
}

// RandomTree builds a full binary tree of the given depth, labeling every
// node with a word picked at random, and returns the root offset. A depth of
// zero yields NilOffset (an empty tree).
func RandomTree(b *Buf, depth int, words []string, rng *rand.Rand) (Offset, error) {
	if depth == 0 {
		return NilOffset, nil
	}

	n, err := b.AddNode([]byte(words[rng.IntN(len(words))]))
	if err != nil {
		return NilOffset, err
	}

	left, err := RandomTree(b, depth-1, words, rng)
	if err != nil {
		return NilOffset, err
	}
	if err := b.SetLeft(n, left); err != nil {
		return NilOffset, err
	}

	right, err := RandomTree(b, depth-1, words, rng)
	if err != nil {
		return NilOffset, err
	}
	if err := b.SetRight(n, right); err != nil {
		return NilOffset, err
	}

	return n, nil
}
