// Package groupbuf stores many variable-length sub-sequences in one
// contiguous backing array, logically partitioned into a fixed number of
// ordered groups whose boundaries move as items are added, removed, or
// relocated between groups.
//
// # Core Features
//
//   - Single allocation for any number of groups; no per-group storage
//   - In-place group replace, append, item removal, and cross-group moves
//     with minimal element shifting
//   - Predicate search and group lookup with an amortized O(1) hint path
//   - Byte-oriented text facade with optional NUL terminators and a colored
//     debug renderer
//   - Relocatable dense tree buffer with checksummed, optionally compressed
//     dumps (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Working with the generic segment engine:
//
//	arr, _ := groupbuf.NewArray[byte](3)
//	arr.SetGroup(0, []byte("ABCD"))
//	arr.SetGroup(1, []byte("EFGH"))
//	arr.SetGroup(2, []byte("IJKL"))
//
//	idx, _ := arr.FindFirst(func(b byte) bool { return b == 'H' }) // 7
//	group, _ := arr.LocateGroup(idx, 0)                            // 1
//	arr.RemoveItem(idx)
//
// Working with per-category text runs:
//
//	txt, _ := groupbuf.NewText(4, textbuf.WithTerminator())
//	txt.SetString(0, "data_array_one")
//	txt.AppendString(0, "more")
//	txt.Render(os.Stdout)
//
// # Package Structure
//
// This package provides thin factory wrappers over the segment and textbuf
// packages, which hold the full APIs. The densetree package is an unrelated
// small utility for serializing binary trees into relocatable buffers.
package groupbuf

import (
	"github.com/arloliu/groupbuf/segment"
	"github.com/arloliu/groupbuf/textbuf"
)

// NewArray creates a segmented array of items of type T with the given fixed
// group count. See segment.New.
func NewArray[T any](groupCount int) (*segment.Array[T], error) {
	return segment.New[T](groupCount)
}

// NewText creates a byte-oriented text facade with the given fixed group
// count. See textbuf.New.
//
// Available options:
//   - textbuf.WithTerminator()
func NewText(groupCount int, opts ...textbuf.Option) (*textbuf.Text, error) {
	return textbuf.New(groupCount, opts...)
}
