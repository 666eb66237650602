// Package densetree serializes a binary tree into one relocatable byte
// buffer.
//
// # Layout
//
// Every node is an explicit record in an append-only arena: two uint32 child
// offsets, a payload length, and the payload bytes inline. Children are
// addressed by offset relative to the buffer start, never by pointer, so
// copying the buffer copies the tree and a dump written on one host loads on
// any other:
//
//	Node1, Payload1, Node2, LargePayload2, Node3, Payload3, ...
//
// Payloads are variable-length; record boundaries are implied by the stored
// lengths. Rearranging or deleting nodes is not supported; the arena only
// grows until Reset.
//
// # Usage
//
//	b := densetree.NewBuf()
//	defer b.Release()
//
//	root, _ := b.AddNode([]byte("fruit"))
//	left, _ := b.AddNode([]byte("apple"))
//	b.SetLeft(root, left)
//
//	_ = b.Dump(f, densetree.WithCompression(format.CompressionLZ4))
//
// The dump format prepends a checksummed header; Load verifies it and
// restores a buffer against which all prior offsets remain valid.
//
// This package and the segment engine share no invariants; the tree buffer
// is a standalone utility with its own persistence, while the segmented
// array remains in-memory only.
package densetree
