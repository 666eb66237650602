// Package textbuf provides a byte-oriented text facade over the segment
// engine: each group of the segmented sequence holds one variable-length text
// run, optionally NUL-terminated, plus a colored debug renderer.
//
// # Usage
//
//	txt, _ := textbuf.New(4)
//	txt.SetString(0, "data_array_one")
//	txt.AppendString(0, "!")
//	txt.Render(os.Stdout)
//
// With WithTerminator, every stored run carries a trailing NUL byte and can
// be read back C-string style:
//
//	txt, _ := textbuf.New(4, textbuf.WithTerminator())
//	txt.SetString(1, "hello")
//	s, _ := txt.CString(1) // "hello", terminator excluded
//
// Item-level operations (move, remove, locate, predicate search) are exposed
// through Engine().
package textbuf
