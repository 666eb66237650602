package textbuf

import (
	"github.com/arloliu/groupbuf/internal/options"
	"github.com/arloliu/groupbuf/segment"
)

// Text is a byte-oriented facade over a segment.Array. Each group holds one
// variable-length run of text; SetString and AppendString forward to the
// engine's SetGroup and AppendGroup with the string's bytes, optionally
// followed by a NUL terminator.
//
// The facade adds no invariants of its own, and every mutation goes through
// the engine.
type Text struct {
	arr  *segment.Array[byte]
	term bool
}

// Option represents a functional option for configuring a Text.
type Option = options.Option[*Text]

// WithTerminator makes SetString and AppendString store a trailing NUL byte
// (value 0) as part of each group's content, C-string style. Reads via
// CString stop at that byte; GroupString includes it.
func WithTerminator() Option {
	return options.NoError(func(t *Text) {
		t.term = true
	})
}

// New creates a Text with the given fixed group count.
//
// Returns errs.ErrInvalidGroupCount if groupCount is not positive.
func New(groupCount int, opts ...Option) (*Text, error) {
	arr, err := segment.New[byte](groupCount)
	if err != nil {
		return nil, err
	}

	t := &Text{arr: arr}
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// Engine returns the underlying segment engine for item-level operations and
// queries (MoveItem, RemoveItem, LocateGroup, FindFirst, ...).
func (t *Text) Engine() *segment.Array[byte] {
	return t.arr
}

// Groups returns the fixed number of groups.
func (t *Text) Groups() int {
	return t.arr.Groups()
}

// Len returns the total number of stored bytes, terminators included.
func (t *Text) Len() int {
	return t.arr.Len()
}

// SetString replaces group g's contents with s.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (t *Text) SetString(g int, s string) error {
	return t.arr.SetGroup(g, t.encode(s))
}

// AppendString appends s to group g's existing contents.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (t *Text) AppendString(g int, s string) error {
	return t.arr.AppendGroup(g, t.encode(s))
}

// GroupString returns group g's raw contents as a string, terminator bytes
// included. An empty group yields "".
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (t *Text) GroupString(g int) (string, error) {
	data, err := t.arr.Group(g)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// CString returns group g's contents up to (excluding) the first NUL byte,
// or the whole group if it holds none.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (t *Text) CString(g int) (string, error) {
	data, err := t.arr.Group(g)
	if err != nil {
		return "", err
	}

	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}

	return string(data), nil
}

func (t *Text) encode(s string) []byte {
	if !t.term {
		return []byte(s)
	}

	b := make([]byte, len(s)+1)
	copy(b, s)

	return b
}
