// Package errs defines the sentinel error values shared across groupbuf packages.
//
// All caller-facing precondition violations are reported through these values,
// wrapped with context via fmt.Errorf("%w: ...", ...) at the call site. Callers
// match them with errors.Is. Lookups that legitimately find nothing (LocateGroup,
// FindFirst) return a boolean, not an error; absence is an expected outcome.
package errs

import "errors"

// Segment engine errors.
var (
	// ErrInvalidGroupCount is returned when an Array is constructed with a
	// non-positive group count.
	ErrInvalidGroupCount = errors.New("group count must be positive")

	// ErrInvalidGroupIndex is returned when a group index is outside
	// [0, GroupCount).
	ErrInvalidGroupIndex = errors.New("group index out of range")

	// ErrItemIndexOutOfRange is returned when an item index is outside
	// [0, Len()).
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)

// Dense tree buffer errors.
var (
	// ErrInvalidOffset is returned when an offset does not point at a node
	// record inside the buffer.
	ErrInvalidOffset = errors.New("invalid node offset")

	// ErrBufferTooLarge is returned when a tree buffer exceeds the dump
	// format's addressable size.
	ErrBufferTooLarge = errors.New("tree buffer too large")

	// ErrInvalidMagic is returned when dump data does not start with the
	// expected magic number.
	ErrInvalidMagic = errors.New("invalid dump magic")

	// ErrChecksumMismatch is returned when the payload checksum recorded in
	// a dump header does not match the decompressed payload.
	ErrChecksumMismatch = errors.New("dump checksum mismatch")

	// ErrInvalidCompression is returned when a dump header carries an
	// unknown compression type.
	ErrInvalidCompression = errors.New("invalid dump compression type")

	// ErrTruncatedDump is returned when dump data ends before the length
	// recorded in its header.
	ErrTruncatedDump = errors.New("truncated dump data")
)
