package textbuf

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/groupbuf/errs"
)

func TestNew(t *testing.T) {
	txt, err := New(4)
	require.NoError(t, err)
	require.Equal(t, 4, txt.Groups())
	require.Equal(t, 0, txt.Len())

	_, err = New(0)
	require.ErrorIs(t, err, errs.ErrInvalidGroupCount)
}

func TestSetString(t *testing.T) {
	txt, err := New(3)
	require.NoError(t, err)

	require.NoError(t, txt.SetString(0, "ABCD"))
	require.NoError(t, txt.SetString(1, "EFGH"))
	require.NoError(t, txt.SetString(2, "IJKL"))
	require.Equal(t, 12, txt.Len())

	s, err := txt.GroupString(1)
	require.NoError(t, err)
	require.Equal(t, "EFGH", s)

	// Replacing shrinks in place.
	require.NoError(t, txt.SetString(0, "1"))
	require.Equal(t, 9, txt.Len())

	s, err = txt.GroupString(0)
	require.NoError(t, err)
	require.Equal(t, "1", s)
	s, err = txt.GroupString(1)
	require.NoError(t, err)
	require.Equal(t, "EFGH", s)

	require.ErrorIs(t, txt.SetString(3, "x"), errs.ErrInvalidGroupIndex)
}

func TestAppendString(t *testing.T) {
	txt, err := New(2)
	require.NoError(t, err)

	require.NoError(t, txt.AppendString(0, "foo"))
	require.NoError(t, txt.AppendString(1, "baz"))
	require.NoError(t, txt.AppendString(0, "bar"))

	s, err := txt.GroupString(0)
	require.NoError(t, err)
	require.Equal(t, "foobar", s)

	s, err = txt.GroupString(1)
	require.NoError(t, err)
	require.Equal(t, "baz", s)
}

func TestWithTerminator(t *testing.T) {
	txt, err := New(2, WithTerminator())
	require.NoError(t, err)

	require.NoError(t, txt.SetString(0, "hello"))
	require.Equal(t, 6, txt.Len()) // 5 bytes + NUL

	raw, err := txt.GroupString(0)
	require.NoError(t, err)
	require.Equal(t, "hello\x00", raw)

	s, err := txt.CString(0)
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	// Appending adds another terminated run to the same group.
	require.NoError(t, txt.AppendString(0, "hi"))
	raw, err = txt.GroupString(0)
	require.NoError(t, err)
	require.Equal(t, "hello\x00hi\x00", raw)

	// CString still stops at the first terminator.
	s, err = txt.CString(0)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestCString_NoTerminator(t *testing.T) {
	txt, err := New(1)
	require.NoError(t, err)
	require.NoError(t, txt.SetString(0, "plain"))

	s, err := txt.CString(0)
	require.NoError(t, err)
	require.Equal(t, "plain", s)

	_, err = txt.CString(1)
	require.ErrorIs(t, err, errs.ErrInvalidGroupIndex)
}

func TestEngine_SharedState(t *testing.T) {
	txt, err := New(3)
	require.NoError(t, err)
	require.NoError(t, txt.SetString(0, "ABCD"))
	require.NoError(t, txt.SetString(1, "EFGH"))
	require.NoError(t, txt.SetString(2, "IJKL"))

	eng := txt.Engine()
	idx, ok := eng.FindFirst(func(b byte) bool { return b == 'H' })
	require.True(t, ok)
	require.Equal(t, 7, idx)

	require.NoError(t, eng.RemoveItem(idx))

	s, err := txt.GroupString(1)
	require.NoError(t, err)
	require.Equal(t, "EFG", s)
}

func TestRender(t *testing.T) {
	// Pin color output off so the assertions see plain characters
	// regardless of how the test binary's stdout is wired.
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	txt, err := New(2, WithTerminator())
	require.NoError(t, err)
	require.NoError(t, txt.SetString(0, "ab"))
	require.NoError(t, txt.SetString(1, "cd"))

	var sb strings.Builder
	txt.Render(&sb)
	out := sb.String()

	// Color escapes are disabled in non-TTY test output; the characters,
	// the terminator glyphs, and the length trailer must still be there.
	require.Contains(t, out, "ab")
	require.Contains(t, out, "cd")
	require.Contains(t, out, `\0`)
	require.Contains(t, out, "length: 6")
	require.NotContains(t, out, "\x00")
}
