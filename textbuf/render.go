package textbuf

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// groupPalette cycles per group; the palette order follows the classic ANSI
// foreground sequence.
var groupPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgWhite),
}

// nulGlyph renders stored terminator bytes visibly instead of emitting a raw
// NUL into the output.
var nulGlyph = color.New(color.FgHiBlack)

// Render writes the whole byte sequence to w with a distinct color per group
// and an explicit `\0` glyph for terminator bytes, followed by the total
// length. It is purely observational debug output and not part of the data
// contract.
func (t *Text) Render(w io.Writer) {
	for g := 0; g < t.arr.Groups(); g++ {
		c := groupPalette[g%len(groupPalette)]
		t.arr.ForEachInGroup(g, func(b byte) { //nolint:errcheck // g is always in range
			if b == 0 {
				nulGlyph.Fprint(w, `\0`)
				return
			}
			c.Fprintf(w, "%c", b)
		})
	}

	fmt.Fprintf(w, "   length: %d\n", t.arr.Len())
}
