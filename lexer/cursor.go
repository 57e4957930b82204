package lexer

import (
	"bufio"
	"io"
)

// Cursor pulls runes one at a time from a reader, keeping exactly one
// rune of lookahead together with its coordinate. A read failure of the
// underlying reader is indistinguishable from end of input.
type Cursor struct {
	in  io.RuneReader
	ch  rune
	eof bool
	pos Position
}

// NewCursor returns a Cursor reading from r. Readers that implement
// io.RuneReader are used directly; anything else is buffered.
//
// The first rune of the input is at 1:1 regardless of what it is; the
// newline rule applies only to runes consumed after it, so a source
// whose very first rune is a newline still starts on line 1.
func NewCursor(r io.Reader) *Cursor {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	c := &Cursor{
		in:  rr,
		pos: Position{Line: 1, Col: 1},
	}
	ch, _, err := rr.ReadRune()
	if err != nil {
		c.eof = true
		return c
	}
	c.ch = ch
	return c
}

// Current returns the rune under the cursor. ok is false once the input
// is exhausted.
func (c *Cursor) Current() (rune, bool) {
	if c.eof {
		return 0, false
	}
	return c.ch, true
}

// Advance consumes the rune under the cursor and returns the next one.
// The coordinate follows the rune read: a newline moves to the first
// column of the next line, anything else advances the column by one.
// Detecting end of input advances the column one final time, marking the
// coordinate where the input ended; further calls do not move.
func (c *Cursor) Advance() (rune, bool) {
	if c.eof {
		return 0, false
	}
	ch, _, err := c.in.ReadRune()
	if err != nil {
		c.eof = true
		c.ch = 0
		c.pos.Col++
		return 0, false
	}
	if ch == '\n' {
		c.pos.Line++
		c.pos.Col = 1
	} else {
		c.pos.Col++
	}
	c.ch = ch
	return ch, true
}

// Pos returns the coordinate of the rune under the cursor, or of the end
// of input once the cursor is exhausted.
func (c *Cursor) Pos() Position {
	return c.pos
}
