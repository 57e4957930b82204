package lexer

import (
	"errors"
	"fmt"
)

// Error kinds raised while reading. Match them with errors.Is; the
// concrete error is always a *SyntaxError carrying the exact coordinate.
var (
	ErrUnexpectedEOF  = errors.New("unexpected end of file")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrInvalidEscape  = errors.New("invalid escape character")
)

// SyntaxError is a fatal reader error at a source coordinate. The
// session that produced it cannot be resumed.
type SyntaxError struct {
	Pos    Position
	Err    error  // the error kind
	Detail string // message shown to the user; defaults to the kind's text
}

func (e *SyntaxError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s at %v", msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
