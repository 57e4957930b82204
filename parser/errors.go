package parser

import (
	"github.com/shack/tinysexpr/lexer"
)

// Error kinds raised while reading, re-exported so callers can match
// them without importing the lexer package.
var (
	ErrUnexpectedEOF  = lexer.ErrUnexpectedEOF
	ErrUnexpectedChar = lexer.ErrUnexpectedChar
	ErrInvalidEscape  = lexer.ErrInvalidEscape
)

// SyntaxError is the concrete error type returned for malformed input.
// It carries the exact source coordinate of the problem.
type SyntaxError = lexer.SyntaxError
