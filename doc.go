// Package tinysexpr reads a character stream and produces a lazy
// sequence of s-expression trees: nested lists whose leaves are atoms,
// either bare or quoted by a configurable delimiter.
//
// The reader keeps a single rune of lookahead and tracks row/column
// continuously, so every atom and list carries an exact source span and
// every syntax error carries an exact coordinate. Atoms stay raw text
// unless the caller installs an atom function to convert them.
//
// Grammar:
//
//	form    := '(' ( form | atom )* ')'
//	atom    := delimited-atom | bare-atom
//	comment := ';' runs to end of line, equivalent to whitespace
//
// Delimited atoms run from a delimiter character to its next occurrence;
// a delimiter may define an escape character and an escape-substitution
// map. Bare atoms run until whitespace or a reserved character (the
// brackets, the comment character and the configured delimiters).
//
// The subpackages hold the working parts: lexer (cursor, coordinates,
// scanner), ast (the parsed tree) and parser (the recursive parser and
// its lazy top-level driver). This package only bundles them behind a
// one-call entry point.
package tinysexpr
