package lexer

import (
	"fmt"
)

// Position is a coordinate in the source text. Line and Col are both
// 1-indexed; a newline advances Line and resets Col to 1.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span delimits the source text of one atom or one list, from its first
// character to its last one, both inclusive. For delimited atoms and
// lists that includes the delimiters and brackets themselves.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}
