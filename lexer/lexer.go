package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Scanner is the lexical half of the reader: it skips trivia and reads
// one atom at a time from the cursor, leaving list structure to the
// parser. A Scanner shares its cursor with the parser that owns the
// session.
type Scanner struct {
	cur      *Cursor
	delims   DelimSet
	comment  rune
	reserved map[rune]bool
}

// NewScanner returns a Scanner reading from cur. The reserved character
// set is the union of the list brackets, the comment character and the
// configured delimiters.
func NewScanner(cur *Cursor, delims DelimSet, comment rune) *Scanner {
	reserved := map[rune]bool{
		'(':     true,
		')':     true,
		comment: true,
	}
	for d := range delims {
		reserved[d] = true
	}
	return &Scanner{
		cur:      cur,
		delims:   delims,
		comment:  comment,
		reserved: reserved,
	}
}

// IsDelim reports whether c opens a configured delimited atom.
func (s *Scanner) IsDelim(c rune) bool {
	_, ok := s.delims[c]
	return ok
}

// SkipTrivia advances past whitespace and line comments and returns the
// first rune that is neither. ok is false when the input ran out first.
func (s *Scanner) SkipTrivia() (rune, bool) {
	for {
		c, ok := s.cur.Current()
		if !ok {
			return 0, false
		}
		switch {
		case unicode.IsSpace(c):
			s.cur.Advance()
		case c == s.comment:
			for ok && c != '\n' {
				c, ok = s.cur.Advance()
			}
		default:
			return c, true
		}
	}
}

// ReadDelimited reads the delimited atom opened by the rune under the
// cursor. Escape sequences are decoded through the delimiter's escape
// map; the delimiter characters themselves are kept verbatim in the
// returned text. The span runs from the opening to the closing
// delimiter, and the cursor is left on the rune after it.
func (s *Scanner) ReadDelimited() (string, Span, error) {
	delim, _ := s.cur.Current()
	cfg := s.delims[delim]
	start := s.cur.Pos()

	var b strings.Builder
	b.WriteRune(delim)
	for {
		c, ok := s.cur.Advance()
		if !ok {
			return "", Span{}, &SyntaxError{Pos: s.cur.Pos(), Err: ErrUnexpectedEOF}
		}
		switch {
		case cfg.Escape != 0 && c == cfg.Escape:
			e, ok := s.cur.Advance()
			if !ok {
				return "", Span{}, &SyntaxError{Pos: s.cur.Pos(), Err: ErrUnexpectedEOF}
			}
			rep, mapped := cfg.Escapes[e]
			if !mapped {
				return "", Span{}, &SyntaxError{
					Pos:    s.cur.Pos(),
					Err:    ErrInvalidEscape,
					Detail: fmt.Sprintf("invalid escape character %q", e),
				}
			}
			b.WriteString(rep)
		case c == delim:
			b.WriteRune(c)
			span := Span{Start: start, End: s.cur.Pos()}
			s.cur.Advance()
			return b.String(), span, nil
		default:
			b.WriteRune(c)
		}
	}
}

// ReadBareAtom reads the undelimited atom starting at the rune under the
// cursor. It stops before the first whitespace or reserved rune, leaving
// it unconsumed. Callers only invoke it on a rune known to start an
// atom, so the result is never empty.
func (s *Scanner) ReadBareAtom() (string, Span) {
	start := s.cur.Pos()
	end := start

	var b strings.Builder
	for {
		c, ok := s.cur.Current()
		if !ok || unicode.IsSpace(c) || s.reserved[c] {
			return b.String(), Span{Start: start, End: end}
		}
		b.WriteRune(c)
		end = s.cur.Pos()
		s.cur.Advance()
	}
}
