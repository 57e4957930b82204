package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shack/tinysexpr/ast"
	"github.com/shack/tinysexpr/lexer"
)

// AtomFunc transforms the text of one scanned atom before it is placed
// into the tree. The default keeps the text as-is.
type AtomFunc func(text string, span lexer.Span) interface{}

// Option configures a Parser.
type Option func(*Parser) error

// WithDelims replaces the delimiter configuration.
func WithDelims(delims lexer.DelimSet) Option {
	return func(p *Parser) error {
		p.delims = delims
		return nil
	}
}

// WithComment sets the character that starts a single-line comment.
func WithComment(c rune) Option {
	return func(p *Parser) error {
		p.comment = c
		return nil
	}
}

// WithAtomFunc sets the transform applied to every scanned atom.
func WithAtomFunc(fn AtomFunc) Option {
	return func(p *Parser) error {
		if fn == nil {
			return errors.New("atom function must not be nil")
		}
		p.atom = fn
		return nil
	}
}

// Parser reads s-expressions from a character stream, one top-level form
// at a time. A Parser owns its source for the lifetime of the session:
// it is not safe for concurrent use, and after the first syntax error
// every call reports that same error.
type Parser struct {
	cur  *lexer.Cursor
	sc   *lexer.Scanner
	atom AtomFunc

	delims  lexer.DelimSet
	comment rune

	err error
}

// New returns a Parser reading from r. Configuration is validated: a
// quoting delimiter or comment character that doubles as a list
// bracket is rejected, as is a delimiter that doubles as the comment
// character.
func New(r io.Reader, opts ...Option) (*Parser, error) {
	p := &Parser{
		delims:  lexer.DefaultDelims(),
		comment: ';',
		atom: func(text string, _ lexer.Span) interface{} {
			return text
		},
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.comment == '(' || p.comment == ')' {
		return nil, fmt.Errorf("comment character %q conflicts with a list bracket", p.comment)
	}
	for d := range p.delims {
		switch d {
		case p.comment:
			return nil, fmt.Errorf("delimiter %q conflicts with the comment character", d)
		case '(', ')':
			return nil, fmt.Errorf("delimiter %q conflicts with a list bracket", d)
		}
	}
	p.cur = lexer.NewCursor(r)
	p.sc = lexer.NewScanner(p.cur, p.delims, p.comment)
	return p, nil
}

// Next reads the next top-level form. It returns io.EOF once the input
// is exhausted; zero forms before that is valid. Any other error is a
// *lexer.SyntaxError and ends the session.
func (p *Parser) Next() (*ast.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	c, ok := p.sc.SkipTrivia()
	if !ok {
		return nil, io.EOF
	}
	if c != '(' {
		p.err = &lexer.SyntaxError{
			Pos:    p.cur.Pos(),
			Err:    lexer.ErrUnexpectedChar,
			Detail: fmt.Sprintf("expected '(', got %q", c),
		}
		return nil, p.err
	}
	open := p.cur.Pos()
	p.cur.Advance()
	node, err := p.parseList(open)
	if err != nil {
		p.err = err
		return nil, err
	}
	return node, nil
}

// parseList parses list elements until the matching close bracket. The
// opening bracket at open has already been consumed.
func (p *Parser) parseList(open lexer.Position) (*ast.Node, error) {
	var elems []*ast.Node
	for {
		c, ok := p.sc.SkipTrivia()
		if !ok {
			return nil, &lexer.SyntaxError{Pos: p.cur.Pos(), Err: lexer.ErrUnexpectedEOF}
		}
		switch {
		case c == '(':
			inner := p.cur.Pos()
			p.cur.Advance()
			child, err := p.parseList(inner)
			if err != nil {
				return nil, err
			}
			elems = append(elems, child)

		case c == ')':
			span := lexer.Span{Start: open, End: p.cur.Pos()}
			p.cur.Advance()
			return ast.NewList(elems, span), nil

		case p.sc.IsDelim(c):
			text, span, err := p.sc.ReadDelimited()
			if err != nil {
				return nil, err
			}
			elems = append(elems, ast.NewAtom(p.atom(text, span), span))

		default:
			text, span := p.sc.ReadBareAtom()
			elems = append(elems, ast.NewAtom(p.atom(text, span), span))
		}
	}
}

// ReadAll reads the remaining top-level forms.
func (p *Parser) ReadAll() ([]*ast.Node, error) {
	var forms []*ast.Node
	for {
		node, err := p.Next()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, node)
	}
}

// Parse reads every top-level form in the given input.
func Parse(in []byte, opts ...Option) ([]*ast.Node, error) {
	p, err := New(bytes.NewReader(in), opts...)
	if err != nil {
		return nil, err
	}
	return p.ReadAll()
}

// ParseString reads every top-level form in the given input.
func ParseString(in string, opts ...Option) ([]*ast.Node, error) {
	p, err := New(strings.NewReader(in), opts...)
	if err != nil {
		return nil, err
	}
	return p.ReadAll()
}
