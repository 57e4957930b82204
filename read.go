package tinysexpr

import (
	"io"

	"github.com/shack/tinysexpr/ast"
	"github.com/shack/tinysexpr/parser"
)

// Read parses every top-level form from r. An empty source yields zero
// forms and no error.
func Read(r io.Reader, opts ...parser.Option) ([]*ast.Node, error) {
	p, err := parser.New(r, opts...)
	if err != nil {
		return nil, err
	}
	return p.ReadAll()
}
