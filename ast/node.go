package ast

import (
	"fmt"
	"strings"

	"github.com/shack/tinysexpr/lexer"
)

// Kind discriminates the two node variants.
type Kind int

// Node kinds
const (
	KindAtom Kind = iota
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindList:
		return "list"
	}
	return "invalid"
}

// Node is one element of a parsed tree: either an atom carrying the
// value produced by the reader's atom function, or an ordered list of
// child nodes. Nodes are immutable once constructed.
type Node struct {
	kind Kind
	span lexer.Span
	v    interface{}
	list []*Node
}

// NewAtom returns an atom node holding v, spanning the atom's source
// text.
func NewAtom(v interface{}, span lexer.Span) *Node {
	return &Node{
		kind: KindAtom,
		span: span,
		v:    v,
	}
}

// NewList returns a list node over the given children. The span runs
// from the opening to the closing bracket.
func NewList(children []*Node, span lexer.Span) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		kind: KindList,
		span: span,
		list: children,
	}
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// Span returns the source coordinates bounding the node.
func (n *Node) Span() lexer.Span {
	return n.span
}

// IsAtom reports whether the node is an atom.
func (n *Node) IsAtom() bool {
	return n.kind == KindAtom
}

// IsList reports whether the node is a list.
func (n *Node) IsList() bool {
	return n.kind == KindList
}

// Value returns the atom value. It is nil for lists.
func (n *Node) Value() interface{} {
	return n.v
}

// List returns the child nodes. It is nil for atoms.
func (n *Node) List() []*Node {
	return n.list
}

func (n *Node) String() string {
	var sb strings.Builder
	n.appendToBuilder(&sb)
	return sb.String()
}

func (n *Node) appendToBuilder(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.kind {
	case KindList:
		sb.WriteRune('(')
		for i, c := range n.list {
			if i > 0 {
				sb.WriteRune(' ')
			}
			c.appendToBuilder(sb)
		}
		sb.WriteRune(')')
	case KindAtom:
		fmt.Fprintf(sb, "%v", n.v)
	}
}
