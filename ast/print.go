package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print writes a human-readable dump of the tree to stdout.
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable dump of the tree to w, one node per
// line, children indented under their parent.
func Fprint(w io.Writer, n *Node) {
	fprintLevel(w, n, 0)
}

func fprintLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	switch n.Kind() {
	case KindList:
		fmt.Fprintf(w, "%s(%v) %v\n", indent, n.Kind(), n.Span())
		for _, c := range n.List() {
			fprintLevel(w, c, level+1)
		}
	default:
		fmt.Fprintf(w, "%s(%v) %v: %#v\n", indent, n.Kind(), n.Span(), n.Value())
	}
}
