package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/shack/tinysexpr/ast"
	"github.com/shack/tinysexpr/parser"
)

var printTree bool

var rootCmd = &cobra.Command{
	Use:   "sexpr [file ...]",
	Short: "Read s-expressions and print them",
	Long: `Read s-expressions from the given files and print each top-level form.
Without arguments an interactive reader is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return interact()
		}
		for _, name := range args {
			if err := readFile(name); err != nil {
				return err
			}
		}
		return nil
	},
}

func readFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := parser.New(f)
	if err != nil {
		return err
	}
	for {
		form, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		printForm(form)
	}
}

func printForm(n *ast.Node) {
	if printTree {
		ast.Print(n)
		return
	}
	fmt.Println(n)
}

// interact runs a readline loop. Lines are buffered while the parser
// still reports an unexpected end of input, so forms may span lines.
func interact() error {
	rl, err := readline.New("sexpr> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt("sexpr> ")
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if len(buf) != 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line...)
		if len(buf) == 0 {
			continue
		}

		forms, err := parser.Parse(buf)
		if errors.Is(err, parser.ErrUnexpectedEOF) {
			rl.SetPrompt("   ... ")
			continue
		}
		buf = nil
		rl.SetPrompt("sexpr> ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, form := range forms {
			printForm(form)
		}
	}
}

func main() {
	rootCmd.Flags().BoolVar(&printTree, "tree", false, "print parse trees instead of forms")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
