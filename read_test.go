package tinysexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shack/tinysexpr/lexer"
	"github.com/shack/tinysexpr/parser"
)

func TestRead(t *testing.T) {
	forms, err := Read(strings.NewReader(`(a) (b (c))`))
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, `(a)`, forms[0].String())
	assert.Equal(t, `(b (c))`, forms[1].String())
}

func TestReadEmpty(t *testing.T) {
	forms, err := Read(strings.NewReader(``))
	require.NoError(t, err)
	assert.Len(t, forms, 0)
}

func TestReadSyntaxError(t *testing.T) {
	_, err := Read(strings.NewReader(`(a`))
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnexpectedEOF)
}

func TestReadOptions(t *testing.T) {
	forms, err := Read(
		strings.NewReader("(a # b\nc)"),
		parser.WithComment('#'),
	)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, `(a c)`, forms[0].String())

	_, err = Read(
		strings.NewReader(``),
		parser.WithDelims(lexer.DelimSet{';': {}}),
	)
	assert.Error(t, err)
}
