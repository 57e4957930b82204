package lexer

// Delim configures one quoting delimiter. An atom opened by a delimiter
// character runs until the same character occurs again.
type Delim struct {
	// Escape introduces an escape sequence inside the delimited atom.
	// Zero disables escape processing for this delimiter.
	Escape rune

	// Escapes maps the character following Escape to its replacement
	// text. A character missing from the map is a syntax error.
	Escapes map[rune]string
}

// DelimSet maps a delimiter character to its configuration. Delimiter
// characters are reserved: they terminate bare atoms and cannot appear
// unescaped inside one.
type DelimSet map[rune]Delim

// DefaultDelims returns the stock configuration: double-quoted strings
// with \n \t \r \\ \" escapes, and bar-quoted symbols without escapes.
func DefaultDelims() DelimSet {
	return DelimSet{
		'"': {
			Escape: '\\',
			Escapes: map[rune]string{
				'n':  "\n",
				't':  "\t",
				'r':  "\r",
				'\\': `\`,
				'"':  `"`,
			},
		},
		'|': {},
	}
}
