package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-bft/internal/token"
)

// Lexer splits a children line into its entries.
//
// Entries are delimited by a single space. Runs of spaces produce empty
// entries, which are skipped. No other whitespace is treated specially, so a
// tab is part of the entry it touches.
type Lexer struct {
	input string
	pos   int
}

// New creates and returns a new Lexer over a single line.
func New(line string) *Lexer {
	return &Lexer{input: line}
}

// NextToken returns the next non-empty entry, or an EOF token once the line
// is exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipSeparators()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Column: l.pos + 1}
	}
	start := l.pos
	for l.pos < len(l.input) && !token.IsSeparator(l.input[l.pos]) {
		l.pos++
	}
	return token.Token{
		Type:    token.WORD,
		Literal: l.input[start:l.pos],
		Column:  start + 1,
	}
}

func (l *Lexer) skipSeparators() {
	for l.pos < len(l.input) && token.IsSeparator(l.input[l.pos]) {
		l.pos++
	}
}

// Trim removes leading and trailing white space, as defined by Unicode, from
// a label line. The result shares storage with line.
func Trim(line string) string {
	return strings.TrimSpace(line)
}
