package token

// Type is the type of a token.
type Type string

// Token represents a single entry of a children line.
type Token struct {
	Type    Type
	Literal string
	Column  int
}

const (
	EOF  Type = "EOF"  // End of line
	WORD Type = "WORD" // c1, 10, 1.1, 10+1
)

// Separator is the only delimiter between entries of a children line.
const Separator = ' '

// IsSeparator reports whether b delimits children.
func IsSeparator(b byte) bool { return b == Separator }
