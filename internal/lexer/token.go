package lexer

import "github.com/ejmount/ebnf-toolkit/internal/span"

// TokenType represents the type of a token.
type TokenType string

const (
	Identifier TokenType = "Identifier"
	Literal    TokenType = "Literal"
	Regex      TokenType = "Regex"

	Equals      TokenType = "Equals"
	Termination TokenType = "Termination"
	Alternation TokenType = "Alternation"
	Optional    TokenType = "Optional"
	Kleene      TokenType = "Kleene"
	Repeat      TokenType = "Repeat"

	OpeningGroup  TokenType = "OpeningGroup"
	ClosingGroup  TokenType = "ClosingGroup"
	OpeningSquare TokenType = "OpeningSquare"
	ClosingSquare TokenType = "ClosingSquare"
	OpeningBrace  TokenType = "OpeningBrace"
	ClosingBrace  TokenType = "ClosingBrace"
)

// IsOperator reports whether a token of this type becomes an
// UnparsedOperator node when pushed onto the shift/reduce stack, as
// opposed to Identifier/Literal/Regex which become value nodes directly.
func (t TokenType) IsOperator() bool {
	switch t {
	case Identifier, Literal, Regex:
		return false
	default:
		return true
	}
}

// Token is a single lexical unit: its type, source span, and payload.
// Raw is the exact source text the token was scanned from (delimiters
// included for Literal/Regex); Value is the payload with delimiters
// stripped for Literal/Regex/Identifier, and is empty for punctuation
// tokens.
type Token struct {
	Type  TokenType
	Span  span.Span
	Raw   string
	Value string
}
