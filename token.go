package ebnf

import "github.com/ejmount/ebnf-toolkit/internal/lexer"

// Token is a single lexical unit produced by Lex.
type Token = lexer.Token

// TokenType identifies which lexical rule produced a Token.
type TokenType = lexer.TokenType

// Token type constants, re-exported from the lexer package.
const (
	TokenIdentifier   = lexer.Identifier
	TokenLiteral      = lexer.Literal
	TokenRegex        = lexer.Regex
	TokenEquals       = lexer.Equals
	TokenTermination  = lexer.Termination
	TokenAlternation  = lexer.Alternation
	TokenOptional     = lexer.Optional
	TokenKleene       = lexer.Kleene
	TokenRepeat       = lexer.Repeat
	TokenOpeningGroup = lexer.OpeningGroup
	TokenClosingGroup = lexer.ClosingGroup
	TokenOpeningSquare = lexer.OpeningSquare
	TokenClosingSquare = lexer.ClosingSquare
	TokenOpeningBrace  = lexer.OpeningBrace
	TokenClosingBrace  = lexer.ClosingBrace
)
