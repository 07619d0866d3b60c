package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexOperatorsAndBrackets(t *testing.T) {
	input := `= ::= ; | / ? * + ( ) [ ] { }`
	tokens, err := Lex(input)
	require.NoError(t, err)

	expected := []TokenType{
		Equals, Equals, Termination, Alternation, Alternation,
		Optional, Kleene, Repeat,
		OpeningGroup, ClosingGroup, OpeningSquare, ClosingSquare, OpeningBrace, ClosingBrace,
	}
	require.Len(t, tokens, len(expected))
	for i, want := range expected {
		require.Equalf(t, want, tokens[i].Type, "token %d", i)
	}
}

func TestLexIdentifier(t *testing.T) {
	tokens, err := Lex("message tags_2 ζωή")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		require.Equal(t, Identifier, tok.Type)
	}
	require.Equal(t, "message", tokens[0].Value)
	require.Equal(t, "tags_2", tokens[1].Value)
	require.Equal(t, "ζωή", tokens[2].Value)
}

func TestLexLiteralDoesNotInterpretEscapes(t *testing.T) {
	tokens, err := Lex(`"a\"b"`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, Literal, tokens[0].Type)
	require.Equal(t, `a\"b`, tokens[0].Value)
}

func TestLexRegex(t *testing.T) {
	tokens, err := Lex(`#'[0-9]+'`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, Regex, tokens[0].Type)
	require.Equal(t, "[0-9]+", tokens[0].Value)
}

func TestLexSkipsCommasWhitespaceAndComments(t *testing.T) {
	tokens, err := Lex("a, b // a trailing comment\n , c")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, "a", tokens[0].Value)
	require.Equal(t, "b", tokens[1].Value)
	require.Equal(t, "c", tokens[2].Value)
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := Lex("'Hello")
	require.Error(t, err)
	var unrecognized *UnrecognizedError
	require.ErrorAs(t, err, &unrecognized)
	require.Equal(t, 0, unrecognized.Offset)
}

func TestLexIllegalCharacterReportsOffset(t *testing.T) {
	_, err := Lex("A = @;")
	require.Error(t, err)
	var unrecognized *UnrecognizedError
	require.ErrorAs(t, err, &unrecognized)
	require.Equal(t, 4, unrecognized.Offset)
}

func TestLexBareColonIsIllegal(t *testing.T) {
	_, err := Lex("A : B")
	require.Error(t, err)
}

func TestLexSpansTrackLines(t *testing.T) {
	tokens, err := Lex("a\nb")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, 1, tokens[0].Span.StartLine)
	require.Equal(t, 2, tokens[1].Span.StartLine)
}
