package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/diag"
	"github.com/ejmount/ebnf-toolkit/internal/span"
)

func TestLexErrorDiagnosticNotesUnclosedString(t *testing.T) {
	err := &diag.Error{Kind: diag.KindLex, Input: "'Hello", Offset: 0}
	d := err.Diagnostic()
	require.Equal(t, diag.StageLexer, d.Stage)
	require.Equal(t, diag.CodeLexUnrecognized, d.Code)
	require.Contains(t, d.Notes, "Is this the beginning of an unclosed string?")
}

func TestEmptyInputDiagnostic(t *testing.T) {
	err := &diag.Error{Kind: diag.KindEmptyInput}
	d := err.Diagnostic()
	require.Equal(t, diag.CodeEmptyInput, d.Code)
}

func TestExhaustedInputPrefersSemicolonHint(t *testing.T) {
	err := &diag.Error{
		Kind: diag.KindParse, Reason: diag.ReasonExhaustedInput,
		Offset: 5, CompletesWithSemicolon: true,
	}
	d := err.Diagnostic()
	require.Equal(t, "Missing semicolon here", d.Message)
}

func TestTerminatorNotEndingRuleFlagsUnclosedBracket(t *testing.T) {
	s := span.Span{}
	stack := []ast.Expr{
		ast.NewNonterminal(s, "A"),
		ast.NewUnparsedOperator(s, ast.OpOpenedGroup),
	}
	err := &diag.Error{Kind: diag.KindParse, Reason: diag.ReasonTerminatorNotEndingRule, Stack: stack}
	d := err.Diagnostic()

	var found bool
	for _, ls := range d.LabeledSpans {
		if ls.Label == "Possible unclosed bracket" {
			found = true
		}
	}
	require.True(t, found)
}

func TestTerminatorNotEndingRuleFlagsMissingIdentifier(t *testing.T) {
	s := span.Span{}
	stack := []ast.Expr{
		ast.NewLiteral(s, "x"),
		ast.NewUnparsedOperator(s, ast.OpEquals),
	}
	err := &diag.Error{Kind: diag.KindParse, Reason: diag.ReasonTerminatorNotEndingRule, Stack: stack}
	d := err.Diagnostic()

	var found bool
	for _, ls := range d.LabeledSpans {
		if ls.Label == "Expected identifier, found Literal" {
			found = true
		}
	}
	require.True(t, found)
}

func TestErrorEquality(t *testing.T) {
	a := &diag.Error{Kind: diag.KindLex, Input: "x", Offset: 1}
	b := &diag.Error{Kind: diag.KindLex, Input: "x", Offset: 1}
	c := &diag.Error{Kind: diag.KindLex, Input: "x", Offset: 2}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	empty1 := &diag.Error{Kind: diag.KindEmptyInput}
	empty2 := &diag.Error{Kind: diag.KindEmptyInput}
	require.True(t, empty1.Equal(empty2))
	require.False(t, a.Equal(empty1))
}

func TestFormatterProducesCaretUnderline(t *testing.T) {
	source := "A = @;"
	err := &diag.Error{Kind: diag.KindLex, Input: source, Offset: 4}
	d := err.Diagnostic()
	d.Primary.StartLine = 1
	d.Primary.StartCol = 5

	out := diag.NewFormatter().Format(source, d)
	require.Contains(t, out, "^")
	require.Contains(t, out, "A = @;")
}
