package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/diag"
	"github.com/ejmount/ebnf-toolkit/internal/engine"
	"github.com/ejmount/ebnf-toolkit/internal/lexer"
)

func lex(t *testing.T, input string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Lex(input)
	require.NoError(t, err)
	return toks
}

func TestDriveSingleLiteralRule(t *testing.T) {
	toks := lex(t, `A = "x";`)
	res := engine.Drive(toks, nil)
	require.Empty(t, res.Stack.Nodes)
	require.Len(t, res.Rules, 1)
	require.Equal(t, "A", res.Rules[0].Name)
	require.Len(t, res.Rules[0].Body, 1)
	lit, ok := res.Rules[0].Body[0].(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "x", lit.Str)
}

func TestDriveFlattensChainedAlternation(t *testing.T) {
	toks := lex(t, `A = "x" | "y" | "z";`)
	res := engine.Drive(toks, nil)
	require.Len(t, res.Rules, 1)

	choice, ok := res.Rules[0].Body[0].(*ast.Choice)
	require.True(t, ok, "expected a single flattened Choice, got %T", res.Rules[0].Body[0])
	require.Len(t, choice.Body, 3)
}

func TestDriveGroupAndOptional(t *testing.T) {
	toks := lex(t, `A = ("x" "y")?;`)
	res := engine.Drive(toks, nil)
	require.Len(t, res.Rules, 1)

	opt, ok := res.Rules[0].Body[0].(*ast.Optional)
	require.True(t, ok)
	// simplification drops the redundant Group wrapper, so the Optional
	// directly owns both literals.
	require.Len(t, opt.Body, 2)
}

func TestDriveRepetitionOneNeeded(t *testing.T) {
	toks := lex(t, `A = "x"+;`)
	res := engine.Drive(toks, nil)
	rep, ok := res.Rules[0].Body[0].(*ast.Repetition)
	require.True(t, ok)
	require.True(t, rep.OneNeeded)
}

func TestDriveKleeneNotOneNeeded(t *testing.T) {
	toks := lex(t, `A = "x"*;`)
	res := engine.Drive(toks, nil)
	rep, ok := res.Rules[0].Body[0].(*ast.Repetition)
	require.True(t, ok)
	require.False(t, rep.OneNeeded)
}

func TestDriveMultipleRules(t *testing.T) {
	toks := lex(t, `A = "x"; B = "y";`)
	res := engine.Drive(toks, nil)
	require.Len(t, res.Rules, 2)
	require.Equal(t, "A", res.Rules[0].Name)
	require.Equal(t, "B", res.Rules[1].Name)
}

func TestDriveUnclosedGroupLeavesStackNonEmpty(t *testing.T) {
	toks := lex(t, `A = ("x";`)
	res := engine.Drive(toks, nil)
	require.Empty(t, res.Rules)
	require.NotEmpty(t, res.Stack.Nodes)
}

func TestErrFromResultExhaustedInputWithoutSemicolon(t *testing.T) {
	toks := lex(t, `A = "x"`)
	res := engine.Drive(toks, nil)
	err := engine.ErrFromResult(`A = "x"`, toks, res)
	require.NotNil(t, err)
	require.True(t, err.CompletesWithSemicolon)
}

func TestErrFromResultTerminatorNotEndingRule(t *testing.T) {
	toks := lex(t, `A = ("x";`)
	res := engine.Drive(toks, nil)
	err := engine.ErrFromResult(`A = ("x";`, toks, res)
	require.NotNil(t, err)
	require.Equal(t, diag.ReasonTerminatorNotEndingRule, err.Reason)
}
