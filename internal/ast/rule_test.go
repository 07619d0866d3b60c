package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejmount/ebnf-toolkit/internal/span"
)

func TestNonterminalsBreadthFirst(t *testing.T) {
	s := span.Span{}
	body := []Expr{
		NewGroup(s, []Expr{
			NewNonterminal(s, "A"),
			NewNonterminal(s, "B"),
		}),
		NewNonterminal(s, "C"),
	}
	r := Rule{Name: "", Body: body}
	require.Equal(t, []string{"C", "A", "B"}, r.Nonterminals())
}

func TestIsRecursive(t *testing.T) {
	s := span.Span{}
	r := Rule{Name: "Foo", Body: []Expr{NewNonterminal(s, "Foo")}}
	require.True(t, r.IsRecursive())

	r2 := Rule{Name: "Foo", Body: []Expr{NewNonterminal(s, "Bar")}}
	require.False(t, r2.IsRecursive())
}

func TestContainsAnyNonterminal(t *testing.T) {
	s := span.Span{}
	r := Rule{Name: "Foo", Body: []Expr{NewLiteral(s, "x")}}
	require.False(t, r.ContainsAnyNonterminal())

	r2 := Rule{Name: "Foo", Body: []Expr{NewOptional(s, []Expr{NewNonterminal(s, "Bar")})}}
	require.True(t, r2.ContainsAnyNonterminal())
}
