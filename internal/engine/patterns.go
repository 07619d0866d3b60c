package engine

import (
	"github.com/dlclark/regexp2"

	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/span"
)

// pattern pairs a shape-string regex, anchored to match only at the end
// of the string, with the reducer it triggers. regexp2 is used in place
// of the stdlib regexp/RE2 engine so the table can grow lookaround or
// backreference patterns later without a second engine swap; today's
// eight patterns don't strictly need it.
type pattern struct {
	name    string
	re      *regexp2.Regexp
	reducer func([]ast.Expr) ast.Expr
}

func compile(p string) *regexp2.Regexp {
	return regexp2.MustCompile(p+"$", regexp2.None)
}

// patternTable is the fixed, ordered list of (pattern, reducer) pairs
// from spec section 4.3. "[A-Za-z]" stands for any non-operator shape
// code; operator codes are the literal punctuation characters.
var patternTable = []pattern{
	{"choice", compile(`[A-Za-z](\|[A-Za-z])+`), reduceChoice},
	{"option-bracket", compile(`\[[A-Za-z]+\]`), reduceFiltered(func(s span.Span, body []ast.Expr) ast.Expr {
		return ast.NewOptional(s, body)
	})},
	{"option-postfix", compile(`[A-Za-z]\?`), reduceFiltered(func(s span.Span, body []ast.Expr) ast.Expr {
		return ast.NewOptional(s, body)
	})},
	{"repeat-star", compile(`[A-Za-z]\*`), reduceRepeat},
	{"repeat-plus", compile(`[A-Za-z]\+`), reduceRepeat},
	{"repeat-brace", compile(`\{[A-Za-z]\}`), reduceRepeat},
	{"group", compile(`\([A-Za-z]+\)`), reduceFiltered(func(s span.Span, body []ast.Expr) ast.Expr {
		return ast.NewGroup(s, body)
	})},
	{"rule", compile(`N=[A-Za-z]+;`), reduceRule},
}

func spanOf(nodes []ast.Expr) span.Span {
	return span.Union(spansOf(nodes))
}

func spansOf(nodes []ast.Expr) []span.Span {
	out := make([]span.Span, len(nodes))
	for i, n := range nodes {
		out[i] = n.Span()
	}
	return out
}

// filterOperators drops every UnparsedOperator from nodes, keeping
// order. Every reducer relies on the invariant that at least one
// non-operator node survives the filter.
func filterOperators(nodes []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		if _, isOp := n.(*ast.UnparsedOperator); !isOp {
			out = append(out, n)
		}
	}
	return out
}

// reduceFiltered builds a reducer with the common shape described in
// spec section 4.3: compute the union span over every matched node,
// keep only the non-operator children, and hand them to build.
func reduceFiltered(build func(span.Span, []ast.Expr) ast.Expr) func([]ast.Expr) ast.Expr {
	return func(nodes []ast.Expr) ast.Expr {
		s := spanOf(nodes)
		body := filterOperators(nodes)
		return build(s, body)
	}
}

func reduceChoice(nodes []ast.Expr) ast.Expr {
	s := spanOf(nodes)
	body := filterOperators(nodes)
	return ast.NewChoice(s, body)
}

// reduceRepeat backs the `*`, `+`, and `{A}` patterns; the trailing
// operator (the last matched node) decides one_needed: `*` is
// zero-or-more, `+` and `}` are one-or-more.
func reduceRepeat(nodes []ast.Expr) ast.Expr {
	s := spanOf(nodes)
	body := filterOperators(nodes)

	last, ok := nodes[len(nodes)-1].(*ast.UnparsedOperator)
	if !ok {
		panic("engine: repeat pattern did not end in an operator")
	}
	oneNeeded := last.Op == ast.OpRepeat || last.Op == ast.OpClosedBrace
	return ast.NewRepetition(s, body, oneNeeded)
}

// reduceRule backs the `Nonterminal = body ;` pattern. The first
// filtered node supplies the rule's name and must be a Nonterminal
// (the pattern's leading `N` guarantees this, since only a Nonterminal
// has that shape code; diagnostics for a non-identifier before `=` are
// produced by the TerminatorNotEndingRule path when the rule pattern
// never matches at all).
func reduceRule(nodes []ast.Expr) ast.Expr {
	s := spanOf(nodes)
	body := filterOperators(nodes)

	name, ok := body[0].(*ast.Nonterminal)
	if !ok {
		panic("engine: rule pattern matched without a leading Nonterminal")
	}
	return ast.NewRuleExpr(s, ast.Rule{Name: name.Name, Body: body[1:]})
}
