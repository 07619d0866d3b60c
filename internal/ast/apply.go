package ast

import "github.com/ejmount/ebnf-toolkit/internal/span"

// ApplyReplacement recurses into e's children first (recomputing e's
// span as the union of the possibly-rewritten children), then calls fn
// on e itself; if fn returns a non-nil replacement, that replacement is
// returned instead of e. This is the generic bottom-up rewrite primitive
// the simplifier's two passes are built from.
func ApplyReplacement(e Expr, fn func(Expr) Expr) Expr {
	switch n := e.(type) {
	case *Choice:
		rewriteChildren(n.Body, fn)
		n.span = span.Union(spansOf(n.Body))
	case *Optional:
		rewriteChildren(n.Body, fn)
		n.span = span.Union(spansOf(n.Body))
	case *Repetition:
		rewriteChildren(n.Body, fn)
		n.span = span.Union(spansOf(n.Body))
	case *Group:
		rewriteChildren(n.Body, fn)
		n.span = span.Union(spansOf(n.Body))
	case *RuleExpr:
		rewriteChildren(n.Rule.Body, fn)
		n.span = span.Union(spansOf(n.Rule.Body))

	case *Literal, *Nonterminal, *RegexExpr, *UnparsedOperator:
		// leaves: no children to rewrite
	}

	if res := fn(e); res != nil {
		return res
	}
	return e
}

func rewriteChildren(body []Expr, fn func(Expr) Expr) {
	for i, c := range body {
		body[i] = ApplyReplacement(c, fn)
	}
}

func spansOf(body []Expr) []span.Span {
	out := make([]span.Span, len(body))
	for i, c := range body {
		out[i] = c.Span()
	}
	return out
}
