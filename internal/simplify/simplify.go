// Package simplify applies the two bottom-up rewrites every freshly
// reduced Rule goes through before it is handed to a caller: collapsing
// single-child Group wrappers, and flattening nested Choice nodes into
// one flat alternation.
package simplify

import (
	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/span"
)

// Rule runs both passes over rule's body in place and returns it.
func Rule(rule ast.Rule) ast.Rule {
	wrapper := ast.NewRuleExpr(span.Dummy, rule)
	ast.ApplyReplacement(wrapper, flattenGroups)
	ast.ApplyReplacement(wrapper, flattenChoices)
	return wrapper.Rule
}

// Expr runs both passes over a single top-level node, the form
// Expr.new needs once the shift/reduce engine has left exactly one
// surviving node on the stack.
func Expr(e ast.Expr) ast.Expr {
	rule := Rule(ast.Rule{Body: []ast.Expr{e}})
	return rule.Body[0]
}

// flattenGroups implements the first simplification pass:
//
//   - a Group with exactly one child is replaced by that child outright.
//   - an Optional or Repetition whose single child is itself a Group is
//     rewritten to adopt that Group's children directly, dropping the
//     redundant Group wrapper (its own single-ness was already handled
//     above, so this only fires when the inner Group has 2+ children).
func flattenGroups(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Group:
		if len(n.Body) == 1 {
			return n.Body[0]
		}
	case *ast.Optional:
		if len(n.Body) == 1 {
			if g, ok := n.Body[0].(*ast.Group); ok {
				return ast.NewOptional(span.Union(spansOf(g.Body)), g.Body)
			}
		}
	case *ast.Repetition:
		if len(n.Body) == 1 {
			if g, ok := n.Body[0].(*ast.Group); ok {
				return ast.NewRepetition(span.Union(spansOf(g.Body)), g.Body, n.OneNeeded)
			}
		}
	}
	return nil
}

// flattenChoices implements the second pass: a Choice with any direct
// Choice child absorbs that child's alternatives in place, so `A | (B |
// C)`'s parse tree ends up as one three-way Choice rather than a nested
// pair.
func flattenChoices(e ast.Expr) ast.Expr {
	choice, ok := e.(*ast.Choice)
	if !ok {
		return nil
	}

	hasNestedChoice := false
	for _, c := range choice.Body {
		if _, ok := c.(*ast.Choice); ok {
			hasNestedChoice = true
			break
		}
	}
	if !hasNestedChoice {
		return nil
	}

	outputs := make([]ast.Expr, 0, len(choice.Body))
	for _, c := range choice.Body {
		if inner, ok := c.(*ast.Choice); ok {
			outputs = append(outputs, inner.Body...)
		} else {
			outputs = append(outputs, c)
		}
	}
	return ast.NewChoice(span.Union(spansOf(outputs)), outputs)
}

func spansOf(body []ast.Expr) []span.Span {
	out := make([]span.Span, len(body))
	for i, c := range body {
		out[i] = c.Span()
	}
	return out
}
