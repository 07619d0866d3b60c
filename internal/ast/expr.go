// Package ast defines the Expr tagged union that every layer above the
// lexer operates on: the shift/reduce engine builds it, the simplifier
// rewrites it, and the public API exposes it.
package ast

import "github.com/ejmount/ebnf-toolkit/internal/span"

// Expr is implemented by every node kind that can appear in a parsed
// tree, plus UnparsedOperator which is legal only on the live
// shift/reduce stack. Callers outside this module never see an
// UnparsedOperator: it is filtered out by every reducer before a node is
// handed up.
type Expr interface {
	Span() span.Span
	SetSpan(span.Span)
	// ShapeCode returns the character the shift/reduce engine appends to
	// the stack's shape string when this node is pushed.
	ShapeCode() string
	// String renders the node per the formatter rules in spec section 4.6.
	String() string

	exprNode()
}

// Literal is a terminal string matched verbatim.
type Literal struct {
	span span.Span
	Str  string
}

func NewLiteral(s span.Span, str string) *Literal { return &Literal{span: s, Str: str} }
func (n *Literal) Span() span.Span                { return n.span }
func (n *Literal) SetSpan(s span.Span)             { n.span = s }
func (n *Literal) ShapeCode() string               { return "L" }
func (*Literal) exprNode()                         {}

// Nonterminal references another rule by name.
type Nonterminal struct {
	span span.Span
	Name string
}

func NewNonterminal(s span.Span, name string) *Nonterminal { return &Nonterminal{span: s, Name: name} }
func (n *Nonterminal) Span() span.Span                     { return n.span }
func (n *Nonterminal) SetSpan(s span.Span)                  { n.span = s }
func (n *Nonterminal) ShapeCode() string                    { return "N" }
func (*Nonterminal) exprNode()                              {}

// RegexExpr is a regular-expression terminal.
type RegexExpr struct {
	span    span.Span
	Pattern string
}

func NewRegexExpr(s span.Span, pattern string) *RegexExpr { return &RegexExpr{span: s, Pattern: pattern} }
func (n *RegexExpr) Span() span.Span                      { return n.span }
func (n *RegexExpr) SetSpan(s span.Span)                   { n.span = s }
func (n *RegexExpr) ShapeCode() string                     { return "R" }
func (*RegexExpr) exprNode()                               {}

// Choice is an ordered, n-ary alternation. It is never nested directly
// (a Choice is never a direct child of a Choice) once simplification has
// run.
type Choice struct {
	span span.Span
	Body []Expr
}

func NewChoice(s span.Span, body []Expr) *Choice { return &Choice{span: s, Body: body} }
func (n *Choice) Span() span.Span                { return n.span }
func (n *Choice) SetSpan(s span.Span)             { n.span = s }
func (n *Choice) ShapeCode() string               { return "C" }
func (*Choice) exprNode()                         {}

// Optional wraps a body that may be absent.
type Optional struct {
	span span.Span
	Body []Expr
}

func NewOptional(s span.Span, body []Expr) *Optional { return &Optional{span: s, Body: body} }
func (n *Optional) Span() span.Span                  { return n.span }
func (n *Optional) SetSpan(s span.Span)               { n.span = s }
func (n *Optional) ShapeCode() string                 { return "O" }
func (*Optional) exprNode()                           {}

// Repetition wraps a body that repeats. OneNeeded distinguishes one-or-
// more (true, `+`/`{}`) from zero-or-more (false, `*`).
type Repetition struct {
	span      span.Span
	Body      []Expr
	OneNeeded bool
}

func NewRepetition(s span.Span, body []Expr, oneNeeded bool) *Repetition {
	return &Repetition{span: s, Body: body, OneNeeded: oneNeeded}
}
func (n *Repetition) Span() span.Span    { return n.span }
func (n *Repetition) SetSpan(s span.Span) { n.span = s }
func (n *Repetition) ShapeCode() string  { return "E" } // distinct from Regex's "R"
func (*Repetition) exprNode()           {}

// Group is an ordered concatenation; simplification elides a Group that
// would otherwise wrap a single child.
type Group struct {
	span span.Span
	Body []Expr
}

func NewGroup(s span.Span, body []Expr) *Group { return &Group{span: s, Body: body} }
func (n *Group) Span() span.Span               { return n.span }
func (n *Group) SetSpan(s span.Span)            { n.span = s }
func (n *Group) ShapeCode() string              { return "G" }
func (*Group) exprNode()                        {}

// UnparsedOperator is an operator token that has not yet been consumed
// by a reduction. It exists only on the live shift/reduce stack; no
// function in this module's public surface returns a tree containing
// one.
type UnparsedOperator struct {
	span span.Span
	Op   Operator
}

func NewUnparsedOperator(s span.Span, op Operator) *UnparsedOperator {
	return &UnparsedOperator{span: s, Op: op}
}
func (n *UnparsedOperator) Span() span.Span    { return n.span }
func (n *UnparsedOperator) SetSpan(s span.Span) { n.span = s }
func (n *UnparsedOperator) ShapeCode() string  { return string(n.Op) }
func (*UnparsedOperator) exprNode()            {}

// RuleExpr wraps a Rule value as an Expr, produced by the "rule" reducer
// and immediately popped off the stack by the driving loop.
type RuleExpr struct {
	span span.Span
	Rule Rule
}

func NewRuleExpr(s span.Span, rule Rule) *RuleExpr { return &RuleExpr{span: s, Rule: rule} }
func (n *RuleExpr) Span() span.Span                { return n.span }
func (n *RuleExpr) SetSpan(s span.Span)             { n.span = s }
func (n *RuleExpr) ShapeCode() string               { return "U" }
func (*RuleExpr) exprNode()                         {}

// ContainsNonterminal reports whether e or any of its descendants is a
// Nonterminal. Used by Rule.ContainsAnyNonterminal.
func ContainsNonterminal(e Expr) bool {
	found := false
	Walk(e, func(n Expr) bool {
		if _, ok := n.(*Nonterminal); ok {
			found = true
			return false
		}
		return true
	})
	return found
}
