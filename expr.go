package ebnf

import "github.com/ejmount/ebnf-toolkit/internal/ast"

// Expr is implemented by every node kind that can appear in a parsed
// tree: Literal, Nonterminal, Regex, Choice, Optional, Repetition, and
// Group.
type Expr = ast.Expr

// Literal is a terminal string matched verbatim.
type Literal = ast.Literal

// Nonterminal references another rule by name.
type Nonterminal = ast.Nonterminal

// Regex is a regular-expression terminal.
type Regex = ast.RegexExpr

// Choice is an ordered, n-ary alternation; once simplified, a Choice
// never has another Choice as a direct child.
type Choice = ast.Choice

// Optional wraps a body that may be absent.
type Optional = ast.Optional

// Repetition wraps a body that repeats; OneNeeded distinguishes
// one-or-more from zero-or-more.
type Repetition = ast.Repetition

// Group is an ordered concatenation of two or more expressions.
type Group = ast.Group

// NewLiteral, NewNonterminal, ... construct the corresponding node kind
// at the given span. These are rarely needed outside this module's own
// parsing pipeline, but are exposed for callers building or rewriting
// trees programmatically.
var (
	NewLiteral     = ast.NewLiteral
	NewNonterminal = ast.NewNonterminal
	NewRegex       = ast.NewRegexExpr
	NewChoice      = ast.NewChoice
	NewOptional    = ast.NewOptional
	NewRepetition  = ast.NewRepetition
	NewGroup       = ast.NewGroup
)

// Walk traverses node depth-first, calling fn on each node reached. If
// fn returns false, Walk does not descend into that node's children.
func Walk(node Expr, fn func(Expr) bool) { ast.Walk(node, fn) }

// ApplyReplacement recurses into node's children first, recomputing its
// span from the (possibly rewritten) children, then calls fn on node
// itself; a non-nil return from fn replaces node in its parent.
func ApplyReplacement(node Expr, fn func(Expr) Expr) Expr {
	return ast.ApplyReplacement(node, fn)
}
