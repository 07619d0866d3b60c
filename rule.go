package ebnf

import "github.com/ejmount/ebnf-toolkit/internal/ast"

// Rule is a single production: a name and an ordered body, semantically
// equivalent to a Group.
type Rule = ast.Rule

// Grammar is a named collection of rules, built by merging any rules
// that share a name (see NewGrammar for the merge rule).
type Grammar = ast.Grammar

// NewGrammar folds a sequence of parsed rules into a Grammar, merging
// duplicate names.
func NewGrammar(rules []Rule) Grammar { return ast.NewGrammar(rules) }
