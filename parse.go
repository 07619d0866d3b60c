// Package ebnf parses EBNF grammar text into expression trees, rules,
// and grammars: lex, then drive a shift/reduce engine over the token
// stream, then simplify the result into canonical form.
package ebnf

import (
	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/config"
	"github.com/ejmount/ebnf-toolkit/internal/diag"
	"github.com/ejmount/ebnf-toolkit/internal/engine"
	"github.com/ejmount/ebnf-toolkit/internal/lexer"
	"github.com/ejmount/ebnf-toolkit/internal/simplify"
	"github.com/ejmount/ebnf-toolkit/internal/tracelog"
)

// Config is the dialect/tracing toggle structure consulted by the
// *WithConfig parsing entry points. The zero Config rejects `/`
// alternation and enforces no nesting limit; use config.Default() (or
// Load a YAML file) for the lexer's own lenient defaults.
type Config = config.Config

// Lex tokenizes input in full. On failure the returned error is an
// *Error of KindLex carrying the offset of the first unrecognized
// character.
func Lex(input string) ([]Token, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, lexErrorToDiag(input, err)
	}
	return tokens, nil
}

func lexErrorToDiag(input string, err error) *Error {
	if ue, ok := err.(*lexer.UnrecognizedError); ok {
		return &diag.Error{Kind: diag.KindLex, Input: input, Offset: ue.Offset}
	}
	return &diag.Error{Kind: diag.KindLex, Input: input}
}

// ParseExpr lexes input and drives the shift/reduce engine, returning
// the single simplified Expr it reduces to. Empty input (no tokens at
// all) is an empty-input error. Input that leaves zero or more than one
// non-operator node on the stack is a parse error carrying the surviving
// stack: exhausted-input when the last token is not `;`, and
// terminator-not-ending-rule when it is.
func ParseExpr(input string) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &diag.Error{Kind: diag.KindEmptyInput}
	}

	res := engine.Drive(tokens, nil)
	survivors := nonOperatorNodes(res.Stack.Nodes)
	if len(survivors) == 1 {
		return simplify.Expr(survivors[0]), nil
	}
	return nil, engine.ErrFromResult(input, tokens, res)
}

// ParseRule lexes input and drives the shift/reduce engine, returning
// the first Rule produced. Empty input is an empty-input error; input
// that never completes a rule is a parse error.
func ParseRule(input string) (Rule, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Rule{}, err
	}
	if len(tokens) == 0 {
		return Rule{}, &diag.Error{Kind: diag.KindEmptyInput}
	}

	res := engine.Drive(tokens, nil)
	if len(res.Rules) > 0 {
		return res.Rules[0], nil
	}
	return Rule{}, engine.ErrFromResult(input, tokens, res)
}

// ParseGrammar lexes input and drives the shift/reduce engine,
// collecting every Rule produced into a Grammar, merging rules that
// share a name.
func ParseGrammar(input string) (Grammar, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Grammar{}, err
	}
	if len(tokens) == 0 {
		return Grammar{}, &diag.Error{Kind: diag.KindEmptyInput}
	}

	res := engine.Drive(tokens, nil)
	if len(res.Rules) == 0 {
		return Grammar{}, engine.ErrFromResult(input, tokens, res)
	}
	return ast.NewGrammar(res.Rules), nil
}

// ParseExprWithConfig behaves like ParseExpr but first validates the
// token stream and resulting tree against cfg, rejecting `/`
// alternation and/or excessive nesting depth per its settings.
func ParseExprWithConfig(input string, cfg Config) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &diag.Error{Kind: diag.KindEmptyInput}
	}
	if err := cfg.ValidateTokens(tokens); err != nil {
		return nil, err
	}

	res := engine.Drive(tokens, nil)
	survivors := nonOperatorNodes(res.Stack.Nodes)
	if len(survivors) != 1 {
		return nil, engine.ErrFromResult(input, tokens, res)
	}

	e := simplify.Expr(survivors[0])
	if err := cfg.ValidateDepth([]ast.Expr{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseRuleWithConfig behaves like ParseRule but first validates the
// token stream and the resulting rule body against cfg.
func ParseRuleWithConfig(input string, cfg Config) (Rule, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Rule{}, err
	}
	if len(tokens) == 0 {
		return Rule{}, &diag.Error{Kind: diag.KindEmptyInput}
	}
	if err := cfg.ValidateTokens(tokens); err != nil {
		return Rule{}, err
	}

	res := engine.Drive(tokens, nil)
	if len(res.Rules) == 0 {
		return Rule{}, engine.ErrFromResult(input, tokens, res)
	}

	rule := res.Rules[0]
	if err := cfg.ValidateDepth(rule.Body); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// ParseGrammarWithConfig behaves like ParseGrammar but validates the
// token stream and every produced rule's body against cfg.
func ParseGrammarWithConfig(input string, cfg Config) (Grammar, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Grammar{}, err
	}
	if len(tokens) == 0 {
		return Grammar{}, &diag.Error{Kind: diag.KindEmptyInput}
	}
	if err := cfg.ValidateTokens(tokens); err != nil {
		return Grammar{}, err
	}

	res := engine.Drive(tokens, nil)
	if len(res.Rules) == 0 {
		return Grammar{}, engine.ErrFromResult(input, tokens, res)
	}
	for _, r := range res.Rules {
		if err := cfg.ValidateDepth(r.Body); err != nil {
			return Grammar{}, err
		}
	}
	return ast.NewGrammar(res.Rules), nil
}

// ParseExprTraced behaves like ParseExpr but logs every shift and reduce
// step through l, useful when diagnosing why a grammar doesn't parse as
// expected. l may be nil. It is the only traced entry point.
func ParseExprTraced(input string, l *tracelog.Logger) (Expr, error) {
	return parseExprWithLogger(input, l)
}

func parseExprWithLogger(input string, l *tracelog.Logger) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &diag.Error{Kind: diag.KindEmptyInput}
	}

	res := engine.Drive(tokens, l)
	survivors := nonOperatorNodes(res.Stack.Nodes)
	if len(survivors) == 1 {
		return simplify.Expr(survivors[0]), nil
	}
	return nil, engine.ErrFromResult(input, tokens, res)
}

func nonOperatorNodes(nodes []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		if _, isOp := n.(*ast.UnparsedOperator); !isOp {
			out = append(out, n)
		}
	}
	return out
}
