package engine

import (
	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/diag"
	"github.com/ejmount/ebnf-toolkit/internal/lexer"
	"github.com/ejmount/ebnf-toolkit/internal/simplify"
	"github.com/ejmount/ebnf-toolkit/internal/tracelog"
)

// Result is the outcome of driving the shift/reduce engine to
// completion: every fully-reduced rule encountered, in the order its
// closing semicolon was consumed, plus whatever remains on the stack
// (empty when every token was consumed into a rule; a parsed expression
// stays on it as its single node).
type Result struct {
	Rules []ast.Rule
	Stack *Stack
}

// Drive pushes tokens one at a time, running the pattern table to a
// fixpoint after every push, per spec section 4.3's driving algorithm.
// Deliberately no lookahead is consulted: a pattern that matches fires
// immediately, even if one more token would have let a different,
// larger pattern match instead. This is why the choice pattern is
// allowed to leave behind a chain of nested Choice nodes (each new
// alternative wrapping the Choice built so far, as in
// Choice(Choice(A, B), C)) rather than one flat n-ary alternation -- the simplifier's flattening
// pass is the single source of truth for that shape, not the engine.
func Drive(tokens []lexer.Token, log *tracelog.Logger) Result {
	s := NewStack(log)
	var rules []ast.Rule

	for _, tok := range tokens {
		s.PushToken(tok)
		reduceUntilFixpoint(s, log)

		if re, ok := s.Top().(*ast.RuleExpr); ok {
			s.Pop()
			rules = append(rules, simplify.Rule(re.Rule))
		}
	}

	return Result{Rules: rules, Stack: s}
}

// reduceUntilFixpoint repeatedly scans the pattern table in declaration
// order, applying the first reducer that matches the current shape's
// tail and restarting the scan from the top. It stops once a full pass
// over the table commits nothing.
func reduceUntilFixpoint(s *Stack, log *tracelog.Logger) {
	for {
		if !tryReduceOnce(s, log) {
			return
		}
	}
}

// tryReduceOnce performs one top-to-bottom scan of the pattern table and
// applies the first matching reducer, reporting whether it committed a
// reduction.
func tryReduceOnce(s *Stack, log *tracelog.Logger) bool {
	shape := s.Shape()

	for _, p := range patternTable {
		m, err := p.re.FindStringMatch(shape)
		if err != nil || m == nil {
			continue
		}

		nodes := s.DropMany(m.Length)
		replacement := p.reducer(nodes)
		s.Push(replacement)
		log.Reduce(p.name, shape[m.Index:m.Index+m.Length], s.Shape())
		return true
	}

	return false
}

// ErrFromResult classifies a Drive result that did not fully consume its
// input into the distinct diag.Error described in spec section 7.
func ErrFromResult(input string, tokens []lexer.Token, res Result) *diag.Error {
	stack := res.Stack.Nodes

	lastWasTerminator := len(tokens) > 0 && tokens[len(tokens)-1].Type == lexer.Termination
	if !lastWasTerminator {
		offset := len(input)
		if len(tokens) > 0 {
			offset = tokens[len(tokens)-1].Span.End
		}
		return &diag.Error{
			Kind:                   diag.KindParse,
			Reason:                 diag.ReasonExhaustedInput,
			Input:                  input,
			Offset:                 offset,
			Stack:                  stack,
			CompletesWithSemicolon: wouldCompleteWithSemicolon(res.Stack),
		}
	}

	return &diag.Error{
		Kind:   diag.KindParse,
		Reason: diag.ReasonTerminatorNotEndingRule,
		Input:  input,
		Offset: tokens[len(tokens)-1].Span.Start,
		Stack:  stack,
	}
}

// wouldCompleteWithSemicolon reports whether appending a synthetic `;`
// to the stack's current shape would match the "rule" pattern, used to
// give the "missing semicolon" hint priority over the generic
// exhausted-input message.
func wouldCompleteWithSemicolon(s *Stack) bool {
	candidate := s.Shape() + ";"
	m, err := patternTable[len(patternTable)-1].re.FindStringMatch(candidate)
	return err == nil && m != nil
}
