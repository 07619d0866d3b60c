// Package engine implements the shift/reduce parser: a stack of Expr
// nodes kept in lockstep with a symbolic "shape string", reduced by a
// fixed, ordered table of regular-expression patterns.
package engine

import (
	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/lexer"
	"github.com/ejmount/ebnf-toolkit/internal/tracelog"
)

// Stack holds the two sequences the engine keeps synchronized: Nodes is
// the real Expr values, shape is one byte per node (the value returned
// by Expr.ShapeCode), used as the text the pattern table matches
// against.
type Stack struct {
	Nodes []ast.Expr
	shape []byte

	log *tracelog.Logger
}

// NewStack returns an empty stack. log may be nil.
func NewStack(log *tracelog.Logger) *Stack {
	return &Stack{log: log}
}

// Shape returns the current shape string.
func (s *Stack) Shape() string { return string(s.shape) }

// Len reports how many nodes are currently on the stack.
func (s *Stack) Len() int { return len(s.Nodes) }

// Top returns the topmost node, or nil if the stack is empty.
func (s *Stack) Top() ast.Expr {
	if len(s.Nodes) == 0 {
		return nil
	}
	return s.Nodes[len(s.Nodes)-1]
}

// Push appends a node and its shape code.
func (s *Stack) Push(n ast.Expr) {
	code := n.ShapeCode()
	s.Nodes = append(s.Nodes, n)
	s.shape = append(s.shape, code[0])
	s.log.Shift(string(s.shape), code)
}

// Pop removes and returns the topmost node.
func (s *Stack) Pop() ast.Expr {
	n := s.Nodes[len(s.Nodes)-1]
	s.Nodes = s.Nodes[:len(s.Nodes)-1]
	s.shape = s.shape[:len(s.shape)-1]
	return n
}

// DropMany removes the last n nodes and returns them in their original
// (bottom-to-top) order.
func (s *Stack) DropMany(n int) []ast.Expr {
	cut := len(s.Nodes) - n
	dropped := append([]ast.Expr(nil), s.Nodes[cut:]...)
	s.Nodes = s.Nodes[:cut]
	s.shape = s.shape[:cut]
	return dropped
}

// PushToken converts a lexed token into the Expr (or UnparsedOperator)
// it represents and pushes it, per spec section 4.3's token-to-node
// injection rules.
func (s *Stack) PushToken(tok lexer.Token) {
	s.Push(tokenToNode(tok))
}

func tokenToNode(tok lexer.Token) ast.Expr {
	sp := tok.Span
	switch tok.Type {
	case lexer.Identifier:
		return ast.NewNonterminal(sp, tok.Value)
	case lexer.Literal:
		return ast.NewLiteral(sp, tok.Value)
	case lexer.Regex:
		return ast.NewRegexExpr(sp, tok.Value)
	case lexer.Equals:
		return ast.NewUnparsedOperator(sp, ast.OpEquals)
	case lexer.Termination:
		return ast.NewUnparsedOperator(sp, ast.OpTerminator)
	case lexer.Alternation:
		return ast.NewUnparsedOperator(sp, ast.OpAlternation)
	case lexer.Optional:
		return ast.NewUnparsedOperator(sp, ast.OpOptional)
	case lexer.Kleene:
		return ast.NewUnparsedOperator(sp, ast.OpKleene)
	case lexer.Repeat:
		return ast.NewUnparsedOperator(sp, ast.OpRepeat)
	case lexer.OpeningGroup:
		return ast.NewUnparsedOperator(sp, ast.OpOpenedGroup)
	case lexer.ClosingGroup:
		return ast.NewUnparsedOperator(sp, ast.OpClosedGroup)
	case lexer.OpeningSquare:
		return ast.NewUnparsedOperator(sp, ast.OpOpenedSquare)
	case lexer.ClosingSquare:
		return ast.NewUnparsedOperator(sp, ast.OpClosedSquare)
	case lexer.OpeningBrace:
		return ast.NewUnparsedOperator(sp, ast.OpOpenedBrace)
	case lexer.ClosingBrace:
		return ast.NewUnparsedOperator(sp, ast.OpClosedBrace)
	default:
		panic("engine: unhandled token type " + string(tok.Type))
	}
}

// tokenShapeCode returns the single shape character a token would
// contribute without constructing the node. The driving loop does not
// call it; it consults no lookahead.
func tokenShapeCode(t lexer.TokenType) byte {
	switch t {
	case lexer.Identifier:
		return 'N'
	case lexer.Literal:
		return 'L'
	case lexer.Regex:
		return 'R'
	case lexer.Equals:
		return '='
	case lexer.Termination:
		return ';'
	case lexer.Alternation:
		return '|'
	case lexer.Optional:
		return '?'
	case lexer.Kleene:
		return '*'
	case lexer.Repeat:
		return '+'
	case lexer.OpeningGroup:
		return '('
	case lexer.ClosingGroup:
		return ')'
	case lexer.OpeningSquare:
		return '['
	case lexer.ClosingSquare:
		return ']'
	case lexer.OpeningBrace:
		return '{'
	case lexer.ClosingBrace:
		return '}'
	default:
		panic("engine: unhandled token type " + string(t))
	}
}
