package diag

import (
	"fmt"
	"strings"

	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/span"
)

// Kind identifies which branch of the error tagged union an Error is.
type Kind int

const (
	KindLex Kind = iota
	KindEmptyInput
	KindParse
)

// Reason is the FailureReason attached to a KindParse error.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonExhaustedInput
	ReasonTerminatorNotEndingRule
)

// Error is the structured diagnostic value every parsing entry point
// returns on failure: a tagged union of LexError, EmptyInput, and
// ParseError from spec section 7, collapsed into one Go type so callers
// can use errors.As against a single concrete type.
type Error struct {
	Kind   Kind
	Input  string
	Offset int

	Reason Reason
	Stack  []ast.Expr // surviving stack, bottom to top; only set for KindParse

	// CompletesWithSemicolon is set by engine.ErrFromResult when the
	// final stack's shape with a `;` appended matches the rule pattern:
	// the ExhaustedInput message then reads "Missing semicolon here"
	// instead of the generic message.
	CompletesWithSemicolon bool
}

func (e *Error) Error() string {
	return e.Diagnostic().Message
}

// Equal implements the equality rules from spec section 7: EmptyInput
// equals itself; two LexErrors are equal iff (Input, Offset) match; two
// ParseErrors are equal iff (Input, Offset) match; errors of different
// kinds are never equal.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case KindEmptyInput:
		return true
	case KindLex, KindParse:
		return e.Input == other.Input && e.Offset == other.Offset
	default:
		return false
	}
}

// Diagnostic renders e into the structured, stage-agnostic Diagnostic
// the Formatter consumes.
func (e *Error) Diagnostic() Diagnostic {
	switch e.Kind {
	case KindEmptyInput:
		return Diagnostic{
			Stage:    StageParse,
			Severity: SeverityError,
			Code:     CodeEmptyInput,
			Message:  "input was empty",
		}
	case KindLex:
		return e.lexDiagnostic()
	case KindParse:
		return e.parseDiagnostic()
	default:
		return Diagnostic{Severity: SeverityError, Message: "unknown error"}
	}
}

func (e *Error) lexDiagnostic() Diagnostic {
	end := e.Offset + 1
	primary := span.Span{Start: e.Offset, End: end}
	d := Diagnostic{
		Stage:    StageLexer,
		Severity: SeverityError,
		Code:     CodeLexUnrecognized,
		Message:  fmt.Sprintf("unrecognized character at index %d", e.Offset),
		Primary:  primary,
	}

	runes := []rune(e.Input)
	if e.Offset >= 0 && e.Offset < len(runes) {
		if ch := runes[e.Offset]; ch == '\'' || ch == '"' {
			d.Notes = append(d.Notes, "Is this the beginning of an unclosed string?")
		}
	}
	return d
}

func (e *Error) parseDiagnostic() Diagnostic {
	d := Diagnostic{
		Stage:    StageParse,
		Severity: SeverityError,
		Primary:  span.Span{Start: e.Offset, End: e.Offset + 1},
	}

	switch e.Reason {
	case ReasonExhaustedInput:
		d.Code = CodeExhaustedInput
		if e.CompletesWithSemicolon {
			d.Message = "Missing semicolon here"
		} else {
			d.Message = fmt.Sprintf("Unexpected end of input at index %d", e.Offset)
		}
		d.Notes = append(d.Notes, renderStack(e.Stack))

	case ReasonTerminatorNotEndingRule:
		d.Code = CodeTerminatorNotEndingRule
		d.Message = "Rule ending here did not parse successfully"
		d.LabeledSpans = append(d.LabeledSpans, LabeledSpan{
			Span: d.Primary, Label: "Rule ending here did not parse successfully", Primary: true,
		})

		for i, node := range e.Stack {
			op, ok := node.(*ast.UnparsedOperator)
			if !ok {
				continue
			}
			d.LabeledSpans = append(d.LabeledSpans, LabeledSpan{
				Span:  node.Span(),
				Label: operatorHint(op.Op),
			})

			if op.Op == ast.OpEquals {
				if prec := precedingNode(e.Stack, i); prec != nil {
					if _, isNonterminal := prec.(*ast.Nonterminal); !isNonterminal {
						d.LabeledSpans = append(d.LabeledSpans, LabeledSpan{
							Span:  prec.Span(),
							Label: fmt.Sprintf("Expected identifier, found %s", kindName(prec)),
						})
					}
				}
			}
		}

		d.Notes = append(d.Notes, renderStack(e.Stack))

	default:
		d.Code = CodeExhaustedInput
		d.Message = "parse error"
	}

	return d
}

func precedingNode(stack []ast.Expr, index int) ast.Expr {
	if index == 0 {
		return nil
	}
	return stack[index-1]
}

func operatorHint(op ast.Operator) string {
	switch {
	case op.IsOpeningBracket():
		return "Possible unclosed bracket"
	case op.IsPostfix():
		return "Could not apply to preceding term"
	default:
		return "Operator not understood"
	}
}

func kindName(e ast.Expr) string {
	switch e.(type) {
	case *ast.Literal:
		return "Literal"
	case *ast.Nonterminal:
		return "Nonterminal"
	case *ast.RegexExpr:
		return "Regex"
	case *ast.Choice:
		return "Choice"
	case *ast.Optional:
		return "Optional"
	case *ast.Repetition:
		return "Repetition"
	case *ast.Group:
		return "Group"
	case *ast.UnparsedOperator:
		return "operator"
	case *ast.RuleExpr:
		return "Rule"
	default:
		return "unknown"
	}
}

// renderStack prints the surviving parse stack most-recent-on-top, one
// node per line, for attachment as a diagnostic note.
func renderStack(stack []ast.Expr) string {
	var b strings.Builder
	b.WriteString("remaining stack:")
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "\n  %s", stack[i])
	}
	return b.String()
}
