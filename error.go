package ebnf

import "github.com/ejmount/ebnf-toolkit/internal/diag"

// Error is the structured value every parsing entry point returns on
// failure: a lex error, an empty-input error, or a parse error carrying
// the surviving shift/reduce stack. Use errors.As to recover it from the
// error returned by Lex/ParseExpr/ParseRule/ParseGrammar.
type Error = diag.Error

// Formatter renders an Error's Diagnostic against the original source
// text as a caret-annotated report.
type Formatter = diag.Formatter

// NewFormatter constructs a Formatter.
func NewFormatter() *Formatter { return diag.NewFormatter() }

// Diagnostic is the structured, renderable form of an Error.
type Diagnostic = diag.Diagnostic
