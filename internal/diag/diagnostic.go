// Package diag defines the structured diagnostic model and the source
// formatter that renders it as human-readable text with carets, adapted
// from the teacher's internal/diag package.
package diag

import "github.com/ejmount/ebnf-toolkit/internal/span"

// Stage identifies which phase of the pipeline produced the diagnostic.
type Stage string

const (
	StageLexer Stage = "lexer"
	StageParse Stage = "parse"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	CodeLexUnrecognized         Code = "LEX_UNRECOGNIZED_INPUT"
	CodeEmptyInput              Code = "EMPTY_INPUT"
	CodeExhaustedInput          Code = "PARSE_EXHAUSTED_INPUT"
	CodeTerminatorNotEndingRule Code = "PARSE_TERMINATOR_NOT_ENDING_RULE"
)

// LabeledSpan attaches a short label to a secondary span, used to
// annotate the stuck operators and nodes surrounding a parse failure.
type LabeledSpan struct {
	Span    span.Span
	Label   string
	Primary bool
}

// Diagnostic is a single structured error or note surfaced to end
// users. Message is the short one-line summary; LabeledSpans/Notes/Help
// carry the detail the Formatter expands into a full report.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string

	Primary      span.Span
	LabeledSpans []LabeledSpan
	Notes        []string
	Help         string
}
