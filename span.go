package ebnf

import "github.com/ejmount/ebnf-toolkit/internal/span"

// Span is a half-open source range, carrying 1-based line/column
// coordinates for both endpoints alongside the raw rune offsets.
type Span = span.Span

// UnionSpans returns the span covering every span in spans: the
// smallest Start and the largest End, each keeping its own span's
// line/column coordinates. It panics if spans is empty.
func UnionSpans(spans []Span) Span { return span.Union(spans) }
