// Package span defines the source-location type shared by every other
// package in this module: tokens, Expr nodes, and diagnostics all carry
// a Span.
package span

// Span is a half-open range within a single source buffer, together
// with 1-based line/column coordinates for both endpoints. Start and End
// count runes (code points) from the start of the input, not bytes, and
// columns count runes from the start of the line, starting at 1.
type Span struct {
	Start int
	End   int

	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Dummy is the sentinel span used for synthetic nodes produced transiently
// during simplification. It is replaced by a real union span before the
// rewrite that introduced it returns.
var Dummy = Span{}

// Union returns the span covering every span in spans: the minimum start
// (keeping that span's start coordinates) and the maximum end (keeping
// that span's end coordinates). Union panics if spans is empty; every
// caller in this module only invokes it on a non-empty child list.
func Union(spans []Span) Span {
	if len(spans) == 0 {
		panic("span: Union of empty slice")
	}
	result := spans[0]
	for _, s := range spans[1:] {
		if s.Start < result.Start {
			result.Start = s.Start
			result.StartLine = s.StartLine
			result.StartCol = s.StartCol
		}
		if s.End > result.End {
			result.End = s.End
			result.EndLine = s.EndLine
			result.EndCol = s.EndCol
		}
	}
	return result
}
