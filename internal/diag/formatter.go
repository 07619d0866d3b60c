package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Formatter renders a Diagnostic against the original source text as a
// Rust-style report: a header, an annotated source snippet with caret
// underlines, and trailing notes. Adapted from the teacher's
// internal/diag.Formatter, simplified to a single in-memory source
// buffer (this module never reads files) and to return the rendered
// text rather than writing straight to stderr.
type Formatter struct{}

// NewFormatter constructs a Formatter. It carries no state; the method
// exists for symmetry with the teacher's constructor and to leave room
// for future caching without changing call sites.
func NewFormatter() *Formatter { return &Formatter{} }

// Format renders d against source, the exact string the error was
// produced from.
func (f *Formatter) Format(source string, d Diagnostic) string {
	var b strings.Builder
	f.writeHeader(&b, d)

	spans := d.LabeledSpans
	if len(spans) == 0 {
		spans = []LabeledSpan{{Span: d.Primary, Primary: true}}
	}
	f.writeSnippet(&b, source, spans)
	f.writeTrailer(&b, d)
	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, d Diagnostic) {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	if d.Code != "" {
		fmt.Fprintf(b, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(b, "%s: %s\n", severity, d.Message)
	}
}

func (f *Formatter) writeSnippet(b *strings.Builder, source string, spans []LabeledSpan) {
	lines := strings.Split(source, "\n")

	byLine := make(map[int][]LabeledSpan)
	for _, sp := range spans {
		if sp.Span.StartLine > 0 {
			byLine[sp.Span.StartLine] = append(byLine[sp.Span.StartLine], sp)
		}
	}
	if len(byLine) == 0 {
		return
	}

	lineNums := make([]int, 0, len(byLine))
	for ln := range byLine {
		lineNums = append(lineNums, ln)
	}
	sort.Ints(lineNums)

	width := len(fmt.Sprintf("%d", lineNums[len(lineNums)-1]))
	fmt.Fprintf(b, "   %s|\n", strings.Repeat(" ", width+1))

	for _, ln := range lineNums {
		content := ""
		if ln-1 < len(lines) {
			content = lines[ln-1]
		}
		fmt.Fprintf(b, " %*d | %s\n", width, ln, content)
		f.writeUnderline(b, width, content, byLine[ln])
	}
	fmt.Fprintf(b, "   %s|\n", strings.Repeat(" ", width+1))
}

// writeUnderline draws carets ('^' for a primary span, '~' for
// secondary spans) beneath the source line, measuring column positions
// in grapheme clusters via uniseg so multi-byte identifiers still align.
func (f *Formatter) writeUnderline(b *strings.Builder, lineNumWidth int, content string, spans []LabeledSpan) {
	clusterCount := uniseg.GraphemeClusterCount(content)
	underline := make([]byte, clusterCount+1)
	for i := range underline {
		underline[i] = ' '
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Span.StartCol < spans[j].Span.StartCol })

	mark := func(sp LabeledSpan, ch byte, overwrite bool) {
		start := sp.Span.StartCol - 1
		if start < 0 {
			start = 0
		}
		length := sp.Span.End - sp.Span.Start
		if length < 1 {
			length = 1
		}
		for i := start; i < start+length && i < len(underline); i++ {
			if overwrite || underline[i] == ' ' {
				underline[i] = ch
			}
		}
	}

	for _, sp := range spans {
		if sp.Primary {
			mark(sp, '^', true)
		}
	}
	for _, sp := range spans {
		if !sp.Primary {
			mark(sp, '~', false)
		}
	}

	rightmost := -1
	for i := len(underline) - 1; i >= 0; i-- {
		if underline[i] != ' ' {
			rightmost = i
			break
		}
	}
	if rightmost == -1 {
		return
	}

	fmt.Fprintf(b, "   %s| %s", strings.Repeat(" ", lineNumWidth), string(underline))

	var primaryLabel string
	var secondary []string
	for _, sp := range spans {
		if sp.Label == "" {
			continue
		}
		if sp.Primary {
			primaryLabel = sp.Label
		} else {
			secondary = append(secondary, sp.Label)
		}
	}
	if primaryLabel != "" {
		fmt.Fprintf(b, " %s", primaryLabel)
	}
	b.WriteByte('\n')

	for _, label := range secondary {
		fmt.Fprintf(b, "   %s|%s %s\n", strings.Repeat(" ", lineNumWidth), strings.Repeat(" ", rightmost+2), label)
	}
}

func (f *Formatter) writeTrailer(b *strings.Builder, d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(b, "\n  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(b, "\nhelp: %s\n", d.Help)
	}
}
