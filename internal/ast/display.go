package ast

import "strings"

// writeSlice renders each child wrapped in parentheses, joined by sep,
// the whole further wrapped in one outer pair of parentheses: the shape
// every Group-like body (Group, Choice, Optional, Repetition) shares.
func writeSlice(b *strings.Builder, body []Expr, sep string) {
	b.WriteByte('(')
	for i, child := range body {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteByte('(')
		b.WriteString(child.String())
		b.WriteByte(')')
	}
	b.WriteByte(')')
}

func (n *Nonterminal) String() string { return n.Name }

func (n *Literal) String() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(n.Str)
	b.WriteByte('"')
	return b.String()
}

func (n *RegexExpr) String() string {
	var b strings.Builder
	b.WriteString("#'")
	b.WriteString(n.Pattern)
	b.WriteByte('\'')
	return b.String()
}

func (n *Group) String() string {
	var b strings.Builder
	writeSlice(&b, n.Body, "")
	return b.String()
}

func (n *Choice) String() string {
	var b strings.Builder
	writeSlice(&b, n.Body, "|")
	return b.String()
}

func (n *Optional) String() string {
	var b strings.Builder
	b.WriteByte('[')
	writeSlice(&b, n.Body, "")
	b.WriteByte(']')
	return b.String()
}

func (n *Repetition) String() string {
	var b strings.Builder
	if n.OneNeeded {
		b.WriteByte('{')
		writeSlice(&b, n.Body, "")
		b.WriteByte('}')
	} else {
		writeSlice(&b, n.Body, "")
		b.WriteByte('*')
	}
	return b.String()
}

func (n *UnparsedOperator) String() string { return n.Op.Repr() }

func (n *RuleExpr) String() string { return n.Rule.String() }

// String renders a Rule as `name =<body>;` with each body child
// appended directly, matching the teacher's terse Display conventions.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(" =")
	for _, child := range r.Body {
		b.WriteString(child.String())
	}
	b.WriteByte(';')
	return b.String()
}
