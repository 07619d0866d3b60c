package ast

// Rule is a single production: a name and an ordered body, semantically
// equivalent to a Group.
type Rule struct {
	Name string
	Body []Expr
}

// Nonterminals returns every Nonterminal name reachable from r's body,
// in breadth-first order: siblings at the same depth are collected
// before descending into the first sibling's children. This matches the
// Rust reference's VecDeque-based traversal, which is directly
// observable in the order of the returned slice.
func (r Rule) Nonterminals() []string {
	var names []string
	queue := append([]Expr(nil), r.Body...)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		switch n := node.(type) {
		case *RegexExpr, *Literal, *UnparsedOperator:
			// no nonterminals here
		case *Nonterminal:
			names = append(names, n.Name)
		case *Choice:
			queue = append(queue, n.Body...)
		case *Optional:
			queue = append(queue, n.Body...)
		case *Repetition:
			queue = append(queue, n.Body...)
		case *Group:
			queue = append(queue, n.Body...)
		case *RuleExpr:
			queue = append(queue, n.Rule.Body...)
		}
	}
	return names
}

// IsRecursive reports whether r's own body refers to r by name.
// References that reach r only through other rules are not followed.
func (r Rule) IsRecursive() bool {
	for _, name := range r.Nonterminals() {
		if name == r.Name {
			return true
		}
	}
	return false
}

// ContainsAnyNonterminal reports whether r's body refers to any rule at
// all, r itself included.
func (r Rule) ContainsAnyNonterminal() bool {
	for _, child := range r.Body {
		if ContainsNonterminal(child) {
			return true
		}
	}
	return false
}
