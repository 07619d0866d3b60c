package ast

import "github.com/ejmount/ebnf-toolkit/internal/span"

// Grammar is a named collection of rules. Unlike the Rust reference
// (which stores rules in a HashMap with no defined iteration order),
// Grammar tracks the order rule names were first declared, so
// FirstDanglingReference is deterministic.
type Grammar struct {
	rules map[string]Rule
	order []string
}

// NewGrammar folds a sequence of parsed rules into a Grammar, merging
// any rules that share a name: if either side's body is exactly a
// single top-level Choice, it is unwrapped to its children first; the
// (possibly unwrapped) bodies are concatenated and re-wrapped in one new
// Choice spanning the union of every combined child. Merges happen left
// to right, so N same-named rules fold pairwise in declaration order.
func NewGrammar(rules []Rule) Grammar {
	g := Grammar{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		if existing, ok := g.rules[r.Name]; ok {
			g.rules[r.Name] = Rule{
				Name: r.Name,
				Body: mergeDuplicateRule(existing.Body, r.Body),
			}
			continue
		}
		g.rules[r.Name] = r
		g.order = append(g.order, r.Name)
	}
	return g
}

func unwrapChoiceItems(body []Expr) []Expr {
	if len(body) == 1 {
		if choice, ok := body[0].(*Choice); ok {
			return choice.Body
		}
	}
	return body
}

func mergeDuplicateRule(oldBody, newBody []Expr) []Expr {
	old := unwrapChoiceItems(oldBody)
	new_ := unwrapChoiceItems(newBody)

	body := make([]Expr, 0, len(old)+len(new_))
	body = append(body, old...)
	body = append(body, new_...)

	return []Expr{NewChoice(span.Union(spansOf(body)), body)}
}

// Get looks up a rule by name.
func (g Grammar) Get(name string) (Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// MustGet looks up a rule by name, panicking if it is absent; the
// Go analogue of the reference implementation's indexing operator.
func (g Grammar) MustGet(name string) Rule {
	r, ok := g.rules[name]
	if !ok {
		panic("ebnf: no such rule: " + name)
	}
	return r
}

// Len reports how many distinct rule names this grammar holds.
func (g Grammar) Len() int { return len(g.order) }

// Names returns the rule names in declaration order.
func (g Grammar) Names() []string {
	return append([]string(nil), g.order...)
}

// FirstDanglingReference scans rules in declaration order and returns
// the first (ruleName, referencedName) pair where referencedName has no
// corresponding rule in g. It returns ok=false if every reference
// resolves.
func (g Grammar) FirstDanglingReference() (ruleName, referencedName string, ok bool) {
	for _, name := range g.order {
		rule := g.rules[name]
		for _, ref := range rule.Nonterminals() {
			if _, present := g.rules[ref]; !present {
				return rule.Name, ref, true
			}
		}
	}
	return "", "", false
}
