// Package config loads the optional dialect/tracing configuration file
// that tunes the parsing toolkit's behavior, following the teacher
// pack's .scaf.yaml convention (github.com/rlch/scaf's config.go) for
// its shape and file-search logic.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ejmount/ebnf-toolkit/internal/ast"
	"github.com/ejmount/ebnf-toolkit/internal/lexer"
)

// ErrConfigNotFound is returned when no config file is found walking up
// from the search directory.
var ErrConfigNotFound = errors.New("ebnf: no config file found")

// DefaultConfigNames are the filenames searched for, in order.
var DefaultConfigNames = []string{".ebnf.yaml", ".ebnf.yml", "ebnf.yaml", "ebnf.yml"}

// Config holds the dialect toggles and tooling options a caller may set
// to tune parsing without changing code.
type Config struct {
	// AllowSlashAlternation treats `/` as a synonym for `|`, matching the
	// lexer's built-in leniency; set to false to reject it instead.
	AllowSlashAlternation bool `yaml:"allow_slash_alternation"`

	// MaxNestingDepth bounds how deeply Group/Optional/Repetition/Choice
	// may nest in a parsed result; the *WithConfig entry points reject a
	// result that nests deeper once parsing has finished. Zero means
	// unbounded.
	MaxNestingDepth int `yaml:"max_nesting_depth,omitempty"`

	// Trace is loaded from the config file, but no parsing entry point
	// reads it; shift/reduce step logging is enabled only by passing a
	// logger to ParseExprTraced.
	Trace bool `yaml:"trace,omitempty"`
}

// Default returns the configuration used when no file is found: slash
// alternation allowed, no depth limit, tracing off.
func Default() Config {
	return Config{AllowSlashAlternation: true}
}

// Load finds and parses the nearest config file walking up from dir.
func Load(dir string) (Config, error) {
	path, err := Find(dir)
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// Find searches for a config file starting at dir and walking up to the
// filesystem root.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for d := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(d)
		if parent == d {
			return "", ErrConfigNotFound
		}
		d = parent
	}
}

// LoadFile parses the config file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateTokens rejects a `/`-spelled Alternation token when
// AllowSlashAlternation is false. A no-op when the dialect allows it,
// which is the lexer's unconditional default behavior.
func (c Config) ValidateTokens(tokens []lexer.Token) error {
	if c.AllowSlashAlternation {
		return nil
	}
	for _, t := range tokens {
		if t.Type == lexer.Alternation && t.Raw == "/" {
			return fmt.Errorf("ebnf: '/' alternation disallowed by configuration at offset %d", t.Span.Start)
		}
	}
	return nil
}

// ValidateDepth rejects a rule body whose Choice/Optional/Repetition/Group
// nesting exceeds MaxNestingDepth. A no-op when MaxNestingDepth is zero.
func (c Config) ValidateDepth(body []ast.Expr) error {
	if c.MaxNestingDepth <= 0 {
		return nil
	}
	if d := maxDepth(body); d > c.MaxNestingDepth {
		return fmt.Errorf("ebnf: nesting depth %d exceeds configured maximum %d", d, c.MaxNestingDepth)
	}
	return nil
}

func depth(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.Choice:
		return 1 + maxDepth(n.Body)
	case *ast.Optional:
		return 1 + maxDepth(n.Body)
	case *ast.Repetition:
		return 1 + maxDepth(n.Body)
	case *ast.Group:
		return 1 + maxDepth(n.Body)
	default:
		return 0
	}
}

func maxDepth(body []ast.Expr) int {
	m := 0
	for _, e := range body {
		if d := depth(e); d > m {
			m = d
		}
	}
	return m
}
