// Package symboltable describes which string symbols act as parentheses and
// operators, and loads those descriptions from YAML, JSON or TOML files.
package symboltable

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/erraggy/rpntools/rpnerrors"
)

// Table lists the symbols registered under each role. Symbols not listed are
// operands.
type Table struct {
	OpenParens  []string `yaml:"open"   json:"open"   toml:"open"`
	CloseParens []string `yaml:"close"  json:"close"  toml:"close"`
	Unary       []string `yaml:"unary"  json:"unary"  toml:"unary"`
	Binary      []string `yaml:"binary" json:"binary" toml:"binary"`
}

// Default returns the built-in table: "(" and ")" for grouping, "!" as the
// unary operator and "+", "^", "|" as binary operators.
func Default() *Table {
	return &Table{
		OpenParens:  []string{"("},
		CloseParens: []string{")"},
		Unary:       []string{"!"},
		Binary:      []string{"+", "^", "|"},
	}
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	return &Table{
		OpenParens:  slices.Clone(t.OpenParens),
		CloseParens: slices.Clone(t.CloseParens),
		Unary:       slices.Clone(t.Unary),
		Binary:      slices.Clone(t.Binary),
	}
}

// Validate checks that t can build a converter.
//
// Each symbol must be non-empty, free of whitespace, and listed once across
// all roles. Parentheses are optional, but open and close symbols must be
// registered together.
func (t *Table) Validate() error {
	seen := make(map[string]string)
	for _, group := range t.groups() {
		for i, sym := range group.symbols {
			option := fmt.Sprintf("%s[%d]", group.name, i)
			if sym == "" {
				return &rpnerrors.ConfigError{Option: option, Message: "symbol cannot be empty"}
			}
			if strings.IndexFunc(sym, unicode.IsSpace) >= 0 {
				return &rpnerrors.ConfigError{Option: option, Value: sym, Message: "symbol cannot contain whitespace"}
			}
			if prev, ok := seen[sym]; ok {
				return &rpnerrors.ConfigError{
					Option:  option,
					Value:   sym,
					Message: fmt.Sprintf("symbol already registered in %s", prev),
				}
			}
			seen[sym] = group.name
		}
	}
	if len(t.OpenParens) == 0 && len(t.CloseParens) == 0 && len(t.Unary) == 0 && len(t.Binary) == 0 {
		return &rpnerrors.ConfigError{Option: "symbols", Message: "table registers no symbols"}
	}
	if (len(t.OpenParens) == 0) != (len(t.CloseParens) == 0) {
		return &rpnerrors.ConfigError{Option: "symbols", Message: "open and close parentheses must be registered together"}
	}
	return nil
}

// Len returns the total number of registered symbols.
func (t *Table) Len() int {
	return len(t.OpenParens) + len(t.CloseParens) + len(t.Unary) + len(t.Binary)
}

type roleGroup struct {
	name    string
	symbols []string
}

func (t *Table) groups() []roleGroup {
	return []roleGroup{
		{"open", t.OpenParens},
		{"close", t.CloseParens},
		{"unary", t.Unary},
		{"binary", t.Binary},
	}
}
