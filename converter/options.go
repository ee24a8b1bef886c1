package converter

import (
	"fmt"
	"strings"

	"github.com/erraggy/rpntools/internal/options"
	"github.com/erraggy/rpntools/rpnerrors"
	"github.com/erraggy/rpntools/symboltable"
)

// Result contains the result of a conversion along with depth and role statistics
type Result[T comparable] struct {
	// Tokens is the infix input, one symbol per element
	Tokens []T
	// Postfix is the converted output
	Postfix []T
	// MaxDepth is the deepest parenthesis nesting seen (0 for ungrouped input)
	MaxDepth int
	// Stats counts the symbols of the conversion by role
	Stats Stats
}

// ConversionResult is the result of converting a string expression
type ConversionResult = Result[string]

// Stats counts symbols by role.
type Stats struct {
	// Values is the number of operands in the output
	Values int
	// UnaryOperators is the number of unary operators in the output
	UnaryOperators int
	// BinaryOperators is the number of binary operators in the output
	BinaryOperators int
	// Groups is the number of parenthesis pairs removed
	Groups int
}

// Expression returns the postfix output joined with single spaces.
func (r *Result[T]) Expression() string {
	parts := make([]string, len(r.Postfix))
	for i, sym := range r.Postfix {
		parts[i] = fmt.Sprint(sym)
	}
	return strings.Join(parts, " ")
}

// ConvertDetailed converts tokens like Convert and also reports nesting depth
// and role statistics.
func (c *Converter[T]) ConvertDetailed(tokens []T) (*Result[T], error) {
	postfix, stats, err := c.run(tokens)
	if err != nil {
		return nil, err
	}

	result := &Result[T]{
		Tokens:   tokens,
		Postfix:  postfix,
		MaxDepth: stats.deepest,
		Stats:    Stats{Groups: stats.groups},
	}
	for _, sym := range postfix {
		switch c.classifier.Role(sym) {
		case RoleUnary:
			result.Stats.UnaryOperators++
		case RoleBinary:
			result.Stats.BinaryOperators++
		default:
			result.Stats.Values++
		}
	}
	return result, nil
}

// NewFromTable validates table and builds a string Converter from it.
func NewFromTable(table *symboltable.Table) (*Converter[string], error) {
	if table == nil {
		return nil, &rpnerrors.ConfigError{Option: "symbols", Message: "symbol table cannot be nil"}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return New(table.OpenParens, table.CloseParens, table.Unary, table.Binary), nil
}

// ConvertString converts a whitespace-separated expression using the default
// symbol table.
func ConvertString(expression string) (*ConversionResult, error) {
	return ConvertWithOptions(WithExpression(expression))
}

// Option is a function that configures a conversion operation.
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation.
type convertConfig struct {
	// Input source (exactly one must be set)
	expression *string
	tokens     []string
	hasTokens  bool

	// Symbol table source (at most one may be set)
	table     *symboltable.Table
	tableFile *string

	maxDepth  int
	maxTokens int
}

// WithExpression specifies a whitespace-separated infix expression as the input source.
func WithExpression(expression string) Option {
	return func(cfg *convertConfig) error {
		cfg.expression = &expression
		return nil
	}
}

// WithTokens specifies already-split infix tokens as the input source.
func WithTokens(tokens []string) Option {
	return func(cfg *convertConfig) error {
		cfg.tokens = tokens
		cfg.hasTokens = true
		return nil
	}
}

// WithSymbolTable specifies the symbol table. The default table is used when
// no table option is given.
func WithSymbolTable(table *symboltable.Table) Option {
	return func(cfg *convertConfig) error {
		if table == nil {
			return &rpnerrors.ConfigError{Option: "symbols", Message: "symbol table cannot be nil"}
		}
		cfg.table = table
		return nil
	}
}

// WithSymbolTableFile loads the symbol table from a YAML, JSON or TOML file.
func WithSymbolTableFile(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &rpnerrors.ConfigError{Option: "symbols", Message: "symbol table path cannot be empty"}
		}
		cfg.tableFile = &path
		return nil
	}
}

// WithMaxDepth limits parenthesis nesting. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(cfg *convertConfig) error {
		if depth < 0 {
			return &rpnerrors.ConfigError{Option: "max-depth", Value: depth, Message: "must not be negative"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxTokens rejects inputs longer than limit tokens. Zero means unlimited.
func WithMaxTokens(limit int) Option {
	return func(cfg *convertConfig) error {
		if limit < 0 {
			return &rpnerrors.ConfigError{Option: "max-tokens", Value: limit, Message: "must not be negative"}
		}
		cfg.maxTokens = limit
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithExpression or WithTokens)",
		"must specify exactly one input source",
		cfg.expression != nil, cfg.hasTokens,
	); err != nil {
		return nil, err
	}

	if cfg.table != nil && cfg.tableFile != nil {
		return nil, &rpnerrors.ConfigError{Option: "symbols", Message: "specify at most one symbol table source"}
	}

	return cfg, nil
}

// ConvertWithOptions converts a string expression using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithExpression("( A | B ) ^ C"),
//	    converter.WithMaxDepth(64),
//	)
//	fmt.Println(result.Expression()) // A B | C ^
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	table := cfg.table
	if cfg.tableFile != nil {
		table, err = symboltable.Load(*cfg.tableFile)
		if err != nil {
			return nil, err
		}
	}
	if table == nil {
		table = symboltable.Default()
	}

	c, err := NewFromTable(table)
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	c.MaxDepth = cfg.maxDepth

	tokens := cfg.tokens
	if cfg.expression != nil {
		tokens = strings.Fields(*cfg.expression)
	}
	if cfg.maxTokens > 0 && len(tokens) > cfg.maxTokens {
		return nil, &rpnerrors.ResourceLimitError{
			ResourceType: "token_count",
			Limit:        int64(cfg.maxTokens),
			Actual:       int64(len(tokens)),
		}
	}

	return c.ConvertDetailed(tokens)
}
