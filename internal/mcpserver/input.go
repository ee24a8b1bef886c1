package mcpserver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/erraggy/rpntools/converter"
	"github.com/erraggy/rpntools/symboltable"
)

// expressionInput is the expression argument shared by the convert and
// classify tools. Exactly one of Expression or Tokens must be set.
type expressionInput struct {
	Expression string        `json:"expression,omitempty" jsonschema:"Infix expression with whitespace-separated symbols"`
	Tokens     []string      `json:"tokens,omitempty"     jsonschema:"Infix expression already split into symbols"`
	Symbols    *symbolsInput `json:"symbols,omitempty"    jsonschema:"Inline symbol table for this call. The server table is used when omitted"`
}

// symbolsInput is an inline symbol table.
type symbolsInput struct {
	Open   []string `json:"open,omitempty"   jsonschema:"Symbols that open a group"`
	Close  []string `json:"close,omitempty"  jsonschema:"Symbols that close a group"`
	Unary  []string `json:"unary,omitempty"  jsonschema:"Prefix operators taking one operand"`
	Binary []string `json:"binary,omitempty" jsonschema:"Infix operators taking two operands"`
}

func (s *symbolsInput) table() *symboltable.Table {
	return &symboltable.Table{
		OpenParens:  s.Open,
		CloseParens: s.Close,
		Unary:       s.Unary,
		Binary:      s.Binary,
	}
}

// tokens returns the input split into symbols.
func (in expressionInput) tokens() ([]string, error) {
	hasExpression := strings.TrimSpace(in.Expression) != ""
	hasTokens := len(in.Tokens) > 0
	switch {
	case hasExpression && hasTokens:
		return nil, errors.New("provide only one of expression or tokens")
	case hasExpression:
		return strings.Fields(in.Expression), nil
	case hasTokens:
		return in.Tokens, nil
	default:
		return nil, errors.New("exactly one of expression or tokens must be provided")
	}
}

// resolveTable returns the table for a call and a label naming its source:
// the inline table, the RPNTOOLS_SYMBOLS file, or the default table.
func resolveTable(inline *symbolsInput) (*symboltable.Table, string, error) {
	if inline != nil {
		t := inline.table()
		if err := t.Validate(); err != nil {
			return nil, "", err
		}
		return t, "inline", nil
	}
	if cfg.SymbolsFile != "" {
		t, err := tableCache.load(cfg.SymbolsFile)
		if err != nil {
			return nil, "", err
		}
		return t, "file", nil
	}
	return symboltable.Default(), "default", nil
}

// converterOptions translates the input into converter options carrying the
// server limits.
func (in expressionInput) converterOptions() ([]converter.Option, error) {
	tokens, err := in.tokens()
	if err != nil {
		return nil, err
	}
	table, _, err := resolveTable(in.Symbols)
	if err != nil {
		return nil, err
	}
	return []converter.Option{
		converter.WithTokens(tokens),
		converter.WithSymbolTable(table),
		converter.WithMaxDepth(cfg.MaxDepth),
		converter.WithMaxTokens(cfg.MaxTokens),
	}, nil
}

// tableCacheStore keeps the last loaded symbol table file, keyed by absolute
// path and modification time so an edited file is reloaded.
type tableCacheStore struct {
	mu    sync.Mutex
	key   string
	table *symboltable.Table
}

var tableCache = &tableCacheStore{}

// load returns a copy of the table at path, reading the file only when it
// changed since the previous call.
func (c *tableCacheStore) load(path string) (*symboltable.Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving symbol table path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading symbol table: %w", err)
	}
	key := fmt.Sprintf("%s:%d:%d", abs, info.ModTime().UnixNano(), info.Size())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key == key && c.table != nil {
		return c.table.Clone(), nil
	}

	t, err := symboltable.Load(abs)
	if err != nil {
		return nil, err
	}
	c.key, c.table = key, t
	return t.Clone(), nil
}
