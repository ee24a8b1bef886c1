// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/rpntools/internal/fileutil"
	"github.com/erraggy/rpntools/symboltable"
)

// NewLogicTable creates a word-based symbol table for boolean expressions:
// "(" and ")" group, "not" is unary, "and" and "or" are binary.
func NewLogicTable() *symboltable.Table {
	return &symboltable.Table{
		OpenParens:  []string{"("},
		CloseParens: []string{")"},
		Unary:       []string{"not"},
		Binary:      []string{"and", "or"},
	}
}

// NewBracketTable creates a table with two kinds of group delimiters and
// arithmetic-looking operators.
func NewBracketTable() *symboltable.Table {
	return &symboltable.Table{
		OpenParens:  []string{"(", "["},
		CloseParens: []string{")", "]"},
		Unary:       []string{"-"},
		Binary:      []string{"+", "*"},
	}
}

// WriteTempTable marshals a symbol table in the given format and writes it to
// a temporary file with the matching extension.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempTable(t *testing.T, table *symboltable.Table, format symboltable.Format) string {
	t.Helper()

	data, err := symboltable.Marshal(table, format)
	if err != nil {
		t.Fatalf("Failed to marshal symbol table to %s: %v", format, err)
	}
	return WriteTempFile(t, "symbols."+string(format), string(data))
}

// WriteTempFile writes content to a file named name in a temporary directory.
// Returns the path to the temporary file.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
