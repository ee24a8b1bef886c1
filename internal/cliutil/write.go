// Package cliutil provides output helpers shared by the rpntools command line
// and its MCP server.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w.
// A failed write is reported on stderr and otherwise ignored.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Count formats n with the singular or plural form of noun.
//
//	Count(1, "expression", "expressions") // "1 expression"
//	Count(3, "expression", "expressions") // "3 expressions"
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
