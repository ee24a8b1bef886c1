// Package commands provides CLI command handlers for rpntools.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/rpntools/symboltable"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrConversionFailed is returned when at least one expression failed to
// convert. Details have already been reported to the user.
var ErrConversionFailed = errors.New("conversion failed")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// LoadSymbolTable loads the table at path, or returns the default table when
// path is empty.
func LoadSymbolTable(path string) (*symboltable.Table, error) {
	if path == "" {
		return symboltable.Default(), nil
	}
	return symboltable.Load(path)
}

// FormatInputPath returns a display-friendly name for an input file.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// SourceLine is one expression read from an input file.
type SourceLine struct {
	// Number is the 1-based line number
	Number int
	// Tokens is the line split on whitespace
	Tokens []string
}

// ReadExpressions reads one expression per line. Blank lines and lines
// starting with '#' are skipped.
func ReadExpressions(r io.Reader) ([]SourceLine, error) {
	var lines []SourceLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, SourceLine{Number: number, Tokens: strings.Fields(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expressions: %w", err)
	}
	return lines, nil
}

// OpenInput opens path for reading, or stdin for StdinFilePath.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinFilePath {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path) //nolint:gosec // G304: path is an explicit CLI argument
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}
