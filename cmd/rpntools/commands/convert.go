package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/rpntools/converter"
	"github.com/erraggy/rpntools/internal/cliutil"
	"github.com/erraggy/rpntools/rpnerrors"
)

// DefaultJobs is the default number of concurrent conversions in file mode.
const DefaultJobs = 4

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	File     string
	Symbols  string
	MaxDepth int
	Jobs     int
	Format   string
	Quiet    bool
	Verbose  bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.File, "f", "", "read one expression per line from a file ('-' for stdin)")
	fs.StringVar(&flags.File, "file", "", "read one expression per line from a file ('-' for stdin)")
	fs.StringVar(&flags.Symbols, "s", "", "symbol table file (YAML, JSON or TOML)")
	fs.StringVar(&flags.Symbols, "symbols", "", "symbol table file (YAML, JSON or TOML)")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "maximum parenthesis nesting depth (0 = unlimited)")
	fs.IntVar(&flags.Jobs, "j", DefaultJobs, "number of concurrent conversions in file mode")
	fs.IntVar(&flags.Jobs, "jobs", DefaultJobs, "number of concurrent conversions in file mode")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output postfix expressions, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output postfix expressions, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log debug details to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rpntools convert [flags] <token>...\n")
		cliutil.Writef(fs.Output(), "       rpntools convert [flags] -f <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert infix expressions into Reverse Polish Notation.\n")
		cliutil.Writef(fs.Output(), "Tokens are separated by whitespace; a quoted argument is split the same way.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  One postfix expression per line\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rpntools convert '( A | B ) ^ C'\n")
		cliutil.Writef(fs.Output(), "  rpntools convert B + '(' ! A '|' C ')'\n")
		cliutil.Writef(fs.Output(), "  rpntools convert -s symbols.toml 'a AND ( b OR c )'\n")
		cliutil.Writef(fs.Output(), "  rpntools convert -f expressions.txt -j 8 --format json\n")
		cliutil.Writef(fs.Output(), "  cat expressions.txt | rpntools convert -q -f -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All expressions converted\n")
		cliutil.Writef(fs.Output(), "  1    At least one expression failed to convert\n")
	}

	return fs, flags
}

// ConvertEntry is the structured outcome of converting one expression.
type ConvertEntry struct {
	Line      int    `json:"line,omitempty" yaml:"line,omitempty"`
	Infix     string `json:"infix" yaml:"infix"`
	Postfix   string `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	MaxDepth  int    `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Position  *int   `json:"position,omitempty" yaml:"position,omitempty"`
}

// ConvertReport is the structured output of the convert command.
type ConvertReport struct {
	Total   int            `json:"total" yaml:"total"`
	Failed  int            `json:"failed" yaml:"failed"`
	Results []ConvertEntry `json:"results" yaml:"results"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.MaxDepth < 0 {
		return fmt.Errorf("--max-depth must not be negative, got %d", flags.MaxDepth)
	}
	if flags.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", flags.Jobs)
	}
	if flags.File != "" && fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("convert accepts either tokens or --file, not both")
	}
	if flags.File == "" && fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires an expression or --file")
	}

	if flags.Verbose {
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer slog.SetDefault(prev)
	}

	table, err := LoadSymbolTable(flags.Symbols)
	if err != nil {
		return err
	}
	c, err := converter.NewFromTable(table)
	if err != nil {
		return err
	}
	c.MaxDepth = flags.MaxDepth
	slog.Debug("symbol table loaded", "source", symbolSource(flags.Symbols), "symbols", table.Len(), "max_depth", flags.MaxDepth)

	var lines []SourceLine
	if flags.File != "" {
		in, err := OpenInput(flags.File, stdin)
		if err != nil {
			return err
		}
		lines, err = ReadExpressions(in)
		_ = in.Close()
		if err != nil {
			return err
		}
		slog.Debug("expressions read", "input", FormatInputPath(flags.File), "count", len(lines))
	} else {
		lines = []SourceLine{{Tokens: strings.Fields(strings.Join(fs.Args(), " "))}}
	}

	report, err := convertLines(c, lines, flags.Jobs)
	if err != nil {
		return err
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(stdout, report, flags.Format); err != nil {
			return err
		}
	} else {
		writeConvertText(stdout, stderr, report, flags.Quiet)
	}

	if report.Failed > 0 {
		return ErrConversionFailed
	}
	return nil
}

// convertLines converts every line and collects the outcomes in input order.
func convertLines(c *converter.Converter[string], lines []SourceLine, jobs int) (*ConvertReport, error) {
	inputs := make([][]string, len(lines))
	for i, line := range lines {
		inputs[i] = line.Tokens
	}

	results, err := c.ConvertBatch(context.Background(), inputs, jobs)
	if err != nil {
		return nil, err
	}

	report := &ConvertReport{Total: len(lines), Results: make([]ConvertEntry, len(lines))}
	for i, r := range results {
		entry := ConvertEntry{
			Line:  lines[i].Number,
			Infix: strings.Join(lines[i].Tokens, " "),
		}
		if r.Err != nil {
			report.Failed++
			entry.Error = r.Err.Error()
			entry.ErrorKind, entry.Position = describeError(r.Err)
		} else {
			entry.Postfix = strings.Join(r.Postfix, " ")
			entry.MaxDepth = r.MaxDepth
		}
		report.Results[i] = entry
	}
	return report, nil
}

// describeError returns the error kind label and, for structural errors
// located at a token, its position.
func describeError(err error) (string, *int) {
	var structural *rpnerrors.StructuralError
	if errors.As(err, &structural) {
		if structural.Position < 0 {
			return structural.Kind.String(), nil
		}
		pos := structural.Position
		return structural.Kind.String(), &pos
	}
	var limit *rpnerrors.ResourceLimitError
	if errors.As(err, &limit) {
		return "resource_limit", nil
	}
	return "", nil
}

func writeConvertText(stdout, stderr io.Writer, report *ConvertReport, quiet bool) {
	for _, entry := range report.Results {
		if entry.Error == "" {
			cliutil.Writef(stdout, "%s\n", entry.Postfix)
			continue
		}
		if entry.Line > 0 {
			cliutil.Writef(stderr, "Error: line %d: %s\n", entry.Line, entry.Error)
		} else {
			cliutil.Writef(stderr, "Error: %s\n", entry.Error)
		}
	}

	if quiet || report.Total < 2 {
		return
	}
	if report.Failed == 0 {
		cliutil.Writef(stderr, "✓ Converted %s\n", cliutil.Count(report.Total, "expression", "expressions"))
	} else {
		cliutil.Writef(stderr, "✗ %d of %s failed\n", report.Failed, cliutil.Count(report.Total, "expression", "expressions"))
	}
}

func symbolSource(path string) string {
	if path == "" {
		return "default"
	}
	return path
}
