package commands

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/rpntools/converter"
	"github.com/erraggy/rpntools/internal/cliutil"
	"github.com/erraggy/rpntools/symboltable"
)

// SymbolsFlags contains flags for the symbols command
type SymbolsFlags struct {
	Symbols string
	Format  string
	Quiet   bool
}

// SetupSymbolsFlags creates and configures a FlagSet for the symbols command.
// Returns the FlagSet and a SymbolsFlags struct with bound flag variables.
func SetupSymbolsFlags() (*flag.FlagSet, *SymbolsFlags) {
	fs := flag.NewFlagSet("symbols", flag.ContinueOnError)
	flags := &SymbolsFlags{}

	fs.StringVar(&flags.Symbols, "s", "", "symbol table file (YAML, JSON or TOML); default table when omitted")
	fs.StringVar(&flags.Symbols, "symbols", "", "symbol table file (YAML, JSON or TOML); default table when omitted")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, or toml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rpntools symbols [flags]\n\n")
		cliutil.Writef(fs.Output(), "Print the symbol table used by convert, after validating it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rpntools symbols\n")
		cliutil.Writef(fs.Output(), "  rpntools symbols -s symbols.yaml --format json\n")
		cliutil.Writef(fs.Output(), "  rpntools symbols --format toml > symbols.toml\n")
	}

	return fs, flags
}

// HandleSymbols executes the symbols command
func HandleSymbols(args []string) error {
	return runSymbols(args, os.Stdout, os.Stderr)
}

func runSymbols(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupSymbolsFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("symbols command takes no arguments")
	}
	if flags.Format != string(symboltable.FormatTOML) {
		if err := ValidateOutputFormat(flags.Format); err != nil {
			return err
		}
	}

	table, err := LoadSymbolTable(flags.Symbols)
	if err != nil {
		return err
	}

	switch flags.Format {
	case FormatText:
		RenderTable(stdout, []string{"ROLE", "SYMBOLS"}, symbolRows(table), flags.Quiet)
		return nil
	default:
		data, err := symboltable.Marshal(table, symboltable.Format(flags.Format))
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}
}

// symbolRows lists the table one role per row, with title-cased role labels.
func symbolRows(table *symboltable.Table) [][]string {
	title := cases.Title(language.English)
	symbols := map[converter.Role][]string{
		converter.RoleOpenParen:  table.OpenParens,
		converter.RoleCloseParen: table.CloseParens,
		converter.RoleUnary:      table.Unary,
		converter.RoleBinary:     table.Binary,
	}

	var rows [][]string
	for _, role := range converter.Roles() {
		syms := symbols[role]
		if len(syms) == 0 {
			continue
		}
		rows = append(rows, []string{title.String(role.String()), strings.Join(syms, " ")})
	}
	return rows
}
