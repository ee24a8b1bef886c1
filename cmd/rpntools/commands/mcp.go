package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/rpntools/internal/cliutil"
	"github.com/erraggy/rpntools/internal/mcpserver"
)

// HandleMCP runs the MCP server on stdio until the client disconnects or the
// process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rpntools mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the convert, classify and symbols tools over MCP on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  RPNTOOLS_MAX_DEPTH   maximum parenthesis nesting (default 256, 0 = unlimited)\n")
		cliutil.Writef(fs.Output(), "  RPNTOOLS_MAX_TOKENS  maximum tokens per expression (default 10000, 0 = unlimited)\n")
		cliutil.Writef(fs.Output(), "  RPNTOOLS_SYMBOLS     symbol table file used when a call gives no inline table\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
