// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the rpntools converter as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rpntools"
	"github.com/erraggy/rpntools/rpnerrors"
)

const serverInstructions = `rpntools MCP server: converts infix expressions into Reverse Polish Notation (postfix).

Expressions are whitespace-separated symbols. Parentheses group, unary operators prefix their operand, binary operators sit between operands. There is no precedence: operators in one group apply left to right.

Configuration: defaults are set with RPNTOOLS_* environment variables in your MCP client config.
- RPNTOOLS_MAX_DEPTH (default: 256) maximum parenthesis nesting, 0 for unlimited
- RPNTOOLS_MAX_TOKENS (default: 10000) maximum tokens per expression, 0 for unlimited
- RPNTOOLS_SYMBOLS symbol table file (YAML, JSON or TOML) used when a call gives no inline table

Default symbols: open "(", close ")", unary "!", binary "+ ^ |".`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	slog.Debug("starting MCP server", "agent", rpntools.UserAgent(), "max_depth", cfg.MaxDepth, "max_tokens", cfg.MaxTokens, "symbols", cfg.SymbolsFile) //nolint:gosec // G706: values are structured log fields, not format strings
	if cfg.SymbolsFile != "" {
		if _, err := tableCache.load(cfg.SymbolsFile); err != nil {
			slog.Warn("symbol table not usable, tool calls will fail until it is fixed", "path", cfg.SymbolsFile, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		}
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "rpntools", Version: rpntools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an infix expression into Reverse Polish Notation. Provide exactly one of expression (whitespace-separated) or tokens. Returns the postfix tokens, the postfix expression, the deepest nesting and symbol counts. Malformed input returns an error naming the violation, the token index where it was detected and the nesting depth. Pass symbols to use a custom symbol table for this call.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Report the role of every token in an expression (value, open parenthesis, close parenthesis, unary operator, binary operator) under the active or inline symbol table. Does not check that the expression is well formed; use convert for that.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "symbols",
		Description: "Return the symbol table used when a call gives no inline table, and where it came from (default or the RPNTOOLS_SYMBOLS file).",
	}, handleSymbols)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
// Structural errors also carry their machine-readable kind.
func errResult(err error) *mcp.CallToolResult {
	text := sanitizeError(err)
	var structural *rpnerrors.StructuralError
	if errors.As(err, &structural) {
		text = fmt.Sprintf("%s [kind=%s]", text, structural.Kind)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
