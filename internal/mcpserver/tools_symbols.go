package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type symbolsToolInput struct{}

type symbolsOutput struct {
	Source string   `json:"source"`
	Open   []string `json:"open"`
	Close  []string `json:"close"`
	Unary  []string `json:"unary"`
	Binary []string `json:"binary"`
}

func handleSymbols(_ context.Context, _ *mcp.CallToolRequest, _ symbolsToolInput) (*mcp.CallToolResult, symbolsOutput, error) {
	table, source, err := resolveTable(nil)
	if err != nil {
		return errResult(err), symbolsOutput{}, nil
	}
	return nil, symbolsOutput{
		Source: source,
		Open:   orEmpty(table.OpenParens),
		Close:  orEmpty(table.CloseParens),
		Unary:  orEmpty(table.Unary),
		Binary: orEmpty(table.Binary),
	}, nil
}

// orEmpty keeps absent roles as [] rather than null in tool output.
func orEmpty(syms []string) []string {
	if syms == nil {
		return []string{}
	}
	return syms
}
