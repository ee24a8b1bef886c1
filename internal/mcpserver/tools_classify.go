package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rpntools/converter"
	"github.com/erraggy/rpntools/rpnerrors"
)

type classifiedToken struct {
	Index int    `json:"index"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

type classifyOutput struct {
	Source string            `json:"source"`
	Tokens []classifiedToken `json:"tokens"`
	Counts map[string]int    `json:"counts"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input expressionInput) (*mcp.CallToolResult, classifyOutput, error) {
	tokens, err := input.tokens()
	if err != nil {
		return errResult(err), classifyOutput{}, nil
	}
	if cfg.MaxTokens > 0 && len(tokens) > cfg.MaxTokens {
		return errResult(&rpnerrors.ResourceLimitError{
			ResourceType: "token_count",
			Limit:        int64(cfg.MaxTokens),
			Actual:       int64(len(tokens)),
		}), classifyOutput{}, nil
	}

	table, source, err := resolveTable(input.Symbols)
	if err != nil {
		return errResult(err), classifyOutput{}, nil
	}
	c, err := converter.NewFromTable(table)
	if err != nil {
		return errResult(fmt.Errorf("building classifier: %w", err)), classifyOutput{}, nil
	}

	output := classifyOutput{
		Source: source,
		Tokens: make([]classifiedToken, 0, len(tokens)),
		Counts: make(map[string]int),
	}
	for i, tok := range tokens {
		role := c.Classifier().Role(tok).String()
		output.Tokens = append(output.Tokens, classifiedToken{Index: i, Token: tok, Role: role})
		output.Counts[role]++
	}
	return nil, output, nil
}
