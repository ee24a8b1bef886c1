package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rpntools/converter"
)

type convertOutput struct {
	Postfix         []string `json:"postfix"`
	Expression      string   `json:"expression"`
	MaxDepth        int      `json:"max_depth"`
	Values          int      `json:"values"`
	UnaryOperators  int      `json:"unary_operators"`
	BinaryOperators int      `json:"binary_operators"`
	Groups          int      `json:"groups"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input expressionInput) (*mcp.CallToolResult, convertOutput, error) {
	opts, err := input.converterOptions()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Postfix:         result.Postfix,
		Expression:      result.Expression(),
		MaxDepth:        result.MaxDepth,
		Values:          result.Stats.Values,
		UnaryOperators:  result.Stats.UnaryOperators,
		BinaryOperators: result.Stats.BinaryOperators,
		Groups:          result.Stats.Groups,
	}, nil
}
