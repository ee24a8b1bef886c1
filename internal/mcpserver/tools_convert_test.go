package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool_Expression(t *testing.T) {
	withConfig(t, &serverConfig{MaxDepth: 256, MaxTokens: 10000})

	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{Expression: "( A | B ) ^ C"})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, []string{"A", "B", "|", "C", "^"}, output.Postfix)
	assert.Equal(t, "A B | C ^", output.Expression)
	assert.Equal(t, 1, output.MaxDepth)
	assert.Equal(t, 3, output.Values)
	assert.Equal(t, 0, output.UnaryOperators)
	assert.Equal(t, 2, output.BinaryOperators)
	assert.Equal(t, 1, output.Groups)
}

func TestConvertTool_Tokens(t *testing.T) {
	withConfig(t, &serverConfig{})

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{
		Tokens: strings.Fields("! ( ! C + B )"),
	})
	require.NoError(t, err)
	assert.Equal(t, "C ! B + !", output.Expression)
	assert.Equal(t, 2, output.UnaryOperators)
}

func TestConvertTool_InlineSymbols(t *testing.T) {
	withConfig(t, &serverConfig{})

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{
		Expression: "not [ a and b ] or c",
		Symbols: &symbolsInput{
			Open:   []string{"["},
			Close:  []string{"]"},
			Unary:  []string{"not"},
			Binary: []string{"and", "or"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "a b and not c or", output.Expression)
}

func TestConvertTool_StructuralError(t *testing.T) {
	withConfig(t, &serverConfig{})

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{Expression: "A B"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "successive values at token 1")
	assert.Contains(t, text, "[kind=successive_two_values]")
}

func TestConvertTool_Limits(t *testing.T) {
	t.Run("nesting depth", func(t *testing.T) {
		withConfig(t, &serverConfig{MaxDepth: 2})
		result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{Expression: "( ( ( A ) ) )"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "nesting_depth")
	})

	t.Run("token count", func(t *testing.T) {
		withConfig(t, &serverConfig{MaxTokens: 3})
		result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{Expression: "A + B + C"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "token_count")
	})
}

func TestConvertTool_NoInputProvided(t *testing.T) {
	withConfig(t, &serverConfig{})

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_InvalidInlineSymbols(t *testing.T) {
	withConfig(t, &serverConfig{})

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, expressionInput{
		Expression: "A",
		Symbols:    &symbolsInput{Open: []string{"("}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}
