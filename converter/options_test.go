package converter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rpntools/internal/testutil"
	"github.com/erraggy/rpntools/rpnerrors"
	"github.com/erraggy/rpntools/symboltable"
)

// TestConvertWithOptions_Expression tests the functional options API with the default table
func TestConvertWithOptions_Expression(t *testing.T) {
	result, err := ConvertWithOptions(WithExpression("( ( A + B ) | ( D | ( ( K + O ) ^ A ) ) ) ^ B"))
	require.NoError(t, err)

	assert.Equal(t, "A B + D K O + A ^ | | B ^", result.Expression())
	assert.Len(t, result.Tokens, 23)
	assert.Equal(t, 4, result.MaxDepth)
	assert.Equal(t, Stats{Values: 7, UnaryOperators: 0, BinaryOperators: 6, Groups: 5}, result.Stats)
}

// TestConvertWithOptions_Tokens tests already-split input and unary statistics
func TestConvertWithOptions_Tokens(t *testing.T) {
	result, err := ConvertWithOptions(WithTokens([]string{"!", "(", "!", "C", "+", "B", ")"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "!", "B", "+", "!"}, result.Postfix)
	assert.Equal(t, 1, result.MaxDepth)
	assert.Equal(t, Stats{Values: 2, UnaryOperators: 2, BinaryOperators: 1, Groups: 1}, result.Stats)
}

func TestConvertString(t *testing.T) {
	result, err := ConvertString("  B +\t( ! A | C )\n")
	require.NoError(t, err)
	assert.Equal(t, "B A ! C | +", result.Expression())
}

// TestConvertWithOptions_SymbolTable tests a custom table
func TestConvertWithOptions_SymbolTable(t *testing.T) {
	table := &symboltable.Table{
		OpenParens:  []string{"begin"},
		CloseParens: []string{"end"},
		Unary:       []string{"not"},
		Binary:      []string{"and", "or"},
	}

	result, err := ConvertWithOptions(
		WithExpression("not begin a or b end and c"),
		WithSymbolTable(table),
	)
	require.NoError(t, err)
	assert.Equal(t, "a b or not c and", result.Expression())
}

// TestConvertWithOptions_MixedBrackets tests a table with two group delimiter pairs
func TestConvertWithOptions_MixedBrackets(t *testing.T) {
	result, err := ConvertWithOptions(
		WithExpression("[ a + ( b * c ) ] * - d"),
		WithSymbolTable(testutil.NewBracketTable()),
	)
	require.NoError(t, err)
	assert.Equal(t, "a b c * + d - *", result.Expression())
	assert.Equal(t, 2, result.MaxDepth)
	assert.Equal(t, 2, result.Stats.Groups)
}

// TestConvertWithOptions_SymbolTableFile tests loading the table from disk
func TestConvertWithOptions_SymbolTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.toml")
	require.NoError(t, os.WriteFile(path, []byte(`open = ["("]
close = [")"]
unary = ["neg"]
binary = ["+", "-", "*", "/"]
`), 0o600))

	result, err := ConvertWithOptions(
		WithExpression("( 1 + 2 ) * neg 3"),
		WithSymbolTableFile(path),
	)
	require.NoError(t, err)
	assert.Equal(t, "1 2 + 3 neg *", result.Expression())
}

// TestConvertWithOptions_Limits tests depth and token limits
func TestConvertWithOptions_Limits(t *testing.T) {
	t.Run("max depth", func(t *testing.T) {
		_, err := ConvertWithOptions(WithExpression("( ( A ) )"), WithMaxDepth(1))
		assert.ErrorIs(t, err, rpnerrors.ErrResourceLimit)
	})

	t.Run("max tokens", func(t *testing.T) {
		_, err := ConvertWithOptions(WithExpression("A + B + C"), WithMaxTokens(3))
		require.Error(t, err)
		var limitErr *rpnerrors.ResourceLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, "token_count", limitErr.ResourceType)
		assert.Equal(t, int64(5), limitErr.Actual)
	})

	t.Run("max tokens not reached", func(t *testing.T) {
		result, err := ConvertWithOptions(WithExpression("A + B"), WithMaxTokens(3))
		require.NoError(t, err)
		assert.Equal(t, "A B +", result.Expression())
	})
}

// TestConvertWithOptions_StructuralErrorsAreNotWrapped checks the first violation is returned as-is
func TestConvertWithOptions_StructuralErrorsAreNotWrapped(t *testing.T) {
	_, err := ConvertWithOptions(WithExpression("A + B ^ ( A + ! ( ! C + B ) + yolo"))
	require.Error(t, err)

	structErr, ok := err.(*rpnerrors.StructuralError) //nolint:errorlint // asserting the concrete type is returned unwrapped
	require.True(t, ok, "got %T", err)
	assert.Equal(t, rpnerrors.KindMissingClosingParenthesis, structErr.Kind)
}

// TestConvertWithOptions_InvalidOptions tests option validation
func TestConvertWithOptions_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no input",
			opts:    nil,
			wantErr: "must specify an input source",
		},
		{
			name:    "two inputs",
			opts:    []Option{WithExpression("A"), WithTokens([]string{"A"})},
			wantErr: "must specify exactly one input source",
		},
		{
			name:    "two tables",
			opts:    []Option{WithExpression("A"), WithSymbolTable(symboltable.Default()), WithSymbolTableFile("x.yaml")},
			wantErr: "at most one symbol table source",
		},
		{
			name:    "nil table",
			opts:    []Option{WithExpression("A"), WithSymbolTable(nil)},
			wantErr: "symbol table cannot be nil",
		},
		{
			name:    "empty table path",
			opts:    []Option{WithExpression("A"), WithSymbolTableFile("")},
			wantErr: "symbol table path cannot be empty",
		},
		{
			name:    "negative depth",
			opts:    []Option{WithExpression("A"), WithMaxDepth(-1)},
			wantErr: "must not be negative",
		},
		{
			name:    "negative token limit",
			opts:    []Option{WithExpression("A"), WithMaxTokens(-5)},
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, rpnerrors.ErrConfig)
			assert.True(t, strings.HasPrefix(err.Error(), "converter: invalid options: "), err.Error())
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConvertWithOptions_InvalidTable(t *testing.T) {
	_, err := ConvertWithOptions(
		WithExpression("A - B"),
		WithSymbolTable(&symboltable.Table{Unary: []string{"-"}, Binary: []string{"-"}}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, rpnerrors.ErrConfig)
}

func TestNewFromTable(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := NewFromTable(nil)
		assert.ErrorIs(t, err, rpnerrors.ErrConfig)
	})

	t.Run("default", func(t *testing.T) {
		c, err := NewFromTable(symboltable.Default())
		require.NoError(t, err)
		assert.Equal(t, RoleBinary, c.Classifier().Role("^"))
		assert.Equal(t, RoleValue, c.Classifier().Role("A"))
	})
}

func TestResult_ExpressionGeneric(t *testing.T) {
	r := &Result[rune]{Postfix: []rune("ab+")}
	assert.Equal(t, "97 98 43", r.Expression())

	c := New([]rune{'('}, []rune{')'}, nil, []rune{'+'})
	detailed, err := c.ConvertDetailed([]rune("(a+b)+c"))
	require.NoError(t, err)
	assert.Equal(t, "ab+c+", string(detailed.Postfix))
	assert.Equal(t, Stats{Values: 3, BinaryOperators: 2, Groups: 1}, detailed.Stats)
}
