package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rpntools/internal/testutil"
	"github.com/erraggy/rpntools/rpnerrors"
	"github.com/erraggy/rpntools/symboltable"
)

func TestExpressionInput_Tokens(t *testing.T) {
	tests := []struct {
		name    string
		input   expressionInput
		want    []string
		wantErr string
	}{
		{name: "expression", input: expressionInput{Expression: "  ( A | B )  ^ C "}, want: []string{"(", "A", "|", "B", ")", "^", "C"}},
		{name: "tokens", input: expressionInput{Tokens: []string{"A", "+", "B"}}, want: []string{"A", "+", "B"}},
		{name: "neither", input: expressionInput{}, wantErr: "exactly one of expression or tokens"},
		{name: "blank expression", input: expressionInput{Expression: "   "}, wantErr: "exactly one of expression or tokens"},
		{name: "both", input: expressionInput{Expression: "A", Tokens: []string{"A"}}, wantErr: "only one of expression or tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.tokens()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTable(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		withConfig(t, &serverConfig{})
		table, source, err := resolveTable(nil)
		require.NoError(t, err)
		assert.Equal(t, "default", source)
		assert.Equal(t, symboltable.Default(), table)
	})

	t.Run("inline", func(t *testing.T) {
		withConfig(t, &serverConfig{})
		table, source, err := resolveTable(&symbolsInput{Open: []string{"["}, Close: []string{"]"}, Binary: []string{"*"}})
		require.NoError(t, err)
		assert.Equal(t, "inline", source)
		assert.Equal(t, []string{"*"}, table.Binary)
	})

	t.Run("invalid inline", func(t *testing.T) {
		withConfig(t, &serverConfig{})
		_, _, err := resolveTable(&symbolsInput{Open: []string{"("}, Close: []string{")"}, Unary: []string{"-"}, Binary: []string{"-"}})
		assert.ErrorIs(t, err, rpnerrors.ErrConfig)
	})

	t.Run("file", func(t *testing.T) {
		path := testutil.WriteTempTable(t, testutil.NewLogicTable(), symboltable.FormatTOML)
		withConfig(t, &serverConfig{SymbolsFile: path})
		table, source, err := resolveTable(nil)
		require.NoError(t, err)
		assert.Equal(t, "file", source)
		assert.Equal(t, []string{"and", "or"}, table.Binary)
	})

	t.Run("inline wins over file", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "symbols.toml", "open = [\"(\"]\nclose = [\")\"]\nbinary = [\"and\"]\n")
		withConfig(t, &serverConfig{SymbolsFile: path})
		_, source, err := resolveTable(&symbolsInput{Open: []string{"("}, Close: []string{")"}})
		require.NoError(t, err)
		assert.Equal(t, "inline", source)
	})
}

func TestTableCache_ReloadsChangedFile(t *testing.T) {
	withConfig(t, &serverConfig{})
	path := testutil.WriteTempFile(t, "symbols.yaml", "open: [\"(\"]\nclose: [\")\"]\nbinary: [and]\n")

	first, err := tableCache.load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"and"}, first.Binary)

	// Returned tables are copies.
	first.Binary[0] = "xor"
	again, err := tableCache.load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"and"}, again.Binary)

	require.NoError(t, os.WriteFile(path, []byte("open: [\"(\"]\nclose: [\")\"]\nbinary: [and, or]\n"), 0o600))
	changed, err := tableCache.load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "or"}, changed.Binary)
}

func TestTableCache_Errors(t *testing.T) {
	withConfig(t, &serverConfig{})

	_, err := tableCache.load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := testutil.WriteTempFile(t, "bad.yaml", "open: [\"(\"]\nclose: [\"(\"]\n")
	_, err = tableCache.load(path)
	assert.ErrorIs(t, err, rpnerrors.ErrConfig)
}
