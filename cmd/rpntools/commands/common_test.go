package commands

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rpntools/symboltable"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestReadExpressions(t *testing.T) {
	input := "# header\n( A | B ) ^ C\n\n   \n  B +   ( ! A | C )  \n#A + B\n"
	lines, err := ReadExpressions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []SourceLine{
		{Number: 2, Tokens: []string{"(", "A", "|", "B", ")", "^", "C"}},
		{Number: 5, Tokens: []string{"B", "+", "(", "!", "A", "|", "C", ")"}},
	}, lines)
}

func TestReadExpressions_Empty(t *testing.T) {
	lines, err := ReadExpressions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadSymbolTable(t *testing.T) {
	table, err := LoadSymbolTable("")
	require.NoError(t, err)
	assert.Equal(t, symboltable.Default(), table)

	_, err = LoadSymbolTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "exprs.txt", FormatInputPath("exprs.txt"))
}

func TestOpenInput(t *testing.T) {
	rc, err := OpenInput(StdinFilePath, strings.NewReader("A + B\n"))
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "A + B\n", string(data))
	require.NoError(t, rc.Close())

	_, err = OpenInput(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}
