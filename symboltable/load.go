package symboltable

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/rpntools/rpnerrors"
)

// Format is the encoding of a symbol table file.
type Format string

const (
	// FormatYAML covers YAML and JSON, which the YAML decoder also reads
	FormatYAML Format = "yaml"
	// FormatJSON is decoded with the YAML decoder
	FormatJSON Format = "json"
	// FormatTOML is decoded with the TOML decoder
	FormatTOML Format = "toml"
)

// DetectFormat determines the table format from a file extension.
// Unknown extensions are treated as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Parse decodes and validates a table.
func Parse(data []byte, format Format) (*Table, error) {
	var t Table

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, &rpnerrors.ConfigError{Option: "symbols", Message: "cannot decode TOML symbol table", Cause: err}
		}
	case FormatYAML, FormatJSON:
		// yaml.Unmarshal handles both YAML and JSON
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, &rpnerrors.ConfigError{Option: "symbols", Message: "cannot decode symbol table", Cause: err}
		}
	default:
		return nil, &rpnerrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported symbol table format"}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads, decodes and validates the table at path. The format follows the
// file extension (see DetectFormat).
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is an explicit user choice
	if err != nil {
		return nil, &rpnerrors.ConfigError{Option: "symbols", Value: path, Message: "cannot read symbol table", Cause: err}
	}

	t, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("symboltable: %s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t in the given format.
func Marshal(t *Table, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(t); err != nil {
			return nil, fmt.Errorf("symboltable: failed to marshal TOML: %w", err)
		}
		return []byte(sb.String()), nil
	case FormatYAML:
		data, err := yaml.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("symboltable: failed to marshal YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("symboltable: failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, &rpnerrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported symbol table format"}
	}
}
