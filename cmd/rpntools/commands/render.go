package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"
)

// RenderTable renders rows under a header line.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeRow(w, headers, widths, "  ")
	}
	for _, row := range rows {
		if quiet {
			_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
			continue
		}
		writeRow(w, row, widths, "  ")
	}
}

func writeRow(w io.Writer, cells []string, widths []int, sep string) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 || i >= len(widths) {
			padded[i] = cell
			continue
		}
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	_, _ = fmt.Fprintln(w, strings.Join(padded, sep))
}

// OutputStructured writes v to w as JSON or YAML.
func OutputStructured(w io.Writer, v any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
