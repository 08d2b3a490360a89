// Package printer renders command results as tables or JSON.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/harness/yrm/internal/style"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

// ColumnMapping defines a mapping between original field names and display names
type ColumnMapping [][]string

// parseTableData converts a JSON string + column mapping into headers and string rows.
func parseTableData(jsonStr string, mapping ColumnMapping) ([]string, [][]string, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &rows); err != nil {
		return nil, nil, fmt.Errorf("parse json: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var fields, header []string
	if len(mapping) > 0 {
		for _, m := range mapping {
			if len(m) >= 2 {
				fields = append(fields, m[0])
				header = append(header, m[1])
			}
		}
	} else {
		for k := range rows[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		header = fields
	}

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, len(fields))
		for i, f := range fields {
			val, ok := r[f]
			if !ok || val == nil {
				row[i] = "-"
				continue
			}
			row[i] = fmt.Sprint(val)
		}
		tableRows = append(tableRows, row)
	}

	return header, tableRows, nil
}

// renderStyledTable renders a table using lipgloss/table with the project's colour theme.
func renderStyledTable(w io.Writer, headers []string, rows [][]string) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Cyan).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := lgtable.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Dim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t = t.Row(r...)
	}

	fmt.Fprintln(w, t.Render())
}

// renderPtermTable renders a boxed pterm table for non-TTY / no-color output.
func renderPtermTable(w io.Writer, headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// PrintTable writes res, a slice of JSON-encodable records, to w as a table.
// When colour is enabled it renders using lipgloss/table with the project
// theme; otherwise it falls back to the pterm boxed table.
func PrintTable(w io.Writer, res any, mapping ColumnMapping) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	headers, rows, err := parseTableData(string(raw), mapping)
	if err != nil {
		log.Error().Msgf("failed to parse table data: %v", err)
		return err
	}
	if headers == nil {
		return nil
	}

	if style.Enabled {
		renderStyledTable(w, headers, rows)
		return nil
	}
	if err := renderPtermTable(w, headers, rows); err != nil {
		log.Error().Msgf("failed to render table: %v", err)
		return err
	}
	return nil
}
