package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/pm"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/util/common/printer"
)

// nameWidth is the minimum column the registry name is padded to.
const nameWidth = 8

// dashes pads name to nameWidth with a run of dashes between single spaces.
// At least one space on each side is always kept.
func dashes(name string) string {
	n := max(1, nameWidth-len(name)) - 1
	return " " + strings.Repeat("-", n) + " "
}

// formatRow lays out one report line: the active marker, the name, the
// dash padding and the value.
func formatRow(active bool, name, value string) string {
	marker := "  "
	if active {
		marker = "* "
	}
	return marker + name + dashes(name) + value
}

// printRows writes lines framed by blank lines, highlighting active ones.
func printRows(w io.Writer, lines []string, active []bool) {
	fmt.Fprintln(w)
	for i, l := range lines {
		if active[i] {
			l = style.Render(style.Active, l)
		}
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

func format() string {
	if config.Global.Format == "" {
		return config.FormatText
	}
	return config.Global.Format
}

// ─── JSON / table views ──────────────────────────────────────────────────────

type entryView struct {
	Name     string `json:"name"`
	Registry string `json:"registry"`
	Home     string `json:"home,omitempty"`
	Active   bool   `json:"active"`
}

type toolView struct {
	Registry string `json:"registry,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newToolView(r pm.ToolResult) toolView {
	v := toolView{Registry: r.Registry}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

type useView struct {
	Name  string    `json:"name"`
	Found bool      `json:"found"`
	Yarn  *toolView `json:"yarn,omitempty"`
	Npm   *toolView `json:"npm,omitempty"`
}

func newUseView(r manager.UseResult) useView {
	v := useView{Name: r.Name, Found: r.Found}
	if r.Found {
		yarn, npm := newToolView(r.Switch.Yarn), newToolView(r.Switch.Npm)
		v.Yarn, v.Npm = &yarn, &npm
	}
	return v
}

type testView struct {
	Name      string `json:"name"`
	Registry  string `json:"registry"`
	Active    bool   `json:"active"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
}

func newTestView(r manager.TestRow) testView {
	v := testView{
		Name:      r.Name,
		Registry:  r.Registry,
		Active:    r.Active,
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

// elapsedText is the value column of a test report row.
func elapsedText(r manager.TestRow) string {
	if r.Failed() {
		return "Fetch Error"
	}
	return fmt.Sprintf("%dms", r.Elapsed.Milliseconds())
}

func activeMarker(active bool) string {
	if active {
		return "*"
	}
	return ""
}

// tableRow is the flattened record fed to printer.PrintTable.
type tableRow struct {
	Active   string `json:"active"`
	Name     string `json:"name"`
	Registry string `json:"registry"`
	Value    string `json:"value,omitempty"`
}

func printTable(w io.Writer, rows []tableRow, valueHeader string) error {
	mapping := printer.ColumnMapping{
		{"active", " "},
		{"name", "Name"},
		{"registry", "Registry"},
	}
	if valueHeader != "" {
		mapping = append(mapping, []string{"value", valueHeader})
	}
	return printer.PrintTable(w, rows, mapping)
}
