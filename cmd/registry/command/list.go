package command

import (
	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/util/common/printer"

	"github.com/spf13/cobra"
)

// NewListCmd wires up:
//
//	yrm ls
func NewListCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all the registries",
		Long:    "List the builtin and custom registries, marking the one in use with *",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}
			result, err := m.List(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format() {
			case config.FormatJSON:
				views := make([]entryView, 0, len(result.Rows))
				for _, r := range result.Rows {
					views = append(views, entryView{Name: r.Name, Registry: r.Registry, Home: r.Home, Active: r.Active})
				}
				return printer.PrintJson(w, views)
			case config.FormatTable:
				rows := make([]tableRow, 0, len(result.Rows))
				for _, r := range result.Rows {
					rows = append(rows, tableRow{Active: activeMarker(r.Active), Name: r.Name, Registry: r.Registry})
				}
				return printTable(w, rows, "")
			}

			lines := make([]string, len(result.Rows))
			active := make([]bool, len(result.Rows))
			for i, r := range result.Rows {
				lines[i] = formatRow(r.Active, r.Name, r.Registry)
				active[i] = r.Active
			}
			printRows(w, lines, active)
			return nil
		},
	}
}
