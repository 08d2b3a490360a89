package command

import (
	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/internal/tui"
	"github.com/harness/yrm/util/common/printer"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// NewTestCmd wires up:
//
//	yrm test [registry]
func NewTestCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "test [registry]",
		Short: "Show response time for specific or all registries",
		Long: heredoc.Doc(`
			Probe registries concurrently and report the round-trip time of each.

			The argument is a registry name or a glob such as "npm*". Without an
			argument every registry is probed. Results keep catalog order.
		`),
		Example: heredoc.Doc(`
			yrm test
			yrm test taobao
			yrm test 'npm*'
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}

			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}

			run := func() (manager.TestResult, error) {
				return m.Test(cmd.Context(), pattern)
			}
			var result manager.TestResult
			if format() == config.FormatText && f.Terminal().CanAnimate() {
				result, err = tui.RunWithSpinner(cmd.ErrOrStderr(), "Testing registries", run)
			} else {
				result, err = run()
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format() {
			case config.FormatJSON:
				views := make([]testView, 0, len(result.Rows))
				for _, r := range result.Rows {
					views = append(views, newTestView(r))
				}
				return printer.PrintJson(w, views)
			case config.FormatTable:
				rows := make([]tableRow, 0, len(result.Rows))
				for _, r := range result.Rows {
					rows = append(rows, tableRow{
						Active:   activeMarker(r.Active),
						Name:     r.Name,
						Registry: r.Registry,
						Value:    elapsedText(r),
					})
				}
				return printTable(w, rows, "Time")
			}

			lines := make([]string, len(result.Rows))
			active := make([]bool, len(result.Rows))
			for i, r := range result.Rows {
				value := elapsedText(r)
				if r.Failed() {
					value = style.Render(style.DimText, value)
				}
				lines[i] = formatRow(r.Active, r.Name, value)
				active[i] = r.Active
			}
			printRows(w, lines, active)
			return nil
		},
	}
}
