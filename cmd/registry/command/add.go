package command

import (
	"fmt"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/util/common/printer"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

type outcomeView struct {
	Outcome string    `json:"outcome"`
	Entry   entryView `json:"entry"`
}

// NewAddCmd wires up:
//
//	yrm add <registry> <url> [home]
func NewAddCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "add <registry> <url> [home]",
		Short: "Add one custom registry",
		Long: heredoc.Doc(`
			Add a custom registry to ~/.yrmrc.

			A trailing slash is appended to the url when missing. Adding a name
			that is already a custom registry leaves the existing entry untouched.
		`),
		Example: heredoc.Doc(`
			yrm add company https://npm.example.com https://npm.example.com/-/web
		`),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}

			var home string
			if len(args) == 3 {
				home = args[2]
			}
			result, err := m.Add(cmd.Context(), args[0], args[1], home)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format() == config.FormatJSON {
				return printer.PrintJson(w, outcomeView{
					Outcome: result.Outcome.String(),
					Entry:   entryView{Name: result.Entry.Name, Registry: result.Entry.Registry, Home: result.Entry.Home},
				})
			}

			fmt.Fprintln(w)
			if result.Outcome == manager.OutcomeNoop {
				fmt.Fprintf(w, "    %s %s\n", style.WarningIcon(),
					style.Render(style.Warning, "registry "+result.Entry.Name+" already exists, not changed"))
			} else {
				fmt.Fprintln(w, style.Render(style.Success, "    add registry "+result.Entry.Name+" success"))
			}
			fmt.Fprintln(w)
			return nil
		},
	}
}
